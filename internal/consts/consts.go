package consts

import "time"

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	// 美元价格统一用2位小数的定点表示
	UsdDecimals = 2
	// 稳定币美元汇率的定点位数，后端返回的就是2位
	CrossRateDecimals = 2

	// 订单列表默认分页
	DefaultPageSize = 10

	// redis键前缀
	LatestPricePrefix = "Asset_Latest_Price:"
	TokenPricePrefix  = "Token_Prices:"

	// 默认redis过期时间
	RedisExrDefault = time.Minute * 5

	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

const (
	LanguageId = "T-Language-Id"
	ClientId   = "T-App-Id"
	Timestamp  = "T-Timestamp"
)
