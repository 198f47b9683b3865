package model

// Asset 平台里的一种代币快照，字段名跟前端接口保持一致
type Asset struct {
	Address      string  `json:"address"`
	Symbol       string  `json:"symbol"`
	ShortName    string  `json:"shortName"`
	LogoUrl      string  `json:"logoUrl,omitempty"`
	Supply       float64 `json:"supply"`
	Decimals     int32   `json:"decimals"`
	IsStableCoin bool    `json:"isStableCoin,omitempty"`
	IsERC20      bool    `json:"isERC20,omitempty"`
	IsCSMToken   bool    `json:"isCSMToken,omitempty"`
}

// TokenPrices 单个代币的基本面价格和回购价格
// 约定 fundamentalPrice >= buyBackPrice，差值就是vacancy费
type TokenPrices struct {
	FundamentalPrice float64 `json:"fundamentalPrice"`
	BuyBackPrice     float64 `json:"buyBackPrice"`
}

// AssetListReq rwa列表的查询参数，search/page是给前端滚动加载用的
type AssetListReq struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type TokenPricesReq struct {
	Address string `form:"address" binding:"required,eth_addr"`
}

type LatestPriceReq struct {
	Address string `form:"address" binding:"required,eth_addr"`
}
