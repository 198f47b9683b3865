package model

// Order 卖单。撮合和成交都发生在链上/撮合引擎那边，
// 这里只负责登记和展示，filledAmount 只读不改。
// 不变量：0 <= filledAmount <= amount
type Order struct {
	Id             int64   `json:"id"`
	IsActive       bool    `json:"isActive"`
	UserAddress    string  `json:"userAddress"`
	BuyerAsset     Asset   `json:"buyerAsset"`
	OfferAsset     Asset   `json:"offerAsset"`
	BasePrice      float64 `json:"basePrice"`
	Price          float64 `json:"price"`
	DisplayedPrice float64 `json:"displayedPrice"`
	Amount         float64 `json:"amount"`
	FilledAmount   float64 `json:"filledAmount"`
}

// OrderActiveSellReq 查询某个用户在某个token上的活跃卖单
type OrderActiveSellReq struct {
	UserAddress string `form:"userAddress" binding:"required,eth_addr"`
	OfferAsset  string `form:"offerAsset" binding:"required,eth_addr"`
}

type OrderCreateReq struct {
	UserAddress       string  `json:"userAddress" binding:"required,eth_addr"`
	BuyerAssetAddress string  `json:"buyerAssetAddress" binding:"required,eth_addr"`
	OfferAssetAddress string  `json:"offerAssetAddress" binding:"required,eth_addr"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
}

// OrderUpdateReq 只能增加数量，见service层校验
type OrderUpdateReq struct {
	UserAddress       string  `json:"userAddress" binding:"required,eth_addr"`
	BuyerAssetAddress string  `json:"buyerAssetAddress" binding:"required,eth_addr"`
	OfferAssetAddress string  `json:"offerAssetAddress" binding:"required,eth_addr"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
}

type OrderCancelReq struct {
	UserAddress       string  `json:"userAddress" binding:"required,eth_addr"`
	BuyerAssetAddress string  `json:"buyerAssetAddress" binding:"required,eth_addr"`
	OfferAssetAddress string  `json:"offerAssetAddress" binding:"required,eth_addr"`
	Amount            float64 `json:"amount"`
}

// OrderQuoteReq 下单前的报价请求，amount是用户输入的十进制字符串
type OrderQuoteReq struct {
	OfferAsset string `form:"offerAsset" binding:"required,eth_addr"`
	Amount     string `form:"amount" binding:"required"`
	// 可选，给出时报价换算成该稳定币
	Stablecoin string `form:"stablecoin" binding:"omitempty,eth_addr"`
}

// OrderQuoteRes 报价结果。所有金额都是定点整数的十进制字符串，
// 搭配 decimals 使用，前端用 formatUnits 展示。
type OrderQuoteRes struct {
	Fees struct {
		VacancyFee           string `json:"vacancyFee"`
		LiquidityProviderFee string `json:"liquidityProviderFee"`
		PlatformFee          string `json:"platformFee"`
		Decimals             int32  `json:"decimals"`
	} `json:"fees"`
	SentAmountUSD        ScaledAmountRes `json:"sentAmountUSD"`
	ReceivedAmountUSD    ScaledAmountRes `json:"receivedAmountUSD"`
	ReceivedAmountStable ScaledAmountRes `json:"receivedAmountStablecoin"`
}

type ScaledAmountRes struct {
	Price    string `json:"price"`
	Decimals int32  `json:"decimals"`
}
