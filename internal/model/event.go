package model

import "time"

// 订单生命周期事件，发给外部撮合/结算引擎

type OrderEventType string

const (
	OrderEventCreated   OrderEventType = "order_created"
	OrderEventUpdated   OrderEventType = "order_updated"
	OrderEventCancelled OrderEventType = "order_cancelled"
)

type OrderEvent struct {
	Type              OrderEventType `json:"type"`
	OrderId           int64          `json:"orderId"`
	UserAddress       string         `json:"userAddress"`
	BuyerAssetAddress string         `json:"buyerAssetAddress"`
	OfferAssetAddress string         `json:"offerAssetAddress"`
	Amount            float64        `json:"amount"`
	Timestamp         time.Time      `json:"timestamp"`
}

// OrderFillReport 结算引擎回报的成交进度，filledAmount是累计值
type OrderFillReport struct {
	OrderId      int64   `json:"orderId"`
	FilledAmount float64 `json:"filledAmount"`
}
