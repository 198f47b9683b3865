package entity

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Order 卖单记录。取消走软删除，is_active=0表示已完全成交。
// filled_amount 由撮合引擎的回写任务更新，服务端只读。
type Order struct {
	Id                int64                 `gorm:"column:id;primary_key;" json:"id"`
	UserAddress       string                `gorm:"column:user_address;index;size:42" json:"user_address"`
	BuyerAssetAddress string                `gorm:"column:buyer_asset_address;size:42" json:"buyer_asset_address"`
	OfferAssetAddress string                `gorm:"column:offer_asset_address;index;size:42" json:"offer_asset_address"`
	BasePrice         float64               `gorm:"column:base_price" json:"base_price"`
	Price             float64               `gorm:"column:price" json:"price"`
	DisplayedPrice    float64               `gorm:"column:displayed_price" json:"displayed_price"`
	Amount            float64               `gorm:"column:amount" json:"amount"`
	FilledAmount      float64               `gorm:"column:filled_amount" json:"filled_amount"`
	IsActive          bool                  `gorm:"column:is_active" json:"is_active"`
	CreatedAt         time.Time             `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time             `gorm:"column:updated_at" json:"updated_at"`
	IsDel             soft_delete.DeletedAt `gorm:"column:is_del;softDelete:flag" json:"is_del"`
}

func (Order) TableName() string {
	return "orders"
}
