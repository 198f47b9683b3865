package entity

import "time"

type Asset struct {
	Id           int64     `gorm:"column:id;primary_key;" json:"id"`
	Address      string    `gorm:"column:address;uniqueIndex;size:42" json:"address"`
	Symbol       string    `gorm:"column:symbol" json:"symbol"`
	ShortName    string    `gorm:"column:short_name" json:"short_name"`
	LogoUrl      string    `gorm:"column:logo_url" json:"logo_url"`
	Supply       float64   `gorm:"column:supply" json:"supply"`
	Decimals     int32     `gorm:"column:decimals" json:"decimals"`
	IsStableCoin bool      `gorm:"column:is_stable_coin" json:"is_stable_coin"`
	IsERC20      bool      `gorm:"column:is_erc20" json:"is_erc20"`
	IsCSMToken   bool      `gorm:"column:is_csm_token" json:"is_csm_token"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

// AssetPrice 资产的价格快照。rwa token有基本面价/回购价，
// 稳定币只有usd_price。
type AssetPrice struct {
	Id               int64     `gorm:"column:id;primary_key;" json:"id"`
	AssetAddress     string    `gorm:"column:asset_address;uniqueIndex;size:42" json:"asset_address"`
	FundamentalPrice float64   `gorm:"column:fundamental_price" json:"fundamental_price"`
	BuyBackPrice     float64   `gorm:"column:buy_back_price" json:"buy_back_price"`
	UsdPrice         float64   `gorm:"column:usd_price" json:"usd_price"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AssetPrice) TableName() string {
	return "asset_prices"
}
