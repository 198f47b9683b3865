package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Strategy 金库策略。address是金库合约地址（share token），
// contract_abi整段存JSON，前端发交易时直接用。
type Strategy struct {
	Id                     int64          `gorm:"column:id;primary_key;" json:"id"`
	Address                string         `gorm:"column:address;uniqueIndex;size:42" json:"address"`
	Name                   string         `gorm:"column:name" json:"name"`
	Description            string         `gorm:"column:description;type:text" json:"description"`
	ContractAbi            datatypes.JSON `gorm:"column:contract_abi" json:"contract_abi"`
	UnderlyingAssetAddress string         `gorm:"column:underlying_asset_address;size:42" json:"underlying_asset_address"`
	ShareAssetAddress      string         `gorm:"column:share_asset_address;size:42" json:"share_asset_address"`
	IsPaused               bool           `gorm:"column:is_paused" json:"is_paused"`
	Tvl                    float64        `gorm:"column:tvl" json:"tvl"`
	Apy                    *float64       `gorm:"column:apy" json:"apy"`
	CreatedAt              time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Strategy) TableName() string {
	return "strategies"
}

// Holding 策略持仓快照，由对账任务刷新。allocation不落库。
type Holding struct {
	Id              int64     `gorm:"column:id;primary_key;" json:"id"`
	StrategyAddress string    `gorm:"column:strategy_address;index;size:42" json:"strategy_address"`
	AssetAddress    string    `gorm:"column:asset_address;size:42" json:"asset_address"`
	Symbol          string    `gorm:"column:symbol" json:"symbol"`
	Value           float64   `gorm:"column:value" json:"value"`
	Amount          float64   `gorm:"column:amount" json:"amount"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Holding) TableName() string {
	return "strategy_holdings"
}
