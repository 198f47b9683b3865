package model

import "encoding/json"

// Holding 策略持仓的一条。allocation是占TVL的比例(0~1)，
// 每次查询时重算，不落库。
type Holding struct {
	Address           string  `json:"address"`
	Symbol            string  `json:"symbol"`
	Value             float64 `json:"value"`
	Amount            float64 `json:"amount"`
	Allocation        float64 `json:"allocation"`
	AllocationPercent float64 `json:"allocationPercent,omitempty"`
}

// Strategy 金库策略的只读投影。share是金库的凭证token，
// underlyingAsset是存进去的资产。
type Strategy struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ContractAbi     json.RawMessage `json:"contractAbi,omitempty"`
	UnderlyingAsset Asset           `json:"underlyingAsset"`
	Share           Asset           `json:"share"`
	IsPaused        bool            `json:"isPaused"`
	Tvl             float64         `json:"tvl"`
	Apy             *float64        `json:"apy,omitempty"`
	Holdings        []Holding       `json:"holdings,omitempty"`
}

// StrategyDetailRes 策略详情，带好排序后的持仓和饼图数据
type StrategyDetailRes struct {
	Strategy
	TopHoldings  []Holding `json:"topHoldings,omitempty"`
	PieChartData []Holding `json:"pieChartData,omitempty"`
}

// FleetKPI 多策略汇总指标
type FleetKPI struct {
	Tvl float64 `json:"tvl"`
	Apy float64 `json:"apy"`
}

// StrategyListRes 策略列表带汇总KPI
type StrategyListRes struct {
	Strategies []Strategy `json:"strategies"`
	Kpi        FleetKPI   `json:"kpi"`
}

type StrategyDetailReq struct {
	Address string `form:"address" binding:"required,eth_addr"`
	// logo=true时返回带logo地址的资产信息
	Logo bool `form:"logo"`
}
