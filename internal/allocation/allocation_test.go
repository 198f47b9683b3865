package allocation

import (
	"testing"

	"buyback/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHoldings() []model.Holding {
	return []model.Holding{
		{Address: "0xa", Symbol: "AAA", Value: 2.0, Amount: 100}, // 市值200
		{Address: "0xb", Symbol: "BBB", Value: 1.0, Amount: 500}, // 市值500
		{Address: "0xc", Symbol: "CCC", Value: 10.0, Amount: 30}, // 市值300
	}
}

func TestTvl(t *testing.T) {
	assert.Equal(t, 1000.0, Tvl(testHoldings()))
	assert.Equal(t, 0.0, Tvl(nil))
}

func TestCompute(t *testing.T) {
	holdings := Compute(testHoldings(), 1000)

	assert.Equal(t, 0.2, holdings[0].Allocation)
	assert.Equal(t, 0.5, holdings[1].Allocation)
	assert.Equal(t, 0.3, holdings[2].Allocation)

	// allocation和allocationPercent是同一个口径
	for _, h := range holdings {
		assert.Equal(t, h.Allocation, h.AllocationPercent)
	}

	// 占比之和不超过1
	var sum float64
	for _, h := range holdings {
		sum += h.Allocation
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeZeroTvl(t *testing.T) {
	// tvl为0时占比全部记0，不能出NaN
	holdings := Compute(testHoldings(), 0)
	for _, h := range holdings {
		assert.Equal(t, 0.0, h.Allocation)
		assert.Equal(t, 0.0, h.AllocationPercent)
	}
}

func TestSortByAllocation(t *testing.T) {
	holdings := SortByAllocation(Compute(testHoldings(), 1000))

	assert.Equal(t, "BBB", holdings[0].Symbol)
	assert.Equal(t, "CCC", holdings[1].Symbol)
	assert.Equal(t, "AAA", holdings[2].Symbol)
}

func TestSortStable(t *testing.T) {
	holdings := []model.Holding{
		{Symbol: "X", Allocation: 0.5},
		{Symbol: "Y", Allocation: 0.5},
	}
	sorted := SortByAllocation(holdings)
	// 占比相同保持原序
	assert.Equal(t, "X", sorted[0].Symbol)
	assert.Equal(t, "Y", sorted[1].Symbol)
}

func TestSplitTop(t *testing.T) {
	holdings := SortByAllocation(Compute(testHoldings(), 1000))
	top, other, pie := SplitTop(holdings, 2)

	require.Len(t, top, 2)
	require.Len(t, other, 1)
	require.Len(t, pie, 3)

	// 长尾合并成一条Other伪持仓
	last := pie[len(pie)-1]
	assert.Equal(t, OtherSymbol, last.Symbol)
	assert.Equal(t, OtherAddress, last.Address)
	assert.InDelta(t, 0.2, last.Allocation, 1e-9)
}

func TestSplitTopBounds(t *testing.T) {
	holdings := Compute(testHoldings(), 1000)

	// n超过持仓数时全部进top，Other占比为0
	top, other, pie := SplitTop(holdings, 10)
	assert.Len(t, top, 3)
	assert.Len(t, other, 0)
	assert.Equal(t, 0.0, pie[len(pie)-1].Allocation)

	top, _, _ = SplitTop(holdings, -1)
	assert.Len(t, top, 0)
}

func TestFleetKPI(t *testing.T) {
	apy1 := 0.1
	apy3 := 0.3
	strategies := []model.Strategy{
		{Tvl: 100, Apy: &apy1},
		{Tvl: 50, Apy: nil},
		{Tvl: 200, Apy: &apy3},
	}

	kpi := FleetKPI(strategies)
	assert.Equal(t, 350.0, kpi.Tvl)
	// apy只平均有值的策略
	assert.InDelta(t, 0.2, kpi.Apy, 1e-9)
}

func TestFleetKPIAllNil(t *testing.T) {
	strategies := []model.Strategy{{Tvl: 100}, {Tvl: 200}}
	kpi := FleetKPI(strategies)
	assert.Equal(t, 300.0, kpi.Tvl)
	assert.Equal(t, 0.0, kpi.Apy)
}

func TestFleetKPIEmpty(t *testing.T) {
	kpi := FleetKPI(nil)
	assert.Equal(t, 0.0, kpi.Tvl)
	assert.Equal(t, 0.0, kpi.Apy)
}
