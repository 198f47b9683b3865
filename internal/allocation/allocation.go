package allocation

import (
	"sort"

	"buyback/internal/model"
)

// 持仓占比聚合。占比每次查询现算，排序+top-N拆分给饼图用。

// OtherSymbol 长尾合并后的伪持仓符号
const OtherSymbol = "Other"

// OtherAddress 伪持仓没有真实地址
const OtherAddress = "0x"

// Tvl 持仓市值合计，后端没有给出tvl时用它兜底
func Tvl(holdings []model.Holding) float64 {
	var sum float64
	for _, h := range holdings {
		sum += h.Amount * h.Value
	}
	return sum
}

// Compute 计算每条持仓的allocation和allocationPercent。
// tvl<=0时占比一律记0，不允许NaN漏出去。
func Compute(holdings []model.Holding, tvl float64) []model.Holding {
	out := make([]model.Holding, len(holdings))
	copy(out, holdings)
	if tvl <= 0 {
		for i := range out {
			out[i].Allocation = 0
			out[i].AllocationPercent = 0
		}
		return out
	}
	for i := range out {
		out[i].Allocation = out[i].Amount * out[i].Value / tvl
		// 源头上allocation和allocationPercent有两套算法，这里统一：
		// 都是占TVL的比例，展示端乘100即可
		out[i].AllocationPercent = out[i].Allocation
	}
	return out
}

// SortByAllocation 按占比降序，稳定排序保证占比相同的保持原序
func SortByAllocation(holdings []model.Holding) []model.Holding {
	out := make([]model.Holding, len(holdings))
	copy(out, holdings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Allocation > out[j].Allocation
	})
	return out
}

// SplitTop 拆出前n条，长尾合并成一条Other伪持仓。
// Other只进饼图数据，明细表里不出现。
func SplitTop(holdings []model.Holding, n int) (top []model.Holding, other []model.Holding, pie []model.Holding) {
	if n < 0 {
		n = 0
	}
	if n > len(holdings) {
		n = len(holdings)
	}
	top = holdings[:n]
	other = holdings[n:]

	var otherAllocation float64
	for _, h := range other {
		otherAllocation += h.Allocation
	}

	pie = make([]model.Holding, 0, len(top)+1)
	pie = append(pie, top...)
	pie = append(pie, model.Holding{
		Symbol:     OtherSymbol,
		Address:    OtherAddress,
		Value:      0,
		Amount:     0,
		Allocation: otherAllocation,
	})
	return top, other, pie
}

// FleetKPI 多策略汇总：tvl直接求和，apy只对有值的策略取简单平均，
// 全都没有时记0
func FleetKPI(strategies []model.Strategy) model.FleetKPI {
	var kpi model.FleetKPI
	var undefinedAPY int
	for _, s := range strategies {
		kpi.Tvl += s.Tvl
		if s.Apy == nil {
			undefinedAPY++
			continue
		}
		kpi.Apy += *s.Apy
	}
	if n := len(strategies) - undefinedAPY; n > 0 {
		kpi.Apy /= float64(n)
	} else {
		kpi.Apy = 0
	}
	return kpi
}
