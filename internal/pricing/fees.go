package pricing

import (
	"math/big"

	"buyback/internal/consts"
	"buyback/internal/model"
)

// 卖单报价引擎。全部用定点整数算，中间不走浮点，
// 除法一律向零截断，平台的抽成只会少算不会多算。

// StablecoinRate 稳定币对美元的汇率，price用decimal位定点表示
type StablecoinRate struct {
	Price   float64
	Decimal int32
}

// FeeBreakdown 每单位token的费用拆分，都是Decimals位的定点整数
type FeeBreakdown struct {
	VacancyFee           *big.Int
	LiquidityProviderFee *big.Int
	PlatformFee          *big.Int
	Decimals             int32
}

// ScaledAmount 定点金额
type ScaledAmount struct {
	Price    *big.Int
	Decimals int32
}

// Quoter 对某个token的一次报价上下文。字段允许为nil，
// 表示对应数据还没加载好，这时所有方法都返回零值结果。
type Quoter struct {
	Token         *model.Asset
	Prices        *model.TokenPrices
	Stablecoin    *model.Asset
	StablecoinUSD *float64 // 2位定点来源的美元价
}

func zeroFees(decimals int32) FeeBreakdown {
	return FeeBreakdown{
		VacancyFee:           new(big.Int),
		LiquidityProviderFee: new(big.Int),
		PlatformFee:          new(big.Int),
		Decimals:             decimals,
	}
}

// Fees 计算费用拆分。
// vacancy费是基本面价和回购价的绝对差价（按单位token收），
// 流动性费取基本面价的1%，平台费跟流动性费相同。
// 传入stablecoin汇率时两个价格都乘上汇率，结果位数加宽。
func (q Quoter) Fees(inputAmount string, decimals int32, rate *StablecoinRate) FeeBreakdown {
	result := zeroFees(decimals)
	if q.Token == nil || inputAmount == "" || q.Prices == nil {
		return result
	}
	if _, ok := ParseAmount(inputAmount); !ok {
		return result
	}

	fundamentalPrice := ToScaledInteger(q.Prices.FundamentalPrice, decimals)
	buyBackPrice := ToScaledInteger(q.Prices.BuyBackPrice, decimals)
	if rate != nil {
		scaledRate := ToScaledInteger(rate.Price, rate.Decimal)
		fundamentalPrice.Mul(fundamentalPrice, scaledRate)
		buyBackPrice.Mul(buyBackPrice, scaledRate)
	}

	vacancyFee := new(big.Int).Sub(fundamentalPrice, buyBackPrice)
	// 1% = *1/10^2，整数除法向零截断
	liquidityProviderFee := new(big.Int).Quo(fundamentalPrice, Pow10(2))

	result.VacancyFee = vacancyFee
	result.LiquidityProviderFee = liquidityProviderFee
	result.PlatformFee = new(big.Int).Set(liquidityProviderFee)
	if rate != nil {
		result.Decimals = decimals + rate.Decimal
	}
	return result
}

// SentAmountUSD 毛收入：amount * 基本面价，2位定点
func (q Quoter) SentAmountUSD(inputAmount string) ScaledAmount {
	result := ScaledAmount{Price: new(big.Int)}
	if q.Token == nil || inputAmount == "" || q.Prices == nil {
		return result
	}
	result.Decimals = consts.UsdDecimals
	parsed, ok := ParseAmount(inputAmount)
	if !ok {
		return result
	}

	fundamentalPrice := ToScaledInteger(q.Prices.FundamentalPrice, result.Decimals)
	amount := ToScaledInteger(parsed, q.Token.Decimals)

	result.Price = amount.Mul(amount, fundamentalPrice).Quo(amount, Pow10(q.Token.Decimals))
	return result
}

// ReceivedAmountUSD 净收入：扣掉三项费用后的美元金额，2位定点
func (q Quoter) ReceivedAmountUSD(inputAmount string) ScaledAmount {
	result := ScaledAmount{Price: new(big.Int)}
	if q.Token == nil || inputAmount == "" || q.Prices == nil {
		return result
	}
	result.Decimals = consts.UsdDecimals
	parsed, ok := ParseAmount(inputAmount)
	if !ok {
		return result
	}

	fees := q.Fees(inputAmount, result.Decimals, nil)
	fundamentalPrice := ToScaledInteger(q.Prices.FundamentalPrice, result.Decimals)
	finalPrice := new(big.Int).Sub(fundamentalPrice, fees.VacancyFee)
	finalPrice.Sub(finalPrice, fees.LiquidityProviderFee)
	finalPrice.Sub(finalPrice, fees.PlatformFee)
	amount := ToScaledInteger(parsed, q.Token.Decimals)

	result.Price = amount.Mul(amount, finalPrice).Quo(amount, Pow10(q.Token.Decimals))
	return result
}

// ReceivedAmountStablecoin 净收入换算成所选稳定币的定点金额。
// 比美元口径多一次汇率乘法（2位定点），最后多除一个10^2去掉汇率的位数。
func (q Quoter) ReceivedAmountStablecoin(inputAmount string) ScaledAmount {
	result := ScaledAmount{Price: new(big.Int)}
	if q.Token == nil || inputAmount == "" || q.Prices == nil || q.Stablecoin == nil || q.StablecoinUSD == nil {
		return result
	}
	result.Decimals = q.Stablecoin.Decimals
	parsed, ok := ParseAmount(inputAmount)
	if !ok {
		return result
	}

	rate := &StablecoinRate{Price: *q.StablecoinUSD, Decimal: consts.CrossRateDecimals}
	fees := q.Fees(inputAmount, result.Decimals, rate)
	fundamentalPrice := ToScaledInteger(q.Prices.FundamentalPrice, result.Decimals)
	fundamentalPrice.Mul(fundamentalPrice, ToScaledInteger(rate.Price, rate.Decimal))
	finalPrice := fundamentalPrice.Sub(fundamentalPrice, fees.VacancyFee)
	finalPrice.Sub(finalPrice, fees.LiquidityProviderFee)
	finalPrice.Sub(finalPrice, fees.PlatformFee)
	amount := ToScaledInteger(parsed, q.Token.Decimals)

	result.Price = amount.Mul(amount, finalPrice).Quo(amount, Pow10(q.Token.Decimals+consts.CrossRateDecimals))
	return result
}
