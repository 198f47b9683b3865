package pricing

import (
	"testing"

	"buyback/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuoter() Quoter {
	usd := 1.0
	return Quoter{
		Token: &model.Asset{
			Address:  "0x1111111111111111111111111111111111111111",
			Symbol:   "RWA-1",
			Decimals: 18,
		},
		Prices: &model.TokenPrices{
			FundamentalPrice: 1.00,
			BuyBackPrice:     0.95,
		},
		Stablecoin: &model.Asset{
			Address:      "0x2222222222222222222222222222222222222222",
			Symbol:       "USDC",
			Decimals:     6,
			IsStableCoin: true,
		},
		StablecoinUSD: &usd,
	}
}

func TestFees(t *testing.T) {
	q := testQuoter()
	fees := q.Fees("100", 2, nil)

	// fund=1.00 bb=0.95：vacancy是差价，lp是基本面价的1%
	assert.Equal(t, "5", fees.VacancyFee.String())
	assert.Equal(t, "1", fees.LiquidityProviderFee.String())
	assert.Equal(t, "1", fees.PlatformFee.String())
	assert.Equal(t, int32(2), fees.Decimals)
}

func TestFeesPlatformEqualsLP(t *testing.T) {
	q := testQuoter()
	q.Prices = &model.TokenPrices{FundamentalPrice: 53.27, BuyBackPrice: 51.9}

	fees := q.Fees("3", 2, nil)
	assert.Equal(t, 0, fees.LiquidityProviderFee.Cmp(fees.PlatformFee))
}

func TestFeesTruncation(t *testing.T) {
	q := testQuoter()
	// 0.57的1%是0.0057，2位定点下截断成0
	q.Prices = &model.TokenPrices{FundamentalPrice: 0.57, BuyBackPrice: 0.5}

	fees := q.Fees("1", 2, nil)
	assert.Equal(t, "7", fees.VacancyFee.String())
	assert.Equal(t, "0", fees.LiquidityProviderFee.String())
	assert.Equal(t, "0", fees.PlatformFee.String())
}

func TestFeesWithRate(t *testing.T) {
	q := testQuoter()
	fees := q.Fees("100", 2, &StablecoinRate{Price: 1.0, Decimal: 2})

	// 汇率1.0，数值乘100，位数加宽到4
	assert.Equal(t, "500", fees.VacancyFee.String())
	assert.Equal(t, "100", fees.LiquidityProviderFee.String())
	assert.Equal(t, int32(4), fees.Decimals)
}

func TestFeesMissingData(t *testing.T) {
	q := testQuoter()
	q.Prices = nil

	// 价格没就绪返回全零，不是错误
	fees := q.Fees("100", 2, nil)
	assert.Equal(t, "0", fees.VacancyFee.String())
	assert.Equal(t, "0", fees.LiquidityProviderFee.String())
	assert.Equal(t, "0", fees.PlatformFee.String())

	q = testQuoter()
	fees = q.Fees("", 2, nil)
	assert.Equal(t, "0", fees.VacancyFee.String())

	q.Token = nil
	fees = q.Fees("100", 2, nil)
	assert.Equal(t, "0", fees.VacancyFee.String())
}

func TestSentAmountUSD(t *testing.T) {
	q := testQuoter()
	sent := q.SentAmountUSD("100")

	// 100个token，每个$1.00，毛收入$100.00
	assert.Equal(t, "10000", sent.Price.String())
	assert.Equal(t, int32(2), sent.Decimals)
}

func TestReceivedAmountUSD(t *testing.T) {
	q := testQuoter()
	received := q.ReceivedAmountUSD("100")

	// 每个token扣5+1+1共7分，净0.93，100个是$93.00
	assert.Equal(t, "9300", received.Price.String())
	assert.Equal(t, int32(2), received.Decimals)
}

func TestReceivedNeverExceedsSent(t *testing.T) {
	q := testQuoter()
	cases := []string{"1", "0.5", "100", "12345.678"}
	for _, amount := range cases {
		sent := q.SentAmountUSD(amount)
		received := q.ReceivedAmountUSD(amount)
		assert.True(t, received.Price.Cmp(sent.Price) <= 0, "amount %s", amount)
	}
}

func TestReceivedAmountStablecoin(t *testing.T) {
	q := testQuoter()
	received := q.ReceivedAmountStablecoin("100")

	// 汇率1.0，净$93换成6位小数的USDC
	require.NotNil(t, received.Price)
	assert.Equal(t, "93000000", received.Price.String())
	assert.Equal(t, int32(6), received.Decimals)
}

func TestReceivedAmountStablecoinMissingRate(t *testing.T) {
	q := testQuoter()
	q.StablecoinUSD = nil

	received := q.ReceivedAmountStablecoin("100")
	assert.Equal(t, "0", received.Price.String())
}

func TestZeroAmount(t *testing.T) {
	q := testQuoter()
	assert.Equal(t, "0", q.SentAmountUSD("0").Price.String())
	assert.Equal(t, "0", q.ReceivedAmountUSD("0").Price.String())
}
