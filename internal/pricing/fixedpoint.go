package pricing

import (
	"math/big"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// 定点数转换。跟链上整数语义对齐：十进制金额 -> floor(v * 10^decimals)
// 的大整数，转换只在这一步有损。

var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// ValidAmount 判断字符串是否是一个非负十进制数的写法。
// 空串和单独一个点会被放过，交给ParseAmount返回not ready。
func ValidAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// ParseAmount 解析用户输入的金额。返回ok=false表示输入缺失或
// 不可解析，调用方应当按"数据未就绪"处理而不是报错。
func ParseAmount(s string) (float64, bool) {
	if s == "" || !ValidAmount(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToScaledInteger 返回 floor(v * 10^decimals) 的任意精度整数。
// 不会报错；负数和NaN由上游的输入过滤排除。
func ToScaledInteger(v float64, decimals int32) *big.Int {
	return decimal.NewFromFloat(v).Shift(decimals).Floor().BigInt()
}

// Pow10 10^n 的大整数，n >= 0
func Pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
