package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAmount(t *testing.T) {
	valid := []string{"0", "1", "100", "0.5", "1.23", ".5", "5.", "", "."}
	for _, s := range valid {
		assert.True(t, ValidAmount(s), "should accept %q", s)
	}

	invalid := []string{"-1", "1.2.3", "1e5", "abc", "1,000", " 1"}
	for _, s := range invalid {
		assert.False(t, ValidAmount(s), "should reject %q", s)
	}
}

func TestParseAmount(t *testing.T) {
	v, ok := ParseAmount("1.5")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	// 空串和单独一个点按未就绪处理
	_, ok = ParseAmount("")
	assert.False(t, ok)
	_, ok = ParseAmount(".")
	assert.False(t, ok)
	_, ok = ParseAmount("-1")
	assert.False(t, ok)
}

func TestToScaledInteger(t *testing.T) {
	assert.Equal(t, "100", ToScaledInteger(1.0, 2).String())
	assert.Equal(t, "95", ToScaledInteger(0.95, 2).String())
	assert.Equal(t, "0", ToScaledInteger(0, 2).String())

	// 截断向下取整
	assert.Equal(t, "123", ToScaledInteger(1.239, 2).String())

	// 浮点表示不精确的值也要落在正确的整数上
	assert.Equal(t, "1005", ToScaledInteger(10.05, 2).String())
	assert.Equal(t, "7", ToScaledInteger(0.07, 2).String())
}

func TestPow10(t *testing.T) {
	assert.Equal(t, "1", Pow10(0).String())
	assert.Equal(t, "100", Pow10(2).String())
	assert.Equal(t, "1000000000000000000", Pow10(18).String())
}
