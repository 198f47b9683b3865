package latest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardLatestWins(t *testing.T) {
	g := NewGuard()

	gen1 := g.Begin("price:0xabc")
	gen2 := g.Begin("price:0xabc")

	// 先发的请求晚到，不允许写回
	assert.False(t, g.Latest("price:0xabc", gen1))
	assert.True(t, g.Latest("price:0xabc", gen2))
}

func TestGuardKeysIndependent(t *testing.T) {
	g := NewGuard()

	genA := g.Begin("a")
	g.Begin("b")

	// b的新请求不影响a
	assert.True(t, g.Latest("a", genA))
}

func TestGuardConcurrent(t *testing.T) {
	g := NewGuard()

	var wg sync.WaitGroup
	last := make([]uint64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			last[i] = g.Begin("k")
		}(i)
	}
	wg.Wait()

	// 只有一个代号是最新的
	latest := 0
	for _, gen := range last {
		if g.Latest("k", gen) {
			latest++
		}
	}
	assert.Equal(t, 1, latest)
}
