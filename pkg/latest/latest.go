package latest

import "sync"

// 并发请求的"最新优先"守卫。同一个key可能有多个在途请求，
// 只有最后发起的那个有权写回结果，旧请求晚到也不会覆盖新数据。

type Guard struct {
	mu  sync.Mutex
	gen map[string]uint64
}

func NewGuard() *Guard {
	return &Guard{gen: make(map[string]uint64)}
}

// Begin 登记一次新请求，返回它的代号
func (g *Guard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen[key]++
	return g.gen[key]
}

// Latest 判断代号是否还是该key的最新一次请求
func (g *Guard) Latest(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[key] == gen
}
