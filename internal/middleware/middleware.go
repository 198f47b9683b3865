package middleware

import (
	"buyback/internal/handler/ping"
	"github.com/gin-gonic/gin"
)

// Middleware 全局中间件，作为一个Router在业务路由之前加载
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) Load(g *gin.Engine) {
	g.Use(gin.Recovery())
	g.Use(RequestId())
	g.Use(Logger)
	g.Use(NoCache())
	g.Use(Options())
	g.Use(Secure())

	// 健康检查，服务启动自检也打这个
	g.GET("/ping", ping.Ping())
}
