package router

import (
	"buyback/internal/handler/asset"
	"buyback/internal/handler/market"
	"buyback/internal/handler/order"
	"buyback/internal/handler/strategy"
	"buyback/internal/handler/ticker"
	"buyback/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	assetHandler    *asset.Handler
	marketHandler   *market.Handler
	orderHandler    *order.Handler
	strategyHandler *strategy.Handler
	tickerHandler   *ticker.Handler
}

func NewApiRouter(ah *asset.Handler, mh *market.Handler, oh *order.Handler, sh *strategy.Handler, th *ticker.Handler) *ApiRouter {
	return &ApiRouter{
		assetHandler:    ah,
		marketHandler:   mh,
		orderHandler:    oh,
		strategyHandler: sh,
		tickerHandler:   th,
	}
}

// Load 路由路径跟前端约定保持不变
func (api *ApiRouter) Load(g *gin.Engine) {

	a := g.Group("/asset")
	{
		// 可交易的rwa token
		a.GET("/rwa", api.assetHandler.AssetListRWA())
		// 买方可用的稳定币
		a.GET("/stablecoins", api.assetHandler.AssetListStablecoins())
	}

	g.GET("/realToken/prices", api.marketHandler.TokenPricesGet())
	g.GET("/crypto-market/latest-price", api.marketHandler.LatestPriceGet())

	m := g.Group("/main")
	{
		m.GET("/strategy", api.strategyHandler.StrategyGet())
		m.GET("/strategies", api.strategyHandler.StrategyList())
	}

	o := g.Group("/order")
	{
		o.GET("/active-sell", api.orderHandler.OrderGetActiveSell())
		o.GET("/quote", api.orderHandler.OrderQuote())
		// 写操作挂防重提交
		o.POST("/create-order", middleware.AntiDuplicateMiddleware(), api.orderHandler.OrderCreate())
		o.PUT("/update-order", middleware.AntiDuplicateMiddleware(), api.orderHandler.OrderUpdate())
		o.PATCH("/cancel-order", middleware.AntiDuplicateMiddleware(), api.orderHandler.OrderCancel())
	}

	t := g.Group("/ticker")
	{
		t.GET("/ws", api.tickerHandler.ServeWS) // websocket价格推送
	}
}
