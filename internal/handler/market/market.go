package market

import (
	"buyback/internal/model"
	"buyback/internal/service"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.MarketService
}

func NewHandler(service service.MarketService) *Handler {
	return &Handler{service: service}
}

// TokenPricesGet rwa token的基本面价/回购价。
// 价格快照还没同步到的token返回零值，前端按加载中处理。
func (h *Handler) TokenPricesGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.TokenPricesReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.TokenPricesGet(ctx, req.Address)
		if err != nil {
			// 没有快照不算错
			response.JSON(ctx, nil, model.TokenPrices{})
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// LatestPriceGet 稳定币的美元价
func (h *Handler) LatestPriceGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.LatestPriceReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		price, err := h.service.LatestPriceGet(ctx, req.Address)
		if err != nil {
			response.JSON(ctx, nil, gin.H{"price": 0})
			return
		}
		response.JSON(ctx, nil, gin.H{"price": price})
	}
}
