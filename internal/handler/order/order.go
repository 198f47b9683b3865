package order

import (
	"buyback/internal/model"
	"buyback/internal/service"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.OrderService
}

func NewHandler(service service.OrderService) *Handler {
	return &Handler{service: service}
}

// OrderGetActiveSell 查询用户在某个token上的活跃卖单
func (h *Handler) OrderGetActiveSell() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderActiveSellReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.OrderGetActiveSell(ctx, req.UserAddress, req.OfferAsset)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// OrderCreate 创建卖单。同一个token上已有活跃卖单时报错
func (h *Handler) OrderCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.OrderCreateNew(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// OrderUpdate 改单，只允许加量
func (h *Handler) OrderUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.OrderUpdateAmount(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// OrderCancel 取消卖单
func (h *Handler) OrderCancel() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderCancelReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		ok, err := h.service.OrderCancel(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"cancelled": ok})
	}
}

// OrderQuote 下单前报价：费用拆分、毛/净金额
func (h *Handler) OrderQuote() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderQuoteReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.OrderQuote(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
