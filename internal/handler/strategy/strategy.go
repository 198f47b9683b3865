package strategy

import (
	"buyback/internal/model"
	"buyback/internal/service"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.StrategyService
}

func NewHandler(service service.StrategyService) *Handler {
	return &Handler{service: service}
}

// StrategyGet 策略详情：持仓占比、top持仓和饼图数据
func (h *Handler) StrategyGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.StrategyDetailReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.StrategyGetByAddress(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// StrategyList 策略列表带汇总KPI
func (h *Handler) StrategyList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.StrategyGetList(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
