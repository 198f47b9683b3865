package asset

import (
	"buyback/internal/model"
	"buyback/internal/service"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.AssetService
}

func NewHandler(service service.AssetService) *Handler {
	return &Handler{service: service}
}

// AssetListRWA 可交易的rwa token列表，支持symbol模糊搜索
func (h *Handler) AssetListRWA() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AssetListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}

		res, err := h.service.AssetListRWA(ctx, req)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.DbErr, "查询rwa资产失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// AssetListStablecoins 买方可用的稳定币列表
func (h *Handler) AssetListStablecoins() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.AssetListStablecoins(ctx)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.DbErr, "查询稳定币失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
