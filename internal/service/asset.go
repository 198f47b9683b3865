package service

import (
	"context"

	"buyback/internal/consts"
	"buyback/internal/dao"
	"buyback/internal/model"
	"buyback/internal/model/entity"
)

var _ AssetService = (*assetService)(nil)

type AssetService interface {
	AssetListRWA(ctx context.Context, req model.AssetListReq) ([]model.Asset, error)
	AssetListStablecoins(ctx context.Context) ([]model.Asset, error)
	AssetGetByAddress(ctx context.Context, address string) (model.Asset, error)
}

type assetService struct {
	d *dao.AssetDao
}

func NewAssetService(d *dao.AssetDao) *assetService {
	return &assetService{d: d}
}

func toAssetModel(e entity.Asset) model.Asset {
	return model.Asset{
		Address:      e.Address,
		Symbol:       e.Symbol,
		ShortName:    e.ShortName,
		LogoUrl:      e.LogoUrl,
		Supply:       e.Supply,
		Decimals:     e.Decimals,
		IsStableCoin: e.IsStableCoin,
		IsERC20:      e.IsERC20,
		IsCSMToken:   e.IsCSMToken,
	}
}

func (s *assetService) AssetListRWA(ctx context.Context, req model.AssetListReq) ([]model.Asset, error) {
	if req.Page > 0 && req.PageSize <= 0 {
		req.PageSize = consts.DefaultPageSize
	}
	list, err := s.d.AssetListRWA(ctx, req.Search, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	res := make([]model.Asset, 0, len(list))
	for _, e := range list {
		res = append(res, toAssetModel(e))
	}
	return res, nil
}

func (s *assetService) AssetListStablecoins(ctx context.Context) ([]model.Asset, error) {
	list, err := s.d.AssetListStablecoins(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]model.Asset, 0, len(list))
	for _, e := range list {
		res = append(res, toAssetModel(e))
	}
	return res, nil
}

func (s *assetService) AssetGetByAddress(ctx context.Context, address string) (model.Asset, error) {
	e, err := s.d.AssetGetByAddress(ctx, address)
	if err != nil {
		return model.Asset{}, err
	}
	return toAssetModel(e), nil
}
