package service

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"buyback/conf"
	"buyback/internal/allocation"
	"buyback/internal/chain"
	"buyback/internal/dao"
	"buyback/internal/model"
	"buyback/internal/model/entity"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
)

var _ StrategyService = (*strategyService)(nil)

// StrategyService 金库策略的只读聚合：详情（持仓占比+饼图）、
// 列表（带汇总KPI）。TVL定时从链上刷。
type StrategyService interface {
	StrategyGetByAddress(ctx context.Context, req model.StrategyDetailReq) (model.StrategyDetailRes, error)
	StrategyGetList(ctx context.Context) (model.StrategyListRes, error)
	RefreshTvl(ctx context.Context) error
}

type strategyService struct {
	d      *dao.StrategyDao
	assets *dao.AssetDao
	market MarketService
	chain  *chain.Client // 可以为nil，此时TVL只用库里的快照
	cfg    conf.StrategyConfig
}

func NewStrategyService(d *dao.StrategyDao, assets *dao.AssetDao, market MarketService, cc *chain.Client, cfg conf.StrategyConfig) *strategyService {
	return &strategyService{d: d, assets: assets, market: market, chain: cc, cfg: cfg}
}

// withLogo 控制返回的资产要不要带logo地址，列表页不需要省点流量
func (s *strategyService) assetByAddress(ctx context.Context, address string, withLogo bool) model.Asset {
	e, err := s.assets.AssetGetByAddress(ctx, address)
	if err != nil {
		return model.Asset{Address: address}
	}
	m := toAssetModel(e)
	if !withLogo {
		m.LogoUrl = ""
	}
	return m
}

func (s *strategyService) toStrategyModel(ctx context.Context, e entity.Strategy, withLogo bool) model.Strategy {
	return model.Strategy{
		Name:            e.Name,
		Description:     e.Description,
		ContractAbi:     json.RawMessage(e.ContractAbi),
		UnderlyingAsset: s.assetByAddress(ctx, e.UnderlyingAssetAddress, withLogo),
		Share:           s.assetByAddress(ctx, e.ShareAssetAddress, withLogo),
		IsPaused:        e.IsPaused,
		Tvl:             e.Tvl,
		Apy:             e.Apy,
	}
}

func (s *strategyService) StrategyGetByAddress(ctx context.Context, req model.StrategyDetailReq) (model.StrategyDetailRes, error) {
	var res model.StrategyDetailRes
	e, err := s.d.StrategyGetByAddress(ctx, req.Address)
	if err != nil {
		return res, errors.WithCode(ecode.NotFoundErr, "strategy %s not found", req.Address)
	}
	res.Strategy = s.toStrategyModel(ctx, e, req.Logo)

	rows, err := s.d.HoldingsGetByStrategy(ctx, req.Address)
	if err != nil {
		return res, errors.Wrap(err, ecode.DbErr, "query holdings")
	}
	holdings := make([]model.Holding, 0, len(rows))
	for _, r := range rows {
		holdings = append(holdings, model.Holding{
			Address: r.AssetAddress,
			Symbol:  r.Symbol,
			Value:   r.Value,
			Amount:  r.Amount,
		})
	}

	// 库里没TVL就用持仓市值兜底
	tvl := e.Tvl
	if tvl <= 0 {
		tvl = allocation.Tvl(holdings)
	}
	res.Tvl = tvl

	holdings = allocation.SortByAllocation(allocation.Compute(holdings, tvl))
	res.Holdings = holdings
	top, _, pie := allocation.SplitTop(holdings, s.cfg.TopHoldings)
	res.TopHoldings = top
	res.PieChartData = pie
	return res, nil
}

func (s *strategyService) StrategyGetList(ctx context.Context) (model.StrategyListRes, error) {
	var res model.StrategyListRes
	list, err := s.d.StrategyGetList(ctx)
	if err != nil {
		return res, errors.Wrap(err, ecode.DbErr, "query strategies")
	}
	res.Strategies = make([]model.Strategy, 0, len(list))
	for _, e := range list {
		res.Strategies = append(res.Strategies, s.toStrategyModel(ctx, e, false))
	}
	res.Kpi = allocation.FleetKPI(res.Strategies)
	return res, nil
}

// RefreshTvl 从链上读每个金库的totalAssets，乘上底层资产的美元价回写。
// 单个策略失败只记日志，不影响其它的。
func (s *strategyService) RefreshTvl(ctx context.Context) error {
	if s.chain == nil {
		return nil
	}
	list, err := s.d.StrategyGetList(ctx)
	if err != nil {
		return errors.Wrap(err, ecode.DbErr, "query strategies")
	}
	for _, e := range list {
		if err := s.refreshOne(ctx, e); err != nil {
			logger.Warn("refresh tvl failed", logger.Pair("strategy", e.Address), logger.Pair("err", err))
		}
	}
	return nil
}

func (s *strategyService) refreshOne(ctx context.Context, e entity.Strategy) error {
	total, err := s.chain.TotalAssets(ctx, common.HexToAddress(e.Address))
	if err != nil {
		return err
	}
	asset, err := s.assets.AssetGetByAddress(ctx, e.UnderlyingAssetAddress)
	if err != nil {
		return err
	}
	price, err := s.market.LatestPriceGet(ctx, e.UnderlyingAssetAddress)
	if err != nil {
		return err
	}

	// totalAssets是底层资产decimals的定点整数，换算回浮点美元
	f := new(big.Float).SetInt(total)
	f.Quo(f, big.NewFloat(pow10f(asset.Decimals)))
	amount, _ := f.Float64()
	tvl := amount * price

	return s.d.StrategyUpdateTvl(ctx, e.Address, tvl)
}

func pow10f(n int32) float64 {
	v := 1.0
	for i := int32(0); i < n; i++ {
		v *= 10
	}
	return v
}

// StartTvlRefresher 后台定时刷TVL，interval<=0不启动
func (s *strategyService) StartTvlRefresher(ctx context.Context) {
	if s.cfg.TvlRefreshInterval <= 0 || s.chain == nil {
		return
	}
	interval := time.Duration(s.cfg.TvlRefreshInterval) * time.Second
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.RefreshTvl(ctx); err != nil {
					logger.Errorf("tvl refresh round: %v", err)
				}
			}
		}
	}()
}
