package service

import (
	"context"
	"time"

	"buyback/internal/consts"
	"buyback/internal/dao"
	"buyback/internal/model"
	"buyback/internal/model/entity"
	"buyback/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var _ MarketService = (*marketService)(nil)

// MarketService 价格查询。rwa token给基本面价/回购价，
// 稳定币给2位小数的美元价。redis挡一层，落库是价格同步任务的事。
type MarketService interface {
	TokenPricesGet(ctx context.Context, address string) (model.TokenPrices, error)
	LatestPriceGet(ctx context.Context, address string) (float64, error)
	PriceUpsert(ctx context.Context, p *entity.AssetPrice) error
}

type marketService struct {
	d   *dao.PriceDao
	rdb *redis.Client // 可以为nil，此时直接打库
}

func NewMarketService(d *dao.PriceDao, rdb *redis.Client) *marketService {
	return &marketService{d: d, rdb: rdb}
}

func (s *marketService) TokenPricesGet(ctx context.Context, address string) (model.TokenPrices, error) {
	key := consts.TokenPricePrefix + address
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var tp model.TokenPrices
			if err := json.Unmarshal(cached, &tp); err == nil {
				return tp, nil
			}
		}
	}

	p, err := s.d.PriceGetByAsset(ctx, address)
	if err != nil {
		return model.TokenPrices{}, err
	}
	tp := model.TokenPrices{FundamentalPrice: p.FundamentalPrice, BuyBackPrice: p.BuyBackPrice}

	if s.rdb != nil {
		if data, err := json.Marshal(tp); err == nil {
			if err := s.rdb.Set(ctx, key, data, consts.RedisExrDefault).Err(); err != nil {
				logger.Warnf("cache token prices %s: %v", address, err)
			}
		}
	}
	return tp, nil
}

func (s *marketService) LatestPriceGet(ctx context.Context, address string) (float64, error) {
	key := consts.LatestPricePrefix + address
	if s.rdb != nil {
		if v, err := s.rdb.Get(ctx, key).Float64(); err == nil {
			return v, nil
		}
	}

	p, err := s.d.PriceGetByAsset(ctx, address)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, p.UsdPrice, consts.RedisExrDefault).Err(); err != nil {
			logger.Warnf("cache latest price %s: %v", address, err)
		}
	}
	return p.UsdPrice, nil
}

// PriceUpsert 价格源同步任务回写快照，顺带失效缓存
func (s *marketService) PriceUpsert(ctx context.Context, p *entity.AssetPrice) error {
	p.UpdatedAt = time.Now()
	if err := s.d.PriceUpsert(ctx, p); err != nil {
		return err
	}
	if s.rdb != nil {
		s.rdb.Del(ctx, consts.TokenPricePrefix+p.AssetAddress, consts.LatestPricePrefix+p.AssetAddress)
	}
	return nil
}
