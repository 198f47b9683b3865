package dao

import (
	"context"

	"buyback/internal/model/entity"
	"gorm.io/gorm"
)

type StrategyDao struct {
	db *gorm.DB
}

func NewStrategyDao(db *gorm.DB) *StrategyDao {
	return &StrategyDao{db: db}
}

func (d *StrategyDao) StrategyGetByAddress(ctx context.Context, address string) (s entity.Strategy, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Strategy{}).
		Where("address = ?", address).
		First(&s).Error
	return
}

func (d *StrategyDao) StrategyGetList(ctx context.Context) (list []entity.Strategy, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Strategy{}).
		Order("name ASC").
		Find(&list).Error
	return
}

func (d *StrategyDao) HoldingsGetByStrategy(ctx context.Context, strategyAddress string) (list []entity.Holding, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Holding{}).
		Where("strategy_address = ?", strategyAddress).
		Find(&list).Error
	return
}

// 回写链上刷出来的TVL
func (d *StrategyDao) StrategyUpdateTvl(ctx context.Context, address string, tvl float64) error {
	return d.db.WithContext(ctx).Model(&entity.Strategy{}).
		Where("address = ?", address).
		Update("tvl", tvl).Error
}
