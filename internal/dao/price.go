package dao

import (
	"context"

	"buyback/internal/model/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PriceDao struct {
	db *gorm.DB
}

func NewPriceDao(db *gorm.DB) *PriceDao {
	return &PriceDao{db: db}
}

func (d *PriceDao) PriceGetByAsset(ctx context.Context, address string) (p entity.AssetPrice, err error) {
	err = d.db.WithContext(ctx).Model(&entity.AssetPrice{}).
		Where("asset_address = ?", address).
		First(&p).Error
	return
}

// 按资产地址upsert价格快照，价格源的同步任务会反复调用
func (d *PriceDao) PriceUpsert(ctx context.Context, p *entity.AssetPrice) error {
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"fundamental_price", "buy_back_price", "usd_price", "updated_at"}),
	}).Create(p).Error
}
