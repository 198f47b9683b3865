package dao

import (
	"context"

	"buyback/internal/model/entity"
	"gorm.io/gorm"
)

type AssetDao struct {
	db *gorm.DB
}

func NewAssetDao(db *gorm.DB) *AssetDao {
	return &AssetDao{db: db}
}

// 查询rwa token（非稳定币），page从1开始，page=0不分页
func (d *AssetDao) AssetListRWA(ctx context.Context, search string, page, pageSize int) (list []entity.Asset, err error) {
	q := d.db.WithContext(ctx).Model(&entity.Asset{}).
		Where("is_stable_coin = ?", false)
	if search != "" {
		q = q.Where("symbol LIKE ?", "%"+search+"%")
	}
	if page > 0 {
		q = q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	err = q.Order("symbol ASC").Find(&list).Error
	return
}

// 查询所有稳定币
func (d *AssetDao) AssetListStablecoins(ctx context.Context) (list []entity.Asset, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Asset{}).
		Where("is_stable_coin = ?", true).
		Order("symbol ASC").
		Find(&list).Error
	return
}

func (d *AssetDao) AssetGetByAddress(ctx context.Context, address string) (a entity.Asset, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Asset{}).
		Where("address = ?", address).
		First(&a).Error
	return
}
