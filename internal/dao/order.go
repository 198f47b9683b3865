package dao

import (
	"context"

	"buyback/internal/model/entity"
	"gorm.io/gorm"
)

type OrderDao struct {
	db *gorm.DB
}

func NewOrderDao(db *gorm.DB) *OrderDao {
	return &OrderDao{db: db}
}

// 插入卖单
func (d *OrderDao) OrderCreate(ctx context.Context, o *entity.Order) error {
	return d.db.WithContext(ctx).Create(o).Error
}

// 查找用户在某个token上的活跃卖单（已取消的被软删除过滤掉）
func (d *OrderDao) OrderGetActiveSell(ctx context.Context, userAddress, offerAsset string) (list []entity.Order, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Order{}).
		Where("user_address = ?", userAddress).
		Where("offer_asset_address = ?", offerAsset).
		Order("created_at DESC").
		Find(&list).Error
	return
}

func (d *OrderDao) OrderGetById(ctx context.Context, id int64) (o entity.Order, err error) {
	err = d.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		First(&o).Error
	return
}

// 更新卖单数量
func (d *OrderDao) OrderUpdateAmount(ctx context.Context, id int64, amount float64) error {
	return d.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("amount", amount).Error
}

// 结算引擎的成交回报，只有这里会动filled_amount
func (d *OrderDao) OrderRecordFill(ctx context.Context, id int64, filledAmount float64, stillActive bool) error {
	return d.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"filled_amount": filledAmount,
			"is_active":     stillActive,
		}).Error
}

// 取消卖单：软删除
func (d *OrderDao) OrderCancel(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Order{}).Error
}
