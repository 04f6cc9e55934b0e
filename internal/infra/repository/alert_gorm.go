package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type AlertGormRepository struct {
	db *gorm.DB
}

func NewAlertGormRepository(db *gorm.DB) *AlertGormRepository {
	return &AlertGormRepository{db: db}
}

func (r *AlertGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("inventory_alerts").
		Select("inventory_alerts.*, items.name AS item_name").
		Joins("LEFT JOIN items ON items.id = inventory_alerts.item_id")
}

func (r *AlertGormRepository) Create(ctx context.Context, a *model.InventoryAlert) error {
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *AlertGormRepository) FindByID(ctx context.Context, id int64) (model.InventoryAlertView, error) {
	var v model.InventoryAlertView
	res := r.views(ctx).Where("inventory_alerts.id = ?", id).Limit(1).Scan(&v)
	if err := affectedOrNotFound(res); err != nil {
		return model.InventoryAlertView{}, err
	}
	return v, nil
}

//新しい順
func (r *AlertGormRepository) List(ctx context.Context) ([]model.InventoryAlertView, error) {
	var list []model.InventoryAlertView
	if err := r.views(ctx).Order("inventory_alerts.id DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ repo.AlertRepository = (*AlertGormRepository)(nil)
