package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type InboundOrderGormRepository struct {
	db *gorm.DB
}

func NewInboundOrderGormRepository(db *gorm.DB) *InboundOrderGormRepository {
	return &InboundOrderGormRepository{db: db}
}

// 品目名・仕入先名はLEFT JOIN（削除済みならnull）
func (r *InboundOrderGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("inbound_orders").
		Select("inbound_orders.*, items.name AS item_name, suppliers.name AS supplier_name").
		Joins("LEFT JOIN items ON items.id = inbound_orders.item_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = inbound_orders.supplier_id")
}

func (r *InboundOrderGormRepository) Create(ctx context.Context, o *model.InboundOrder) error {
	return translateError(r.db.WithContext(ctx).Create(o).Error)
}

func (r *InboundOrderGormRepository) FindByID(ctx context.Context, id int64) (model.InboundOrderView, error) {
	var v model.InboundOrderView
	res := r.views(ctx).Where("inbound_orders.id = ?", id).Limit(1).Scan(&v)
	if err := affectedOrNotFound(res); err != nil {
		return model.InboundOrderView{}, err
	}
	return v, nil
}

func (r *InboundOrderGormRepository) List(ctx context.Context) ([]model.InboundOrderView, error) {
	var list []model.InboundOrderView
	if err := r.views(ctx).Order("inbound_orders.id DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type OutboundOrderGormRepository struct {
	db *gorm.DB
}

func NewOutboundOrderGormRepository(db *gorm.DB) *OutboundOrderGormRepository {
	return &OutboundOrderGormRepository{db: db}
}

func (r *OutboundOrderGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("outbound_orders").
		Select("outbound_orders.*, items.name AS item_name, customers.name AS customer_name").
		Joins("LEFT JOIN items ON items.id = outbound_orders.item_id").
		Joins("LEFT JOIN customers ON customers.id = outbound_orders.customer_id")
}

func (r *OutboundOrderGormRepository) Create(ctx context.Context, o *model.OutboundOrder) error {
	return translateError(r.db.WithContext(ctx).Create(o).Error)
}

func (r *OutboundOrderGormRepository) FindByID(ctx context.Context, id int64) (model.OutboundOrderView, error) {
	var v model.OutboundOrderView
	res := r.views(ctx).Where("outbound_orders.id = ?", id).Limit(1).Scan(&v)
	if err := affectedOrNotFound(res); err != nil {
		return model.OutboundOrderView{}, err
	}
	return v, nil
}

func (r *OutboundOrderGormRepository) List(ctx context.Context) ([]model.OutboundOrderView, error) {
	var list []model.OutboundOrderView
	if err := r.views(ctx).Order("outbound_orders.id DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var (
	_ repo.InboundOrderRepository  = (*InboundOrderGormRepository)(nil)
	_ repo.OutboundOrderRepository = (*OutboundOrderGormRepository)(nil)
)
