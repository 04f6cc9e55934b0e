package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type warehouseGormRepository struct {
	db *gorm.DB
}

func NewWarehouseGormRepository(db *gorm.DB) repo.WarehouseRepository {
	return &warehouseGormRepository{db: db}
}

func (r *warehouseGormRepository) Create(ctx context.Context, w *model.Warehouse) error {
	return translateError(r.db.WithContext(ctx).Create(w).Error)
}

func (r *warehouseGormRepository) FindByID(ctx context.Context, id int64) (model.Warehouse, error) {
	var w model.Warehouse
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return model.Warehouse{}, translateError(err)
	}
	return w, nil
}

func (r *warehouseGormRepository) List(ctx context.Context) ([]model.Warehouse, error) {
	var list []model.Warehouse
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type warehouseStaffGormRepository struct {
	db *gorm.DB
}

func NewWarehouseStaffGormRepository(db *gorm.DB) repo.WarehouseStaffRepository {
	return &warehouseStaffGormRepository{db: db}
}

func (r *warehouseStaffGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("warehouse_staff").
		Select("warehouse_staff.*, warehouses.name AS warehouse_name").
		Joins("LEFT JOIN warehouses ON warehouses.id = warehouse_staff.warehouse_id")
}

func (r *warehouseStaffGormRepository) Create(ctx context.Context, s *model.WarehouseStaff) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *warehouseStaffGormRepository) FindByID(ctx context.Context, id int64) (model.WarehouseStaffView, error) {
	var v model.WarehouseStaffView
	res := r.views(ctx).Where("warehouse_staff.id = ?", id).Limit(1).Scan(&v)
	if err := affectedOrNotFound(res); err != nil {
		return model.WarehouseStaffView{}, err
	}
	return v, nil
}

func (r *warehouseStaffGormRepository) List(ctx context.Context) ([]model.WarehouseStaffView, error) {
	var list []model.WarehouseStaffView
	if err := r.views(ctx).Order("warehouse_staff.id DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
