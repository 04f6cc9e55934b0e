package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type WarehouseRepository interface {
	Create(ctx context.Context, w *model.Warehouse) error
	FindByID(ctx context.Context, id int64) (model.Warehouse, error)
	List(ctx context.Context) ([]model.Warehouse, error)
}

type WarehouseStaffRepository interface {
	Create(ctx context.Context, s *model.WarehouseStaff) error
	FindByID(ctx context.Context, id int64) (model.WarehouseStaffView, error)
	List(ctx context.Context) ([]model.WarehouseStaffView, error)
}
