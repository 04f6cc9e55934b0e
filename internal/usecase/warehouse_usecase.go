package usecase

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

// 倉庫と担当者
type WarehouseUsecase struct {
	warehouses repo.WarehouseRepository
	staff      repo.WarehouseStaffRepository
}

func NewWarehouseUsecase(warehouses repo.WarehouseRepository, staff repo.WarehouseStaffRepository) *WarehouseUsecase {
	return &WarehouseUsecase{warehouses: warehouses, staff: staff}
}

type CreateWarehouseInput struct {
	Code     *string
	Name     *string
	Location *string
}

type CreateStaffInput struct {
	Name        *string
	Phone       *string
	WarehouseID *int64
}

func (u *WarehouseUsecase) List(ctx context.Context) ([]model.Warehouse, error) {
	list, err := u.warehouses.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *WarehouseUsecase) Get(ctx context.Context, id int64) (model.Warehouse, error) {
	w, err := u.warehouses.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Warehouse{}, notFoundError("warehouse not found")
	}
	if err != nil {
		return model.Warehouse{}, dbError()
	}
	return w, nil
}

func (u *WarehouseUsecase) Create(ctx context.Context, in CreateWarehouseInput) (model.Warehouse, error) {
	if isBlank(in.Code) || isBlank(in.Name) {
		return model.Warehouse{}, validationError("code and name are required")
	}
	w := model.Warehouse{
		Code:     strings.TrimSpace(*in.Code),
		Name:     strings.TrimSpace(*in.Name),
		Location: in.Location,
	}
	if err := u.warehouses.Create(ctx, &w); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Warehouse{}, conflictError("warehouse code already exists")
		}
		return model.Warehouse{}, dbError()
	}
	return w, nil
}

func (u *WarehouseUsecase) ListStaff(ctx context.Context) ([]model.WarehouseStaffView, error) {
	list, err := u.staff.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *WarehouseUsecase) GetStaff(ctx context.Context, id int64) (model.WarehouseStaffView, error) {
	v, err := u.staff.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.WarehouseStaffView{}, notFoundError("warehouse staff not found")
	}
	if err != nil {
		return model.WarehouseStaffView{}, dbError()
	}
	return v, nil
}

// warehouse_idの存在確認はしない
func (u *WarehouseUsecase) CreateStaff(ctx context.Context, in CreateStaffInput) (model.WarehouseStaffView, error) {
	if isBlank(in.Name) {
		return model.WarehouseStaffView{}, validationError("name is required")
	}
	s := model.WarehouseStaff{
		Name:        strings.TrimSpace(*in.Name),
		Phone:       in.Phone,
		WarehouseID: in.WarehouseID,
	}
	if err := u.staff.Create(ctx, &s); err != nil {
		return model.WarehouseStaffView{}, dbError()
	}
	v, err := u.staff.FindByID(ctx, s.ID)
	if err != nil {
		return model.WarehouseStaffView{}, dbError()
	}
	return v, nil
}
