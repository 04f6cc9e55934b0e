package usecase

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

// 仕入先・出荷先
type PartnerUsecase struct {
	suppliers repo.SupplierRepository
	customers repo.CustomerRepository
}

func NewPartnerUsecase(suppliers repo.SupplierRepository, customers repo.CustomerRepository) *PartnerUsecase {
	return &PartnerUsecase{suppliers: suppliers, customers: customers}
}

type CreatePartnerInput struct {
	Name    *string
	Contact *string
	Phone   *string
}

func (u *PartnerUsecase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	list, err := u.suppliers.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *PartnerUsecase) GetSupplier(ctx context.Context, id int64) (model.Supplier, error) {
	s, err := u.suppliers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, notFoundError("supplier not found")
	}
	if err != nil {
		return model.Supplier{}, dbError()
	}
	return s, nil
}

func (u *PartnerUsecase) CreateSupplier(ctx context.Context, in CreatePartnerInput) (model.Supplier, error) {
	if isBlank(in.Name) {
		return model.Supplier{}, validationError("name is required")
	}
	s := model.Supplier{
		Name:    strings.TrimSpace(*in.Name),
		Contact: in.Contact,
		Phone:   in.Phone,
	}
	if err := u.suppliers.Create(ctx, &s); err != nil {
		return model.Supplier{}, dbError()
	}
	return s, nil
}

func (u *PartnerUsecase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	list, err := u.customers.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *PartnerUsecase) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	c, err := u.customers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, notFoundError("customer not found")
	}
	if err != nil {
		return model.Customer{}, dbError()
	}
	return c, nil
}

func (u *PartnerUsecase) CreateCustomer(ctx context.Context, in CreatePartnerInput) (model.Customer, error) {
	if isBlank(in.Name) {
		return model.Customer{}, validationError("name is required")
	}
	c := model.Customer{
		Name:    strings.TrimSpace(*in.Name),
		Contact: in.Contact,
		Phone:   in.Phone,
	}
	if err := u.customers.Create(ctx, &c); err != nil {
		return model.Customer{}, dbError()
	}
	return c, nil
}
