package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id int64) (model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
}
