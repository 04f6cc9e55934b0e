package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

// 仕入先・出荷先・従業員はJOINなしの単純なCRUD

type supplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) repo.SupplierRepository {
	return &supplierGormRepository{db: db}
}

func (r *supplierGormRepository) Create(ctx context.Context, s *model.Supplier) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *supplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return model.Supplier{}, translateError(err)
	}
	return s, nil
}

func (r *supplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var list []model.Supplier
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type customerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) repo.CustomerRepository {
	return &customerGormRepository{db: db}
}

func (r *customerGormRepository) Create(ctx context.Context, c *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *customerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *customerGormRepository) List(ctx context.Context) ([]model.Customer, error) {
	var list []model.Customer
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type employeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) repo.EmployeeRepository {
	return &employeeGormRepository{db: db}
}

func (r *employeeGormRepository) Create(ctx context.Context, e *model.Employee) error {
	return translateError(r.db.WithContext(ctx).Create(e).Error)
}

func (r *employeeGormRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return model.Employee{}, translateError(err)
	}
	return e, nil
}

func (r *employeeGormRepository) List(ctx context.Context) ([]model.Employee, error) {
	var list []model.Employee
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
