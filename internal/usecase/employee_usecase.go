package usecase

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

type EmployeeUsecase struct {
	employees repo.EmployeeRepository
}

func NewEmployeeUsecase(employees repo.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{employees: employees}
}

type CreateEmployeeInput struct {
	Name     *string
	Email    *string
	Position *string
}

func (u *EmployeeUsecase) List(ctx context.Context) ([]model.Employee, error) {
	list, err := u.employees.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *EmployeeUsecase) Get(ctx context.Context, id int64) (model.Employee, error) {
	e, err := u.employees.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Employee{}, notFoundError("employee not found")
	}
	if err != nil {
		return model.Employee{}, dbError()
	}
	return e, nil
}

func (u *EmployeeUsecase) Create(ctx context.Context, in CreateEmployeeInput) (model.Employee, error) {
	if isBlank(in.Name) || isBlank(in.Email) {
		return model.Employee{}, validationError("name and email are required")
	}
	e := model.Employee{
		Name:     strings.TrimSpace(*in.Name),
		Email:    strings.TrimSpace(*in.Email),
		Position: in.Position,
	}
	if err := u.employees.Create(ctx, &e); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Employee{}, conflictError("email already exists")
		}
		return model.Employee{}, dbError()
	}
	return e, nil
}
