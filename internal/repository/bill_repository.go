package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type BillRepository interface {
	Create(ctx context.Context, b *model.Bill) error
	FindByID(ctx context.Context, id int64) (model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
}
