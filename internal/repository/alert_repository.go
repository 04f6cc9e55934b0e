package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type AlertRepository interface {
	Create(ctx context.Context, a *model.InventoryAlert) error
	FindByID(ctx context.Context, id int64) (model.InventoryAlertView, error)
	List(ctx context.Context) ([]model.InventoryAlertView, error)
}
