package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

// 入庫伝票
type InboundOrderRepository interface {
	Create(ctx context.Context, o *model.InboundOrder) error
	FindByID(ctx context.Context, id int64) (model.InboundOrderView, error)
	List(ctx context.Context) ([]model.InboundOrderView, error)
}

// 出庫伝票
type OutboundOrderRepository interface {
	Create(ctx context.Context, o *model.OutboundOrder) error
	FindByID(ctx context.Context, id int64) (model.OutboundOrderView, error)
	List(ctx context.Context) ([]model.OutboundOrderView, error)
}
