package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

// 在庫品目の保存・取得
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	// 倉庫名つきで1件取得
	FindByID(ctx context.Context, id int64) (model.ItemView, error)
	// 在庫更新用に行ロック（SELECT ... FOR UPDATE）して取得
	FindByIDForUpdate(ctx context.Context, id int64) (model.Item, error)
	// 新しい順
	List(ctx context.Context) ([]model.ItemView, error)
	// アラート一括判定用
	ListAll(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, item model.Item) error
	SetQuantity(ctx context.Context, id int64, quantity int64) error
	Delete(ctx context.Context, id int64) error
}
