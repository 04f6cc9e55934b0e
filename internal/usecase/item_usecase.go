package usecase

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"go.uber.org/zap"
)

type ItemUsecase struct {
	tx    repo.TransactionManager
	items repo.ItemRepository
	log   *zap.Logger
}

// DI
func NewItemUsecase(tx repo.TransactionManager, items repo.ItemRepository, log *zap.Logger) *ItemUsecase {
	return &ItemUsecase{tx: tx, items: items, log: log}
}

// POST /items の入力。nilは「送られていない」
type CreateItemInput struct {
	SKU         *string
	Name        *string
	Quantity    *int64
	Location    *string
	MinStock    *int64
	WarehouseID *int64
}

// PUT /items/{id} の入力。送られた項目だけ更新する
type UpdateItemInput struct {
	SKU         *string
	Name        *string
	Quantity    *int64
	Location    *string
	MinStock    *int64
	WarehouseID *int64
}

func (u *ItemUsecase) List(ctx context.Context) ([]model.ItemView, error) {
	list, err := u.items.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *ItemUsecase) Get(ctx context.Context, id int64) (model.ItemView, error) {
	v, err := u.items.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ItemView{}, notFoundError("item not found")
	}
	if err != nil {
		return model.ItemView{}, dbError()
	}
	return v, nil
}

func (u *ItemUsecase) Create(ctx context.Context, in CreateItemInput) (model.ItemView, error) {
	//必須チェック
	if isBlank(in.SKU) {
		return model.ItemView{}, validationError("Missing required field: sku")
	}
	if isBlank(in.Name) {
		return model.ItemView{}, validationError("Missing required field: name")
	}
	if in.Quantity == nil {
		return model.ItemView{}, validationError("Missing required field: quantity")
	}
	if *in.Quantity < 0 {
		return model.ItemView{}, validationError("quantity must be a non-negative integer")
	}

	// min_stockは負なら0に丸める
	var minStock int64
	if in.MinStock != nil && *in.MinStock > 0 {
		minStock = *in.MinStock
	}

	item := model.Item{
		SKU:         strings.TrimSpace(*in.SKU),
		Name:        strings.TrimSpace(*in.Name),
		Quantity:    *in.Quantity,
		Location:    in.Location,
		MinStock:    minStock,
		WarehouseID: in.WarehouseID,
	}

	var out model.ItemView
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Items().Create(ctx, &item); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return conflictError("sku already exists")
			}
			return dbError()
		}

		//初期在庫でアラート判定
		if _, err := checkInventoryAlert(ctx, r.Alerts(), item, u.log); err != nil {
			return err
		}

		v, err := r.Items().FindByID(ctx, item.ID)
		if err != nil {
			return dbError()
		}
		out = v
		return nil
	})
	if err != nil {
		return model.ItemView{}, err
	}
	return out, nil
}

func (u *ItemUsecase) Update(ctx context.Context, id int64, in UpdateItemInput) (model.ItemView, error) {
	if id <= 0 {
		return model.ItemView{}, validationError("invalid id")
	}

	var out model.ItemView
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.Items().FindByIDForUpdate(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundError("item not found")
		}
		if err != nil {
			return dbError()
		}
		before := item

		if in.SKU != nil {
			if strings.TrimSpace(*in.SKU) == "" {
				return validationError("sku must not be empty")
			}
			item.SKU = strings.TrimSpace(*in.SKU)
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationError("name must not be empty")
			}
			item.Name = strings.TrimSpace(*in.Name)
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.Location != nil {
			item.Location = in.Location
		}
		if in.MinStock != nil {
			item.MinStock = *in.MinStock
		}
		if in.WarehouseID != nil {
			item.WarehouseID = in.WarehouseID
		}

		if item.Quantity < 0 {
			return validationError("quantity must be non-negative")
		}
		if item.MinStock < 0 {
			return validationError("min_stock must be non-negative")
		}

		if err := r.Items().Update(ctx, item); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return conflictError("sku already exists")
			}
			if errors.Is(err, repo.ErrNotFound) {
				return notFoundError("item not found")
			}
			return dbError()
		}

		//数量か下限が変わったときだけ判定
		if item.Quantity != before.Quantity || item.MinStock != before.MinStock {
			if _, err := checkInventoryAlert(ctx, r.Alerts(), item, u.log); err != nil {
				return err
			}
		}

		v, err := r.Items().FindByID(ctx, item.ID)
		if err != nil {
			return dbError()
		}
		out = v
		return nil
	})
	if err != nil {
		return model.ItemView{}, err
	}
	return out, nil
}

// 関連する伝票・アラートは消さない
func (u *ItemUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return validationError("invalid id")
	}
	err := u.items.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFoundError("item not found")
	}
	if err != nil {
		return dbError()
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
