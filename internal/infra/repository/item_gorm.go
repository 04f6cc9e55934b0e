package repository

import (
	"context"
	"time"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// 倉庫名をLEFT JOINで解決する（倉庫が消えていてもitemは返す）
func (r *ItemGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("items").
		Select("items.*, warehouses.name AS warehouse_name").
		Joins("LEFT JOIN warehouses ON warehouses.id = items.warehouse_id")
}

func (r *ItemGormRepository) Create(ctx context.Context, item *model.Item) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.ItemView, error) {
	var v model.ItemView
	res := r.views(ctx).Where("items.id = ?", id).Limit(1).Scan(&v)
	if err := affectedOrNotFound(res); err != nil {
		return model.ItemView{}, err
	}
	return v, nil
}

// 在庫の読み→書きの間に他のリクエストが割り込まないよう行ロックする
func (r *ItemGormRepository) FindByIDForUpdate(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return model.Item{}, translateError(err)
	}
	return item, nil
}

func (r *ItemGormRepository) List(ctx context.Context) ([]model.ItemView, error) {
	var list []model.ItemView
	if err := r.views(ctx).Order("items.id DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ItemGormRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemGormRepository) Update(ctx context.Context, item model.Item) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"sku":          item.SKU,
			"name":         item.Name,
			"quantity":     item.Quantity,
			"location":     item.Location,
			"min_stock":    item.MinStock,
			"warehouse_id": item.WarehouseID,
			"updated_at":   time.Now(),
		})
	return affectedOrNotFound(res)
}

func (r *ItemGormRepository) SetQuantity(ctx context.Context, id int64, quantity int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	return affectedOrNotFound(res)
}

// 物理削除。伝票やアラートの参照はそのまま残る
func (r *ItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	return affectedOrNotFound(res)
}

var _ repo.ItemRepository = (*ItemGormRepository)(nil)
