package model

import "time"

// 在庫品目。skuは一意。
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU         string    `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`
	Quantity    int64     `gorm:"not null;default:0;check:chk_items_quantity_non_negative,quantity >= 0" json:"quantity"`
	Location    *string   `gorm:"type:varchar(120)" json:"location"`
	MinStock    int64     `gorm:"not null;default:0" json:"min_stock"`
	WarehouseID *int64    `gorm:"index" json:"warehouse_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 一覧・詳細で返す形（倉庫名をJOINで解決）
type ItemView struct {
	Item
	WarehouseName *string `json:"warehouse_name"`
}

// 在庫が下限以下ならアラート対象
func ShouldAlert(quantity int64, minStock int64) bool {
	return quantity <= minStock
}

// アラート対象ならアラート行を作る
func (i Item) LowStockAlert() (InventoryAlert, bool) {
	if !ShouldAlert(i.Quantity, i.MinStock) {
		return InventoryAlert{}, false
	}
	return InventoryAlert{
		ItemID:          i.ID,
		CurrentQuantity: i.Quantity,
		Threshold:       i.MinStock,
		Status:          AlertStatusOpen,
	}, true
}
