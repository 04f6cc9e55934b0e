package model

import "time"

// 入庫伝票。作成時にItem.quantityを加算する。
type InboundOrder struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID     int64     `gorm:"not null;index" json:"item_id"`
	SupplierID *int64    `gorm:"index" json:"supplier_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	Note       *string   `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type InboundOrderView struct {
	InboundOrder
	ItemName     *string `json:"item_name"`
	SupplierName *string `json:"supplier_name"`
}

// 出庫伝票。作成時にItem.quantityを減算する。
type OutboundOrder struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID     int64     `gorm:"not null;index" json:"item_id"`
	CustomerID *int64    `gorm:"index" json:"customer_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	Note       *string   `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type OutboundOrderView struct {
	OutboundOrder
	ItemName     *string `json:"item_name"`
	CustomerName *string `json:"customer_name"`
}
