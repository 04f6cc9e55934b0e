package model

import "time"

type AlertStatus string

const (
	AlertStatusOpen AlertStatus = "open"
)

// 在庫アラート。重複チェックはしない（下限割れのたびに1行）。
type InventoryAlert struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID          int64       `gorm:"not null;index" json:"item_id"`
	CurrentQuantity int64       `gorm:"not null" json:"current_quantity"`
	Threshold       int64       `gorm:"not null" json:"threshold"`
	Status          AlertStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type InventoryAlertView struct {
	InventoryAlert
	ItemName *string `json:"item_name"`
}
