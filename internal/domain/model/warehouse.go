package model

import "time"

type Warehouse struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Location  *string   `gorm:"type:varchar(255)" json:"location"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 倉庫の担当者
type WarehouseStaff struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`
	Phone       *string   `gorm:"type:varchar(30)" json:"phone"`
	WarehouseID *int64    `gorm:"index" json:"warehouse_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (WarehouseStaff) TableName() string {
	return "warehouse_staff"
}

type WarehouseStaffView struct {
	WarehouseStaff
	WarehouseName *string `json:"warehouse_name"`
}
