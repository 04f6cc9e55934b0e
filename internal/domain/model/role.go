package model

import "time"

type Permission struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ロールと権限は多対多（role_permissions）
type Role struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string       `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Name        string       `gorm:"type:varchar(120);not null" json:"name"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`
	CreatedAt   time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
