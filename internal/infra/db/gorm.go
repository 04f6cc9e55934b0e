package db

import (
	"fmt"
	"time"

	"warehouse/internal/config"
	"warehouse/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		// 一意制約違反を gorm.ErrDuplicatedKey に変換させる
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return gormDB, nil
}

// DATABASE_URL があれば最優先で使う
func DSN(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)
}

// テーブル作成（role_permissionsはRoleのmany2manyから作られる）
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Warehouse{},
		&model.WarehouseStaff{},
		&model.Item{},
		&model.Supplier{},
		&model.Customer{},
		&model.InboundOrder{},
		&model.OutboundOrder{},
		&model.InventoryAlert{},
		&model.Bill{},
		&model.Employee{},
		&model.Permission{},
		&model.Role{},
		&model.User{},
	)
}
