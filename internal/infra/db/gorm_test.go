package db_test

import (
	"testing"

	"warehouse/internal/config"
	"warehouse/internal/infra/db"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		PostgresHost:     "localhost",
		PostgresPort:     5432,
		PostgresUser:     "postgres",
		PostgresPassword: "secret",
		PostgresDB:       "warehouse",
		PostgresSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=warehouse sslmode=disable",
		db.DSN(cfg),
	)

	cfg.DatabaseURL = "postgres://u:p@db/warehouse"
	assert.Equal(t, "postgres://u:p@db/warehouse", db.DSN(cfg))
}
