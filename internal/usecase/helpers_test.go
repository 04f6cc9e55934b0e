package usecase_test

import (
	"errors"
	"testing"

	"warehouse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

// HTTPErrorのステータスとメッセージを確認する
func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected *usecase.HTTPError, got %T", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, msg, he.Message)
}

func assertKind(t *testing.T, err error, kind error) {
	t.Helper()
	assert.True(t, errors.Is(err, kind), "expected kind %v, got %v", kind, err)
}

type fixture struct {
	store *memStore
	tx    *memTxManager
	items *usecase.ItemUsecase
	stock *usecase.StockUsecase
	alert *usecase.AlertUsecase
}

func newFixture() *fixture {
	s := newMemStore()
	tx := &memTxManager{s: s}
	log := zap.NewNop()
	return &fixture{
		store: s,
		tx:    tx,
		items: usecase.NewItemUsecase(tx, &memItems{s}, log),
		stock: usecase.NewStockUsecase(tx, &memInbound{s}, &memOutbound{s}, log),
		alert: usecase.NewAlertUsecase(tx, &memAlerts{s}, log),
	}
}
