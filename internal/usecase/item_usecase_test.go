package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"warehouse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("A-1"), Name: strPtr("first"), Quantity: i64Ptr(1)})
	require.NoError(t, err)

	v, err := f.items.Create(ctx, usecase.CreateItemInput{
		SKU:      strPtr("SKU-001"),
		Name:     strPtr("Widget"),
		Quantity: i64Ptr(5),
		Location: strPtr("A-01"),
		MinStock: i64Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Quantity)
	assert.Equal(t, int64(3), v.MinStock)
	assert.Equal(t, "SKU-001", v.SKU)

	// 新しいものが先頭
	list, err := f.items.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, v.ID, list[0].ID)

	// 5 > 3 なのでアラートなし
	assert.Empty(t, f.store.alerts)
}

func TestItemUsecase_Create_MissingFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.items.Create(ctx, usecase.CreateItemInput{Name: strPtr("x"), Quantity: i64Ptr(1)})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing required field: sku")

	_, err = f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("x"), Quantity: i64Ptr(1)})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing required field: name")

	_, err = f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("x"), Name: strPtr("x")})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing required field: quantity")
	assertKind(t, err, usecase.ErrValidation)
}

func TestItemUsecase_Create_NegativeQuantity(t *testing.T) {
	f := newFixture()

	_, err := f.items.Create(context.Background(), usecase.CreateItemInput{
		SKU: strPtr("x"), Name: strPtr("x"), Quantity: i64Ptr(-1),
	})
	assertHTTPError(t, err, http.StatusBadRequest, "quantity must be a non-negative integer")
	assert.Empty(t, f.store.items)
}

func TestItemUsecase_Create_NegativeMinStockClamped(t *testing.T) {
	f := newFixture()

	v, err := f.items.Create(context.Background(), usecase.CreateItemInput{
		SKU: strPtr("x"), Name: strPtr("x"), Quantity: i64Ptr(4), MinStock: i64Ptr(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.MinStock)
}

func TestItemUsecase_Create_DuplicateSKU(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	in := usecase.CreateItemInput{SKU: strPtr("SKU-001"), Name: strPtr("a"), Quantity: i64Ptr(1)}
	_, err := f.items.Create(ctx, in)
	require.NoError(t, err)

	_, err = f.items.Create(ctx, in)
	assertHTTPError(t, err, http.StatusConflict, "sku already exists")
	assertKind(t, err, usecase.ErrConflict)
	assert.Len(t, f.store.items, 1)
}

func TestItemUsecase_Create_AlertWhenAtOrBelowMinStock(t *testing.T) {
	f := newFixture()

	v, err := f.items.Create(context.Background(), usecase.CreateItemInput{
		SKU: strPtr("low"), Name: strPtr("low"), Quantity: i64Ptr(2), MinStock: i64Ptr(2),
	})
	require.NoError(t, err)

	require.Len(t, f.store.alerts, 1)
	a := f.store.alerts[0]
	assert.Equal(t, v.ID, a.ItemID)
	assert.Equal(t, int64(2), a.CurrentQuantity)
	assert.Equal(t, int64(2), a.Threshold)
	assert.Equal(t, "open", string(a.Status))
}

func TestItemUsecase_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	v, err := f.items.Create(ctx, usecase.CreateItemInput{
		SKU: strPtr("u"), Name: strPtr("before"), Quantity: i64Ptr(10), MinStock: i64Ptr(2),
	})
	require.NoError(t, err)

	// 名前だけ変更。数量は変わらないのでアラートなし
	out, err := f.items.Update(ctx, v.ID, usecase.UpdateItemInput{Name: strPtr("after")})
	require.NoError(t, err)
	assert.Equal(t, "after", out.Name)
	assert.Equal(t, int64(10), out.Quantity)
	assert.Empty(t, f.store.alerts)

	// 数量を下限以下に
	out, err = f.items.Update(ctx, v.ID, usecase.UpdateItemInput{Quantity: i64Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Quantity)
	require.Len(t, f.store.alerts, 1)
	assert.Equal(t, int64(1), f.store.alerts[0].CurrentQuantity)
}

func TestItemUsecase_Update_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.items.Update(ctx, 999, usecase.UpdateItemInput{Name: strPtr("x")})
	assertHTTPError(t, err, http.StatusNotFound, "item not found")

	v, err := f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("a"), Name: strPtr("a"), Quantity: i64Ptr(3)})
	require.NoError(t, err)
	_, err = f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("b"), Name: strPtr("b"), Quantity: i64Ptr(3)})
	require.NoError(t, err)

	_, err = f.items.Update(ctx, v.ID, usecase.UpdateItemInput{Quantity: i64Ptr(-1)})
	assertHTTPError(t, err, http.StatusBadRequest, "quantity must be non-negative")

	_, err = f.items.Update(ctx, v.ID, usecase.UpdateItemInput{SKU: strPtr("b")})
	assertHTTPError(t, err, http.StatusConflict, "sku already exists")

	got, err := f.items.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Quantity)
	assert.Equal(t, "a", got.SKU)
}

func TestItemUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	v, err := f.items.Create(ctx, usecase.CreateItemInput{SKU: strPtr("d"), Name: strPtr("d"), Quantity: i64Ptr(3)})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(ctx, v.ID))

	_, err = f.items.Get(ctx, v.ID)
	assertHTTPError(t, err, http.StatusNotFound, "item not found")

	err = f.items.Delete(ctx, v.ID)
	assertHTTPError(t, err, http.StatusNotFound, "item not found")
}
