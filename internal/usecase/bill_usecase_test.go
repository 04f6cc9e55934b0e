package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"warehouse/internal/domain/model"
	"warehouse/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDGen struct{ ids []string }

func (g *seqIDGen) NewID() string {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

func newBillUsecase(s *memStore) *usecase.BillUsecase {
	return usecase.NewBillUsecase(
		&memBills{s},
		&seqIDGen{ids: []string{
			"0f8fad5b-d9cb-469f-a165-70867728950e",
			"7c9e6679-7425-40de-944b-e07fc1f90ae7",
		}},
		fixedClock{t: time.Unix(1700000000, 0)},
	)
}

func TestBillUsecase_Create(t *testing.T) {
	ctx := context.Background()
	uc := newBillUsecase(newMemStore())

	amount := decimal.RequireFromString("12.50")
	b, err := uc.Create(ctx, usecase.CreateBillInput{
		BillNo:   strPtr("B-1"),
		BillType: strPtr("payable"),
		Amount:   &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, model.BillStatusDraft, b.Status)
	assert.True(t, amount.Equal(b.Amount))

	_, err = uc.Create(ctx, usecase.CreateBillInput{
		BillNo:   strPtr("B-1"),
		BillType: strPtr("payable"),
		Amount:   &amount,
	})
	assertHTTPError(t, err, http.StatusConflict, "bill_no already exists")
}

func TestBillUsecase_Create_RoundsAmount(t *testing.T) {
	ctx := context.Background()
	uc := newBillUsecase(newMemStore())

	amount := decimal.RequireFromString("12.345")
	b, err := uc.Create(ctx, usecase.CreateBillInput{
		BillNo: strPtr("B-2"), BillType: strPtr("payable"), Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, "12.35", b.Amount.StringFixed(2))
	assert.True(t, b.Amount.Equal(decimal.RequireFromString("12.35")))

	got, err := uc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(b.Amount))
}

func TestBillUsecase_Create_MissingField(t *testing.T) {
	ctx := context.Background()
	uc := newBillUsecase(newMemStore())

	amount := decimal.NewFromInt(1)
	_, err := uc.Create(ctx, usecase.CreateBillInput{BillType: strPtr("payable"), Amount: &amount})
	assertHTTPError(t, err, http.StatusBadRequest, "missing field bill_no")

	_, err = uc.Create(ctx, usecase.CreateBillInput{BillNo: strPtr("x"), Amount: &amount})
	assertHTTPError(t, err, http.StatusBadRequest, "missing field bill_type")

	_, err = uc.Create(ctx, usecase.CreateBillInput{BillNo: strPtr("x"), BillType: strPtr("payable")})
	assertHTTPError(t, err, http.StatusBadRequest, "missing field amount")
}

func TestBillUsecase_Generate(t *testing.T) {
	ctx := context.Background()
	uc := newBillUsecase(newMemStore())

	payable, err := uc.Generate(ctx, usecase.GenerateBillInput{Source: "inbound", ReferenceID: i64Ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, "payable", payable.BillType)
	assert.Equal(t, model.BillStatusGenerated, payable.Status)
	assert.Equal(t, "BILL-1700000000-0f8fad5b", payable.BillNo)
	require.NotNil(t, payable.ReferenceType)
	assert.Equal(t, "inbound", *payable.ReferenceType)
	assert.True(t, payable.Amount.IsZero())

	// 同じ秒でも衝突しない
	amount := decimal.RequireFromString("99.99")
	receivable, err := uc.Generate(ctx, usecase.GenerateBillInput{Source: "outbound", Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "receivable", receivable.BillType)
	assert.Equal(t, "BILL-1700000000-7c9e6679", receivable.BillNo)
	assert.True(t, amount.Equal(receivable.Amount))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, receivable.ID, list[0].ID)
}

func TestBillUsecase_Generate_InvalidSource(t *testing.T) {
	s := newMemStore()
	uc := newBillUsecase(s)

	_, err := uc.Generate(context.Background(), usecase.GenerateBillInput{Source: "refund"})
	assertHTTPError(t, err, http.StatusBadRequest, "source must be inbound or outbound")
	assertKind(t, err, usecase.ErrBusinessRule)
	assert.Empty(t, s.bills)
}
