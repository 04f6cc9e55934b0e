package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"github.com/shopspring/decimal"
)

type BillUsecase struct {
	bills repo.BillRepository
	idGen IDGenerator
	clock Clock
}

func NewBillUsecase(bills repo.BillRepository, idGen IDGenerator, clock Clock) *BillUsecase {
	return &BillUsecase{bills: bills, idGen: idGen, clock: clock}
}

type CreateBillInput struct {
	BillNo        *string
	BillType      *string
	Amount        *decimal.Decimal
	ReferenceType *string
	ReferenceID   *int64
	Status        *string
}

type GenerateBillInput struct {
	Source      string
	ReferenceID *int64
	Amount      *decimal.Decimal
}

func (u *BillUsecase) List(ctx context.Context) ([]model.Bill, error) {
	list, err := u.bills.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *BillUsecase) Get(ctx context.Context, id int64) (model.Bill, error) {
	b, err := u.bills.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Bill{}, notFoundError("bill not found")
	}
	if err != nil {
		return model.Bill{}, dbError()
	}
	return b, nil
}

func (u *BillUsecase) Create(ctx context.Context, in CreateBillInput) (model.Bill, error) {
	if isBlank(in.BillNo) {
		return model.Bill{}, validationError("missing field bill_no")
	}
	if isBlank(in.BillType) {
		return model.Bill{}, validationError("missing field bill_type")
	}
	if in.Amount == nil {
		return model.Bill{}, validationError("missing field amount")
	}

	status := model.BillStatusDraft
	if !isBlank(in.Status) {
		status = strings.TrimSpace(*in.Status)
	}

	b := model.Bill{
		BillNo:        strings.TrimSpace(*in.BillNo),
		BillType:      strings.TrimSpace(*in.BillType),
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Amount:        *in.Amount,
		Status:        status,
	}
	return u.save(ctx, b)
}

// 入出庫伝票から請求/支払を作る。伝票の存在確認はしない
func (u *BillUsecase) Generate(ctx context.Context, in GenerateBillInput) (model.Bill, error) {
	billType, ok := model.BillTypeForSource(in.Source)
	if !ok {
		return model.Bill{}, businessRuleError("source must be inbound or outbound")
	}

	amount := decimal.Zero
	if in.Amount != nil {
		amount = *in.Amount
	}

	source := in.Source
	b := model.Bill{
		BillNo:        u.newBillNo(),
		BillType:      string(billType),
		ReferenceType: &source,
		ReferenceID:   in.ReferenceID,
		Amount:        amount,
		Status:        model.BillStatusGenerated,
	}
	return u.save(ctx, b)
}

// 金額は numeric(14,2) に合わせて保存前に丸める
func (u *BillUsecase) save(ctx context.Context, b model.Bill) (model.Bill, error) {
	b.Amount = b.Amount.Round(2)
	if err := u.bills.Create(ctx, &b); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Bill{}, conflictError("bill_no already exists")
		}
		return model.Bill{}, dbError()
	}
	return b, nil
}

// BILL-<unix秒>-<8桁>。同じ秒に複数作っても衝突しない
func (u *BillUsecase) newBillNo() string {
	suffix := strings.ReplaceAll(u.idGen.NewID(), "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("BILL-%d-%s", u.clock.Now().Unix(), suffix)
}
