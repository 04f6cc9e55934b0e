package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillType string

const (
	BillTypePayable    BillType = "payable"
	BillTypeReceivable BillType = "receivable"
)

func init() {
	// amountは文字列ではなく数値で返す
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	BillStatusDraft     = "draft"
	BillStatusGenerated = "generated"
)

// 入出庫伝票とは(reference_type, reference_id)でゆるく紐づくだけ。外部キーなし。
type Bill struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BillNo        string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"bill_no"`
	BillType      string          `gorm:"type:varchar(32);not null" json:"bill_type"`
	ReferenceType *string         `gorm:"type:varchar(32)" json:"reference_type"`
	ReferenceID   *int64          `json:"reference_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Status        string          `gorm:"type:varchar(32);not null;default:'draft'" json:"status"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 入庫は支払、出庫は請求
func BillTypeForSource(source string) (BillType, bool) {
	switch source {
	case "inbound":
		return BillTypePayable, true
	case "outbound":
		return BillTypeReceivable, true
	default:
		return "", false
	}
}
