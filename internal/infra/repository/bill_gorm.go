package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type billGormRepository struct {
	db *gorm.DB
}

func NewBillGormRepository(db *gorm.DB) repo.BillRepository {
	return &billGormRepository{db: db}
}

// bill_noが重複したらErrDuplicate
func (r *billGormRepository) Create(ctx context.Context, b *model.Bill) error {
	return translateError(r.db.WithContext(ctx).Create(b).Error)
}

func (r *billGormRepository) FindByID(ctx context.Context, id int64) (model.Bill, error) {
	var b model.Bill
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return model.Bill{}, translateError(err)
	}
	return b, nil
}

func (r *billGormRepository) List(ctx context.Context) ([]model.Bill, error) {
	var list []model.Bill
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
