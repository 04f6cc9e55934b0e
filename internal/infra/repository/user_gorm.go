package repository

import (
	"context"
	"errors"

	"warehouse/internal/domain/model"
	domainrepo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users").
		Select("users.*, roles.name AS role_name").
		Joins("LEFT JOIN roles ON roles.id = users.role_id")
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// usernameでユーザーを1件取得
func (r *userGormRepository) FindByUsername(ctx context.Context, username string) (model.UserView, error) {
	var u model.UserView
	res := r.views(ctx).Where("users.username = ?", username).Limit(1).Scan(&u)
	if err := affectedOrNotFound(res); err != nil {
		if errors.Is(err, domainrepo.ErrNotFound) {
			return model.UserView{}, domainrepo.ErrUserNotFound
		}
		return model.UserView{}, err
	}
	return u, nil
}

