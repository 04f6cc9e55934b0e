package repository

import (
	"context"
	"errors"

	"warehouse/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	//ユーザー名から一件取得する。
	FindByUsername(ctx context.Context, username string) (model.UserView, error)
}
