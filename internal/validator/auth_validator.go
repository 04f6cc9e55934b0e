package validator

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/repository"
	auth "warehouse/internal/usecase/auth_usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) auth.InputValidator {
	return &authValidator{users: users}
}

// 登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック・パスワード最低文字数
	if username == "" || len(password) < auth.MinPasswordLength {
		return auth.ErrInvalidInput
	}

	// username重複チェック（DBが必要）
	_, err := v.users.FindByUsername(ctx, username)
	if err == nil {
		return auth.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return auth.ErrInvalidInput
	}
	return nil
}
