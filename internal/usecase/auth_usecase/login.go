package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/domain/model"
	"warehouse/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Username string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Token string         `json:"token"`
	User  model.UserView `json:"user"`
}

// ユーザー名またはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	userRepo  repository.UserRepository
	validator InputValidator
	verifier  PasswordVerifier
	clock     Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	validator InputValidator,
	verifier PasswordVerifier,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo:  userRepo,
		validator: validator,
		verifier:  verifier,
		clock:     clock,
	}
}

// ログイン処理を実行する。
// 返すトークンは検証できない識別用の文字列で、有効期限もない。
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	username := strings.TrimSpace(in.Username)
	if err := u.validator.ValidateLogin(ctx, username, in.Password); err != nil {
		return out, ErrInvalidCredentials
	}

	//usernameでユーザー取得
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	out.Token = issueSessionToken(user.ID, u.clock.Now().Unix())
	out.User = user
	return out, nil
}

// token-<user id>-<unix秒>
func issueSessionToken(userID int64, unix int64) string {
	return fmt.Sprintf("token-%d-%d", userID, unix)
}
