package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"warehouse/internal/domain/model"
	"warehouse/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 登録の入力
type RegisterUserInput struct {
	Username string
	Password string
}

// 登録の出力
type RegisterUserOutput struct {
	User model.UserView
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

const MinPasswordLength = 6

var (
	// 入力が不正（username空、passwordが短い）
	ErrInvalidInput = errors.New("username required and password length >= 6")

	// 競合
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 登録入力のチェック（重複確認はDBが必要なので外に出す）
type InputValidator interface {
	ValidateRegister(ctx context.Context, username string, password string) error
	ValidateLogin(ctx context.Context, username string, password string) error
}

// RegisterUserUsecaseはユーザー登録の処理。
type RegisterUserUsecase struct {
	userRepo  repository.UserRepository
	validator InputValidator
	hasher    PasswordHasher
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	validator InputValidator,
	hasher PasswordHasher,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:  userRepo,
		validator: validator,
		hasher:    hasher,
	}
}

// 登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	username := strings.TrimSpace(in.Username)
	if err := u.validator.ValidateRegister(ctx, username, in.Password); err != nil {
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashed, // 平文は保存しない
	}

	// DBへ保存（チェック後に同名が入った場合もここで弾く）
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return out, ErrUsernameAlreadyExists
		}
		return out, err
	}

	out.User = model.UserView{User: *user}
	return out, nil
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
