package handler

import (
	"errors"
	"net/http"

	"warehouse/internal/usecase"
	auth "warehouse/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

// /auth/register と /auth/login のリクエストボディ。
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/register", h.register)
	g.POST("/auth/login", h.login)
}

// POST /auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req credentialsRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, toAuthHTTPError(err))
	}

	return c.JSON(http.StatusCreated, out.User)
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req credentialsRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, toAuthHTTPError(err))
	}

	//JSONレスポンス（token + user）
	return c.JSON(http.StatusOK, out)
}

// 認証usecaseのエラーをHTTPErrorに寄せる（それ以外は500）
func toAuthHTTPError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return usecase.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUsernameAlreadyExists):
		return usecase.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return usecase.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return err
	}
}
