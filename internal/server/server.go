package server

import (
	"context"
	"errors"
	"net/http"

	"warehouse/internal/config"
	"warehouse/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo *echo.Echo
	addr string
	log  *zap.Logger
}

// 共通ミドルウェアを積んだechoを作り、ルートを登録する
func New(cfg config.Config, log *zap.Logger, registrars ...RouteRegistrar) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	rateLimit, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	RegisterRoutes(e, rateLimit, registrars...)

	return &Server{echo: e, addr: cfg.Addr(), log: log}, nil
}

// テストからhttptestで叩く用
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Shutdownされるまでブロックする
func (s *Server) Start() error {
	s.log.Info("server started", zap.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.echo.Shutdown(ctx)
}
