package server

import (
	"warehouse/internal/handler"

	"github.com/labstack/echo/v4"
)

// /api 配下にルートを持つhandler
type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

// /health は制限なし、/api はレート制限つき
func RegisterRoutes(e *echo.Echo, rateLimit echo.MiddlewareFunc, registrars ...RouteRegistrar) {
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	if rateLimit != nil {
		api.Use(rateLimit)
	}
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}
}
