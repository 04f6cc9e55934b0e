package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AlertHandler struct {
	uc *usecase.AlertUsecase
}

// DI
func NewAlertHandler(uc *usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/alerts", h.list)
	g.POST("/alerts/generate", h.generate)
	g.GET("/alerts/:id", h.detail)
}

func (h *AlertHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *AlertHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// 全品目をスキャンして作成件数を返す
func (h *AlertHandler) generate(c echo.Context) error {
	out, err := h.uc.Generate(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
