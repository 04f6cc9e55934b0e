package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /items と PUT /items/:id の共通ボディ。送られていない項目はnil
type itemRequest struct {
	SKU         *string `json:"sku"`
	Name        *string `json:"name"`
	Quantity    *int64  `json:"quantity"`
	Location    *string `json:"location"`
	MinStock    *int64  `json:"min_stock"`
	WarehouseID *int64  `json:"warehouse_id"`
}

type ItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items", h.list)
	g.POST("/items", h.create)
	g.GET("/items/:id", h.detail)
	g.PUT("/items/:id", h.update)
	g.DELETE("/items/:id", h.delete)
}

func (h *ItemHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *ItemHandler) detail(c echo.Context) error {
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

func (h *ItemHandler) create(c echo.Context) error {
	var req itemRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	v, err := h.uc.Create(c.Request().Context(), usecase.CreateItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Location:    req.Location,
		MinStock:    req.MinStock,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *ItemHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req itemRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	v, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Location:    req.Location,
		MinStock:    req.MinStock,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *ItemHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
