package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type warehouseRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type staffRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	WarehouseID *int64  `json:"warehouse_id"`
}

// /warehouses と /warehouse-staff
type WarehouseHandler struct {
	uc *usecase.WarehouseUsecase
}

// DI
func NewWarehouseHandler(uc *usecase.WarehouseUsecase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

func (h *WarehouseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/warehouses", h.list)
	g.POST("/warehouses", h.create)
	g.GET("/warehouses/:id", h.detail)

	g.GET("/warehouse-staff", h.listStaff)
	g.POST("/warehouse-staff", h.createStaff)
	g.GET("/warehouse-staff/:id", h.detailStaff)
}

func (h *WarehouseHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *WarehouseHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	w, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WarehouseHandler) create(c echo.Context) error {
	var req warehouseRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	w, err := h.uc.Create(c.Request().Context(), usecase.CreateWarehouseInput{
		Code:     req.Code,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WarehouseHandler) listStaff(c echo.Context) error {
	list, err := h.uc.ListStaff(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *WarehouseHandler) detailStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.GetStaff(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *WarehouseHandler) createStaff(c echo.Context) error {
	var req staffRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.CreateStaff(c.Request().Context(), usecase.CreateStaffInput{
		Name:        req.Name,
		Phone:       req.Phone,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}
