package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type partnerRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
}

func (r partnerRequest) input() usecase.CreatePartnerInput {
	return usecase.CreatePartnerInput{Name: r.Name, Contact: r.Contact, Phone: r.Phone}
}

// /suppliers と /customers
type PartnerHandler struct {
	uc *usecase.PartnerUsecase
}

// DI
func NewPartnerHandler(uc *usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

func (h *PartnerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/suppliers", h.listSuppliers)
	g.POST("/suppliers", h.createSupplier)
	g.GET("/suppliers/:id", h.detailSupplier)

	g.GET("/customers", h.listCustomers)
	g.POST("/customers", h.createCustomer)
	g.GET("/customers/:id", h.detailCustomer)
}

func (h *PartnerHandler) listSuppliers(c echo.Context) error {
	list, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *PartnerHandler) detailSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	s, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *PartnerHandler) createSupplier(c echo.Context) error {
	var req partnerRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	s, err := h.uc.CreateSupplier(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *PartnerHandler) listCustomers(c echo.Context) error {
	list, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *PartnerHandler) detailCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	cu, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cu)
}

func (h *PartnerHandler) createCustomer(c echo.Context) error {
	var req partnerRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	cu, err := h.uc.CreateCustomer(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cu)
}
