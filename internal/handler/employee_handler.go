package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type employeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
}

type EmployeeHandler struct {
	uc *usecase.EmployeeUsecase
}

// DI
func NewEmployeeHandler(uc *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/employees", h.list)
	g.POST("/employees", h.create)
	g.GET("/employees/:id", h.detail)
}

func (h *EmployeeHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *EmployeeHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	e, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) create(c echo.Context) error {
	var req employeeRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	e, err := h.uc.Create(c.Request().Context(), usecase.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}
