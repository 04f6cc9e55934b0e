package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type billRequest struct {
	BillNo        *string          `json:"bill_no"`
	BillType      *string          `json:"bill_type"`
	Amount        *decimal.Decimal `json:"amount"`
	ReferenceType *string          `json:"reference_type"`
	ReferenceID   *int64           `json:"reference_id"`
	Status        *string          `json:"status"`
}

type generateBillRequest struct {
	Source      string           `json:"source"`
	ReferenceID *int64           `json:"reference_id"`
	Amount      *decimal.Decimal `json:"amount"`
}

type BillHandler struct {
	uc *usecase.BillUsecase
}

// DI
func NewBillHandler(uc *usecase.BillUsecase) *BillHandler {
	return &BillHandler{uc: uc}
}

func (h *BillHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/bills", h.list)
	g.POST("/bills", h.create)
	g.POST("/bills/generate", h.generate)
	g.GET("/bills/:id", h.detail)
}

func (h *BillHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *BillHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BillHandler) create(c echo.Context) error {
	var req billRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	b, err := h.uc.Create(c.Request().Context(), usecase.CreateBillInput{
		BillNo:        req.BillNo,
		BillType:      req.BillType,
		Amount:        req.Amount,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Status:        req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BillHandler) generate(c echo.Context) error {
	var req generateBillRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	b, err := h.uc.Generate(c.Request().Context(), usecase.GenerateBillInput{
		Source:      req.Source,
		ReferenceID: req.ReferenceID,
		Amount:      req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}
