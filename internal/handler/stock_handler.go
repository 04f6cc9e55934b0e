package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type inboundRequest struct {
	ItemID     int64   `json:"item_id"`
	Quantity   int64   `json:"quantity"`
	SupplierID *int64  `json:"supplier_id"`
	Note       *string `json:"note"`
}

type outboundRequest struct {
	ItemID     int64   `json:"item_id"`
	Quantity   int64   `json:"quantity"`
	CustomerID *int64  `json:"customer_id"`
	Note       *string `json:"note"`
}

// /inbound-orders と /outbound-orders
type StockHandler struct {
	uc *usecase.StockUsecase
}

// DI
func NewStockHandler(uc *usecase.StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/inbound-orders", h.listInbound)
	g.POST("/inbound-orders", h.receive)
	g.GET("/inbound-orders/:id", h.detailInbound)

	g.GET("/outbound-orders", h.listOutbound)
	g.POST("/outbound-orders", h.ship)
	g.GET("/outbound-orders/:id", h.detailOutbound)
}

func (h *StockHandler) listInbound(c echo.Context) error {
	list, err := h.uc.ListInbound(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *StockHandler) detailInbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.GetInbound(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// 入庫（在庫が増える）
func (h *StockHandler) receive(c echo.Context) error {
	var req inboundRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	v, err := h.uc.Receive(c.Request().Context(), usecase.ReceiveInput{
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
		SupplierID: req.SupplierID,
		Note:       req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *StockHandler) listOutbound(c echo.Context) error {
	list, err := h.uc.ListOutbound(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *StockHandler) detailOutbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.GetOutbound(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// 出庫（在庫が減る）
func (h *StockHandler) ship(c echo.Context) error {
	var req outboundRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}

	v, err := h.uc.Ship(c.Request().Context(), usecase.ShipInput{
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
		CustomerID: req.CustomerID,
		Note:       req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}
