package handler

import (
	"net/http"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type permissionRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

type roleRequest struct {
	Code          *string `json:"code"`
	Name          *string `json:"name"`
	PermissionIDs []int64 `json:"permission_ids"`
}

type assignPermissionsRequest struct {
	PermissionIDs []int64 `json:"permission_ids"`
}

// /permissions と /roles
type AccessHandler struct {
	uc *usecase.AccessUsecase
}

// DI
func NewAccessHandler(uc *usecase.AccessUsecase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

func (h *AccessHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/permissions", h.listPermissions)
	g.POST("/permissions", h.createPermission)
	g.GET("/permissions/:id", h.detailPermission)

	g.GET("/roles", h.listRoles)
	g.POST("/roles", h.createRole)
	g.GET("/roles/:id", h.detailRole)
	g.POST("/roles/:id/permissions", h.assignPermissions)
}

func (h *AccessHandler) listPermissions(c echo.Context) error {
	list, err := h.uc.ListPermissions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *AccessHandler) detailPermission(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.GetPermission(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AccessHandler) createPermission(c echo.Context) error {
	var req permissionRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.CreatePermission(c.Request().Context(), usecase.CreatePermissionInput{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AccessHandler) listRoles(c echo.Context) error {
	list, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, list)
}

func (h *AccessHandler) detailRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	r, err := h.uc.GetRole(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *AccessHandler) createRole(c echo.Context) error {
	var req roleRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	r, err := h.uc.CreateRole(c.Request().Context(), usecase.CreateRoleInput{
		Code:          req.Code,
		Name:          req.Name,
		PermissionIDs: req.PermissionIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// 権限の置き換え（存在しないIDは無視）
func (h *AccessHandler) assignPermissions(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req assignPermissionsRequest
	if err := bindPayload(c, &req); err != nil {
		return writeError(c, err)
	}
	r, err := h.uc.AssignPermissions(c.Request().Context(), id, req.PermissionIDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
