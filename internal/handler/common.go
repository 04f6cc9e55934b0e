package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// JSONボディを読む。
// 壊れたJSONや空ボディは「何も送られていない」として扱い、必須チェックに任せる。
// 型が違う項目だけは400で返す。
func bindPayload(c echo.Context, dst interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	err = json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// トップレベルがオブジェクトでない
		if typeErr.Field == "" {
			return nil
		}
		return usecase.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s has invalid type", typeErr.Field))
	}
	return usecase.NewHTTPError(http.StatusBadRequest, "invalid request body")
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// 0件でも null ではなく [] を返す
func listJSON[T any](c echo.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	return c.JSON(http.StatusOK, list)
}
