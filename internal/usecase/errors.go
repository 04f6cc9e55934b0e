package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	//400 入力不足・型違い
	ErrValidation = errors.New("validation error")
	//400 業務ルール違反（在庫不足など）
	ErrBusinessRule = errors.New("business rule violation")
	//401 認証失敗
	ErrUnauthorized = errors.New("unauthorized")
	//404
	ErrNotFound = errors.New("not found")
	//409 一意制約
	ErrConflict = errors.New("conflict")
	//500
	ErrInternal = errors.New("internal error")
)

// handlerがそのままステータスとメッセージに変換する
type HTTPError struct {
	Status  int
	Message string
	Kind    error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// errors.Is(err, ErrConflict) のように種類で判定できる
func (e *HTTPError) Unwrap() error {
	return e.Kind
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Kind:    kindForStatus(status),
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}

func validationError(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// ステータスは400だが入力チェックとは区別する
func businessRuleError(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Kind: ErrBusinessRule}
}

func notFoundError(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func conflictError(message string) error {
	return NewHTTPError(http.StatusConflict, message)
}

func dbError() error {
	return NewHTTPError(http.StatusInternalServerError, "db error")
}
