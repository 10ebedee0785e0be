package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaiso/iris-api/internal/query"
	"github.com/shaiso/iris-api/internal/repo"
)

// ErrorCode — код ошибки API.
type ErrorCode string

const (
	ErrCodeInvalidFilter    ErrorCode = "INVALID_FILTER"
	ErrCodeUnknownAttribute ErrorCode = "UNKNOWN_ATTRIBUTE"
	ErrCodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	ErrCodeEmptyPopulation  ErrorCode = "EMPTY_POPULATION"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse — структура ответа с ошибкой.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail — детали ошибки.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// DataResponse — структура успешного ответа.
type DataResponse struct {
	Data any `json:"data"`
}

// ListResponse — структура ответа со списком.
type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total,omitempty"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Success отправляет успешный ответ с данными.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, DataResponse{Data: data})
}

// List отправляет ответ со списком.
func List(w http.ResponseWriter, data any, total int) {
	JSON(w, http.StatusOK, ListResponse{Data: data, Total: total})
}

// Error отправляет ответ с ошибкой.
func Error(w http.ResponseWriter, status int, code ErrorCode, message string) {
	JSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest отправляет ошибку 400 с кодом INVALID_ARGUMENT.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, ErrCodeInvalidArgument, message)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// InternalError отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}

// HandleQueryError преобразует ошибку движка запросов или хранилища
// в HTTP ответ. Возвращает true, если ошибка была обработана.
//
// Отображение таксономии на статусы:
//   - InvalidFilter, UnknownAttribute, InvalidArgument → 400
//   - EmptyPopulation → 422 (запрос корректен, но население пусто)
//   - ErrNotFound → 404
//   - всё остальное → 500 (детали только в лог)
func HandleQueryError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, query.ErrInvalidFilter):
		Error(w, http.StatusBadRequest, ErrCodeInvalidFilter, err.Error())
	case errors.Is(err, query.ErrUnknownAttribute):
		Error(w, http.StatusBadRequest, ErrCodeUnknownAttribute, err.Error())
	case errors.Is(err, query.ErrInvalidArgument):
		Error(w, http.StatusBadRequest, ErrCodeInvalidArgument, err.Error())
	case errors.Is(err, query.ErrEmptyPopulation):
		Error(w, http.StatusUnprocessableEntity, ErrCodeEmptyPopulation, err.Error())
	case errors.Is(err, repo.ErrNotFound):
		NotFound(w, notFoundMsg)
	default:
		InternalError(w, logger, err)
	}
	return true
}
