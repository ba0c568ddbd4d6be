package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"miblog/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError переводит ошибку бизнес-уровня в HTTP-статус.
// Всё, что не входит в таксономию, уходит клиенту как 500 без деталей.
func WriteServiceError(w http.ResponseWriter, err error) {
	WriteError(w, messageFor(err), StatusFromError(err))
}

func StatusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrSelfSubscription):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrMissingIdentity),
		errors.Is(err, service.ErrMalformedIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSubscriptionRequired):
		return http.StatusForbidden
	case errors.Is(err, service.ErrBlogNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUsername):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if StatusFromError(err) == http.StatusInternalServerError {
		return "внутренняя ошибка сервера"
	}
	return err.Error()
}
