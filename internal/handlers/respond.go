package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/middleware"
)

// ErrorBody is the machine-readable error payload. Code is stable across
// releases; Message is for humans.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// respondError maps a service error onto an HTTP status and a stable error code.
// Unrecognized errors become 500 internal_error with a generic message so that
// internal details never leak to clients.
func respondError(c *gin.Context, err error) {
	status, code := classifyError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		message = "Internal server error"
	}

	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		return http.StatusBadRequest, "unsupported_currency"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "refresh_token_expired"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "duplicate"
	case errors.Is(err, apperrors.ErrUpstreamAuth):
		return http.StatusBadGateway, "upstream_auth_error"
	case errors.Is(err, apperrors.ErrUpstreamFormat):
		return http.StatusBadGateway, "upstream_format_error"
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "upstream_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondBindingError reports a request body or query binding failure.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "validation_error",
		Message: "Invalid request format: " + err.Error(),
	}})
}
