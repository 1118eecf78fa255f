package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dbc/backend/internal/service"
	"dbc/backend/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error      string `json:"error"`
	Normalized string `json:"normalized,omitempty"`
}

type rateLimitErrorResponse struct {
	Error        string `json:"error"`
	Operation    string `json:"operation"`
	Remaining    int    `json:"remaining"`
	ResetAt      string `json:"resetAt"`
	RetryAfterMs int64  `json:"retryAfterMs"`
}

// Error writes a {"error": message} body with status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: vErr.Message, Normalized: vErr.Normalized})
	}

	var rlErr *service.RateLimitError
	if errors.As(err, &rlErr) {
		retryAfter := int64(rlErr.Result.RetryAfter.Round(time.Second) / time.Second)
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Response().Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
		return c.JSON(http.StatusTooManyRequests, rateLimitErrorResponse{
			Error:        rlErr.Error(),
			Operation:    string(rlErr.Operation),
			Remaining:    rlErr.Result.Remaining,
			ResetAt:      rlErr.Result.ResetAt.UTC().Format(time.RFC3339),
			RetryAfterMs: rlErr.Result.RetryAfterMs(),
		})
	}

	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed", "module", "handler", "action", "respond", "resource", c.Path(), "result", "failed", "status", status, "error", err)
	}
	return c.JSON(status, errorResponse{Error: message})
}

// statusFor maps err to a status code and the message shown to the caller.
// MessageError and ProviderError carry their own message; bare sentinels
// fall back to a generic one.
func statusFor(err error) (int, string) {
	var msgErr *service.MessageError
	hasMessage := errors.As(err, &msgErr)
	var provErr *service.ProviderError
	isProvider := errors.As(err, &provErr)

	message := func(fallback string) string {
		switch {
		case hasMessage:
			return msgErr.Message
		case isProvider:
			return provErr.Error()
		default:
			return fallback
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest, message("invalid request")
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, message("unauthorized")
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, message("forbidden")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, message("resource not found")
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, message("conflict")
	case errors.Is(err, service.ErrDNSTimeout):
		return http.StatusServiceUnavailable, message(service.MsgDNSTimeout)
	case errors.Is(err, service.ErrDNSLookup):
		return http.StatusInternalServerError, message(service.MsgDNSFailed)
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, message("service unavailable")
	case errors.Is(err, service.ErrUpstream):
		return http.StatusInternalServerError, message("upstream error")
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
