package http

import (
	"crypto/subtle"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dbc/backend/internal/handler"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/service"
	"dbc/backend/pkg/logger"
)

// AuthCookieName is the cookie checked when no Authorization header is sent.
const AuthCookieName = "dbc_token"

// RequestIDMiddleware sets X-Request-ID, generating a UUID when the client
// did not send one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	})
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"module", "http", "action", "request", "resource", v.URIPath,
				"method", v.Method, "status", v.Status, "latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			switch {
			case v.Status >= nethttp.StatusInternalServerError:
				if v.Error != nil {
					args = append(args, "error", v.Error)
				}
				logger.Error("request", append(args, "result", "failed")...)
			case v.Status >= nethttp.StatusBadRequest:
				logger.Warn("request", append(args, "result", "rejected")...)
			default:
				logger.Debug("request", append(args, "result", "ok")...)
			}
			return nil
		},
	})
}

// MetricsMiddleware records request counts and latency by route template.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			m.ObserveHTTP(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}

// JWTAuthMiddleware authenticates user routes with a bearer token or the
// auth cookie and stores the subject under handler.ContextUserIDKey.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}
			userID, err := auth.ValidateToken(token)
			if err != nil || userID == "" {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}
			c.Set(handler.ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// CronAuthMiddleware guards the cron endpoints with a shared secret.
func CronAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				logger.Warn("cron secret not configured", "module", "http", "action", "authenticate", "resource", c.Path(), "result", "rejected")
				return handler.Error(c, nethttp.StatusServiceUnavailable, "cron is not configured")
			}
			token := bearerToken(c.Request())
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}

func bearerToken(r *nethttp.Request) string {
	auth := r.Header.Get(echo.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
