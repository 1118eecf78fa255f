package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dbc/backend/internal/handler"
	gh "dbc/backend/internal/http"
	"dbc/backend/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dbc/backend/internal/service/mock"
)

func TestJWTAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuth := mock.NewMockAuthService(ctrl)
	middleware := gh.JWTAuthMiddleware(mockAuth)

	e := echo.New()
	handlerFn := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(handler.ContextUserIDKey).(string))
	}

	t.Run("MissingAuth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := middleware(handlerFn)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonBearerScheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := middleware(handlerFn)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidateTokenError", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer error-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("error-token").Return("", errors.New("token expired"))

		err := middleware(handlerFn)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("valid-token").Return("user-1", nil)

		err := middleware(handlerFn)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("ValidTokenCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: gh.AuthCookieName, Value: "cookie-token"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("cookie-token").Return("user-2", nil)

		err := middleware(handlerFn)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-2", rec.Body.String())
	})
}

func TestCronAuthMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name   string
		secret string
		header string
		status int
	}{
		{name: "no_secret_configured", secret: "", header: "Bearer anything", status: http.StatusServiceUnavailable},
		{name: "missing_header", secret: "s3cret", status: http.StatusUnauthorized},
		{name: "wrong_secret", secret: "s3cret", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "raw_secret_without_scheme", secret: "s3cret", header: "s3cret", status: http.StatusUnauthorized},
		{name: "valid", secret: "s3cret", header: "Bearer s3cret", status: http.StatusOK},
		{name: "valid_lowercase_scheme", secret: "s3cret", header: "bearer s3cret", status: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := gh.CronAuthMiddleware(tc.secret)(ok)(c)
			require.NoError(t, err)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRequestLoggerMiddleware_StatusBranches(t *testing.T) {
	e := echo.New()
	mw := gh.RequestLoggerMiddleware()

	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "client_error", statusCode: http.StatusBadRequest},
		{name: "server_error", statusCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				return c.JSON(tc.statusCode, map[string]string{"status": "ok"})
			}

			err := mw(handler)(c)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	mw := gh.RequestIDMiddleware()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, mw(ok)(e.NewContext(req, rec)))
	require.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec = httptest.NewRecorder()
	require.NoError(t, mw(ok)(e.NewContext(req, rec)))
	require.Equal(t, "client-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	mw := gh.MetricsMiddleware(m)

	req := httptest.NewRequest(http.MethodGet, "/api/domains", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/domains")

	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusTeapot) })(c)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "dbc_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
