package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "dbc/backend/docs"
	"dbc/backend/internal/handler"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/service"
)

func NewRouter(
	domainHandler *handler.DomainHandler,
	txtVerifyHandler *handler.TXTVerifyHandler,
	jobHandler *handler.JobHandler,
	authService service.AuthService,
	m *metrics.Metrics,
	cronSecret string,
	enableSwagger bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())
	e.Use(MetricsMiddleware(m))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")

	cron := api.Group("", CronAuthMiddleware(cronSecret))
	jobHandler.RegisterRoutes(cron)
	// Wrong methods on cron paths get the JSON error body.
	for _, path := range []string{"/api/cron/cleanup-domains", "/api/cron/reverify-domains"} {
		e.Match([]string{nethttp.MethodGet, nethttp.MethodPut, nethttp.MethodPatch, nethttp.MethodDelete}, path, methodNotAllowed)
	}

	user := api.Group("", JWTAuthMiddleware(authService))
	domainHandler.RegisterRoutes(user)
	txtVerifyHandler.RegisterRoutes(user)

	return e
}

func methodNotAllowed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderAllow, nethttp.MethodPost)
	return handler.Error(c, nethttp.StatusMethodNotAllowed, "method not allowed")
}
