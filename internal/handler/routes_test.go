package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"dbc/backend/internal/handler"
)

func assertRoute(t *testing.T, routes []*echo.Route, method, path string) {
	t.Helper()
	for _, r := range routes {
		if r.Method == method && r.Path == path {
			return
		}
	}
	t.Fatalf("route not found: %s %s", method, path)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()
	g := e.Group("")

	handler.NewDomainHandler(nil).RegisterRoutes(g)
	handler.NewTXTVerifyHandler(nil).RegisterRoutes(g)
	handler.NewJobHandler(nil).RegisterRoutes(g)

	routes := e.Routes()

	assertRoute(t, routes, http.MethodPost, "/domains")
	assertRoute(t, routes, http.MethodGet, "/domains")
	assertRoute(t, routes, http.MethodDelete, "/domains")
	assertRoute(t, routes, http.MethodGet, "/domains/rate-limits")

	assertRoute(t, routes, http.MethodGet, "/domains/verify-txt")
	assertRoute(t, routes, http.MethodPost, "/domains/verify-txt")

	assertRoute(t, routes, http.MethodPost, "/cron/cleanup-domains")
	assertRoute(t, routes, http.MethodPost, "/cron/reverify-domains")
}
