package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dbc/backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/api/domains", 200, time.Millisecond)
		m.RateLimitDenied("domain:add")
		m.TXTVerification("verified")
		m.ProviderCall("add", nil)
		m.JobRun("cleanup", time.Second, nil)
		m.JobRows("cleanup", "removed", 3)
	})
	require.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.RateLimitDenied("domain:add")
	m.RateLimitDenied("domain:add")
	m.ProviderCall("add", errors.New("boom"))
	m.JobRows("reverify", "verified", 4)
	m.JobRows("reverify", "verified", 0)

	count, err := testutil.GatherAndCount(m.Registry(), "dbc_rate_limit_denied_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `dbc_rate_limit_denied_total{operation="domain:add"} 2`)
	require.Contains(t, string(body), `dbc_provider_calls_total{operation="add",result="error"} 1`)
	require.Contains(t, string(body), `dbc_job_rows_total{job="reverify",outcome="verified"} 4`)
}
