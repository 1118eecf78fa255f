// Package metrics exposes service counters in Prometheus format. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dbc"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rateLimitDenied *prometheus.CounterVec
	txtVerification *prometheus.CounterVec
	providerCalls   *prometheus.CounterVec
	jobRuns         *prometheus.CounterVec
	jobRows         *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimitDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_denied_total",
			Help:      "Requests rejected by the per-user rate limiter.",
		}, []string{"operation"}),
		txtVerification: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txt_verifications_total",
			Help:      "TXT ownership checks by outcome.",
		}, []string{"result"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Hosting provider API calls by operation and result.",
		}, []string{"operation", "result"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
		jobRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_rows_total",
			Help:      "Rows handled by scheduled jobs by outcome.",
		}, []string{"job", "outcome"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Scheduled job run time.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"job"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.rateLimitDenied,
		m.txtVerification,
		m.providerCalls,
		m.jobRuns,
		m.jobRows,
		m.jobDuration,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RateLimitDenied(operation string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.WithLabelValues(operation).Inc()
}

// TXTVerification records a verify outcome: verified, pending, timeout or error.
func (m *Metrics) TXTVerification(result string) {
	if m == nil {
		return
	}
	m.txtVerification.WithLabelValues(result).Inc()
}

func (m *Metrics) ProviderCall(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.providerCalls.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) JobRun(job string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
	m.jobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}

func (m *Metrics) JobRows(job, outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.jobRows.WithLabelValues(job, outcome).Add(float64(n))
}
