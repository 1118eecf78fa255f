package config_test

import (
	"testing"
	"time"

	"dbc/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DBC_ADDR", ":9999")
	t.Setenv("DBC_DB_PATH", "")
	t.Setenv("DBC_DATA_DIR", "/tmp/dbc")
	t.Setenv("DBC_LOG_LEVEL", "DEBUG")
	t.Setenv("DBC_PLATFORM_DOMAIN", "Cards.Example.org")
	t.Setenv("DBC_VERCEL_API_URL", "http://localhost:4000/")
	t.Setenv("DBC_VERCEL_RPS", "2.5")
	t.Setenv("DBC_DNS_SERVERS", "9.9.9.9:53, ,1.0.0.1:53")
	t.Setenv("DBC_DNS_TIMEOUT", "750ms")
	t.Setenv("DBC_JOB_INTERVAL", "1h")
	t.Setenv("DBC_ENABLE_SWAGGER", "true")
	t.Setenv("DBC_NODE_ID", "7")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/dbc", cfg.DataDir)
	require.Equal(t, "/tmp/dbc/dbc.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "cards.example.org", cfg.PlatformDomain)
	require.Equal(t, "http://localhost:4000", cfg.Vercel.BaseURL)
	require.Equal(t, 2.5, cfg.Vercel.RequestsPerSecond)
	require.Equal(t, []string{"9.9.9.9:53", "1.0.0.1:53"}, cfg.DNSServers)
	require.Equal(t, 750*time.Millisecond, cfg.DNSTimeout)
	require.Equal(t, time.Hour, cfg.JobInterval)
	require.True(t, cfg.EnableSwagger)
	require.Equal(t, int64(7), cfg.NodeID)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DBC_ADDR", "DBC_DATA_DIR", "DBC_DB_PATH", "DBC_LOG_LEVEL",
		"DBC_DNS_SERVERS", "DBC_DNS_TIMEOUT", "DBC_JOB_INTERVAL",
		"DBC_UNVERIFIED_DOMAIN_TTL", "DBC_VERCEL_RPS", "DBC_VERCEL_API_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "dbc.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "https://api.vercel.com", cfg.Vercel.BaseURL)
	require.Equal(t, float64(5), cfg.Vercel.RequestsPerSecond)
	require.Equal(t, []string{"8.8.8.8:53", "1.1.1.1:53"}, cfg.DNSServers)
	require.Equal(t, 5*time.Second, cfg.DNSTimeout)
	require.Zero(t, cfg.JobInterval)
	require.Equal(t, 7*24*time.Hour, cfg.UnverifiedDomainTTL)
	require.False(t, cfg.EnableSwagger)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DBC_DNS_TIMEOUT", "soon")
	t.Setenv("DBC_VERCEL_RPS", "-3")
	t.Setenv("DBC_NODE_ID", "abc")

	cfg := config.Load()
	require.Equal(t, 5*time.Second, cfg.DNSTimeout)
	require.Equal(t, float64(5), cfg.Vercel.RequestsPerSecond)
	require.Zero(t, cfg.NodeID)
}
