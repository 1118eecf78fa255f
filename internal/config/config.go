package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr           = ":8080"
	defaultDataDir        = "data"
	defaultPlatformDomain = "digitalbusinesscard.app"
	defaultVercelBaseURL  = "https://api.vercel.com"
)

type Config struct {
	Addr     string
	DataDir  string
	DBPath   string
	LogLevel string
	NodeID   int64

	JWTSecret      string
	CronSecret     string
	PlatformDomain string
	EnableSwagger  bool

	Vercel VercelConfig

	DNSServers []string
	DNSTimeout time.Duration

	RedisURL  string
	HTTPProxy string

	// JobInterval runs the domain jobs in-process when positive.
	JobInterval         time.Duration
	UnverifiedDomainTTL time.Duration
}

type VercelConfig struct {
	Token             string
	ProjectID         string
	TeamID            string
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

func Load() Config {
	dataDir := envOr("DBC_DATA_DIR", defaultDataDir)
	dbPath := os.Getenv("DBC_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "dbc.db")
	}

	return Config{
		Addr:     envOr("DBC_ADDR", defaultAddr),
		DataDir:  filepath.Clean(dataDir),
		DBPath:   filepath.Clean(dbPath),
		LogLevel: strings.ToLower(envOr("DBC_LOG_LEVEL", "info")),
		NodeID:   envInt("DBC_NODE_ID", 0),

		JWTSecret:      os.Getenv("DBC_JWT_SECRET"),
		CronSecret:     os.Getenv("DBC_CRON_SECRET"),
		PlatformDomain: strings.ToLower(envOr("DBC_PLATFORM_DOMAIN", defaultPlatformDomain)),
		EnableSwagger:  envBool("DBC_ENABLE_SWAGGER", false),

		Vercel: VercelConfig{
			Token:             os.Getenv("DBC_VERCEL_TOKEN"),
			ProjectID:         os.Getenv("DBC_VERCEL_PROJECT_ID"),
			TeamID:            os.Getenv("DBC_VERCEL_TEAM_ID"),
			BaseURL:           strings.TrimRight(envOr("DBC_VERCEL_API_URL", defaultVercelBaseURL), "/"),
			RequestsPerSecond: envFloat("DBC_VERCEL_RPS", 5),
			Timeout:           envDuration("DBC_VERCEL_TIMEOUT", 15*time.Second),
		},

		DNSServers: envList("DBC_DNS_SERVERS", []string{"8.8.8.8:53", "1.1.1.1:53"}),
		DNSTimeout: envDuration("DBC_DNS_TIMEOUT", 5*time.Second),

		RedisURL:  os.Getenv("DBC_REDIS_URL"),
		HTTPProxy: os.Getenv("DBC_HTTP_PROXY"),

		JobInterval:         envDuration("DBC_JOB_INTERVAL", 0),
		UnverifiedDomainTTL: envDuration("DBC_UNVERIFIED_DOMAIN_TTL", 7*24*time.Hour),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func envList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
