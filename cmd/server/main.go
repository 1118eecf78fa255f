package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"dbc/backend/internal/config"
	"dbc/backend/internal/db"
	"dbc/backend/internal/dnsresolver"
	"dbc/backend/internal/domainutil"
	"dbc/backend/internal/handler"
	apphttp "dbc/backend/internal/http"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/repository"
	"dbc/backend/internal/scheduler"
	"dbc/backend/internal/service"
	"dbc/backend/internal/vercel"
	"dbc/backend/pkg/logger"
	"dbc/backend/pkg/network"
	"dbc/backend/pkg/snowflake"
)

// @title						Digital Business Card Domains API
// @version					1.0
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	CronAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer database.Close()

	store, janitor, closeStore, err := newRateLimitStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("rate limit store: %v", err)
	}
	defer closeStore()

	m := metrics.New()
	validator := domainutil.NewValidator(cfg.PlatformDomain)
	limiter := ratelimit.New(store)
	resolver := dnsresolver.NewResolver(dnsresolver.Config{Servers: cfg.DNSServers, Timeout: cfg.DNSTimeout})
	clientFactory := network.NewClientFactory(network.StaticProxy(cfg.HTTPProxy))
	provider := vercel.NewClient(cfg.Vercel, clientFactory)
	if !provider.Configured() {
		logger.Warn("vercel not configured, domain connection disabled", "module", "main", "action", "init", "resource", "vercel")
	}

	domainRepo := repository.NewDomainRepository(database)

	domainService := service.NewDomainService(domainRepo, provider, limiter, validator, m)
	txtService := service.NewTXTVerificationService(domainRepo, resolver, limiter, validator, m)
	jobService := service.NewDomainJobService(domainRepo, provider, cfg.UnverifiedDomainTTL, m)
	authService := service.NewAuthService(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, user routes will reject every request", "module", "main", "action", "init", "resource", "auth")
	}

	e := apphttp.NewRouter(
		handler.NewDomainHandler(domainService),
		handler.NewTXTVerifyHandler(txtService),
		handler.NewJobHandler(jobService),
		authService,
		m,
		cfg.CronSecret,
		cfg.EnableSwagger,
	)

	var sched *scheduler.Scheduler
	if cfg.JobInterval > 0 {
		sched = scheduler.New(jobService, janitor, cfg.JobInterval)
		sched.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "module", "main", "action", "start", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "module", "main", "action", "start", "result", "failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "module", "main", "action", "stop")

	if sched != nil {
		sched.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "module", "main", "action", "stop", "result", "failed", "error", err)
	}
}

// newRateLimitStore returns a Redis store when redisURL is set, otherwise an
// in-process store together with its janitor.
func newRateLimitStore(redisURL string) (ratelimit.Store, scheduler.Janitor, func(), error) {
	if redisURL == "" {
		mem := ratelimit.NewMemoryStore()
		return mem, mem, func() {}, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, nil, err
	}
	logger.Info("rate limits stored in redis", "module", "main", "action", "init", "resource", "rate_limit", "addr", opts.Addr)
	return ratelimit.NewRedisStore(rdb), nil, func() { rdb.Close() }, nil
}
