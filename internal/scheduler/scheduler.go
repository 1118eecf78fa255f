package scheduler

import (
	"context"
	"sync"
	"time"

	"dbc/backend/internal/service"
	"dbc/backend/pkg/logger"
)

// Janitor drops expired rate-limit windows. Implemented by
// ratelimit.MemoryStore; nil when windows live in Redis.
type Janitor interface {
	Cleanup(now time.Time) int
}

// Scheduler runs the domain jobs in-process on a fixed interval. External
// cron calling the HTTP endpoints remains the primary trigger; both paths
// share the job service, so overlapping runs collapse into one.
type Scheduler struct {
	jobs       service.DomainJobService
	janitor    Janitor
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current run
	mu         sync.Mutex         // protects cancelFunc
}

func New(jobs service.DomainJobService, janitor Janitor, interval time.Duration) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		janitor:  janitor,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "start", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing run first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "stop")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) tick() {
	// A run may take at most one interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if s.janitor != nil {
		if n := s.janitor.Cleanup(time.Now()); n > 0 {
			logger.Debug("rate limit windows expired", "module", "scheduler", "action", "cleanup", "resource", "rate_limit", "removed", n)
		}
	}

	for _, job := range []struct {
		name string
		fn   func(context.Context) (*service.JobSummary, error)
	}{
		{service.JobReverify, s.jobs.Reverify},
		{service.JobCleanup, s.jobs.Cleanup},
	} {
		if _, err := job.fn(ctx); err != nil {
			if ctx.Err() != nil {
				logger.Info("scheduled job cancelled", "module", "scheduler", "action", "run", "resource", job.name)
				return
			}
			logger.Error("scheduled job failed", "module", "scheduler", "action", "run", "resource", job.name, "result", "failed", "error", err)
		}
	}
}
