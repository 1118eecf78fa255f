//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/singleflight"

	"dbc/backend/internal/metrics"
	"dbc/backend/internal/model"
	"dbc/backend/internal/repository"
	"dbc/backend/internal/vercel"
	"dbc/backend/pkg/logger"
)

const (
	JobCleanup  = "cleanup-domains"
	JobReverify = "reverify-domains"

	DefaultUnverifiedTTL = 7 * 24 * time.Hour
	// DefaultJobTimeout bounds one shared run regardless of who triggered it.
	DefaultJobTimeout = 10 * time.Minute
)

// JobSummary is the outcome of one job run. Row failures do not stop a run;
// they are counted and listed in Errors.
type JobSummary struct {
	Job        string
	Processed  int
	Succeeded  int
	Failed     int
	Errors     []string
	StartedAt  time.Time
	FinishedAt time.Time
}

type DomainJobService interface {
	// Reverify asks the provider to verify every unverified domain.
	Reverify(ctx context.Context) (*JobSummary, error)
	// Cleanup removes stale unverified domains and rows the provider no
	// longer knows about.
	Cleanup(ctx context.Context) (*JobSummary, error)
}

type domainJobService struct {
	domains  repository.DomainRepository
	provider DomainProvider
	metrics  *metrics.Metrics
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time
	group    singleflight.Group
}

func NewDomainJobService(domains repository.DomainRepository, provider DomainProvider, unverifiedTTL time.Duration, m *metrics.Metrics) DomainJobService {
	if unverifiedTTL <= 0 {
		unverifiedTTL = DefaultUnverifiedTTL
	}
	return &domainJobService{
		domains:  domains,
		provider: provider,
		metrics:  m,
		ttl:      unverifiedTTL,
		timeout:  DefaultJobTimeout,
		now:      time.Now,
	}
}

func (s *domainJobService) Reverify(ctx context.Context) (*JobSummary, error) {
	return s.run(ctx, JobReverify, s.reverify)
}

func (s *domainJobService) Cleanup(ctx context.Context) (*JobSummary, error) {
	return s.run(ctx, JobCleanup, s.cleanup)
}

// run collapses concurrent triggers of the same job in this process into one
// execution whose summary every caller receives. The execution is detached
// from the triggering request and bounded by s.timeout; a caller whose ctx
// ends stops waiting without affecting the others.
func (s *domainJobService) run(ctx context.Context, job string, fn func(context.Context, *JobSummary) *multierror.Error) (*JobSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch := s.group.DoChan(job, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		summary := &JobSummary{Job: job, StartedAt: s.now().UTC()}
		logger.Info("job started", "module", "service", "action", "run", "resource", job)

		merr := fn(ctx, summary)
		summary.FinishedAt = s.now().UTC()
		elapsed := summary.FinishedAt.Sub(summary.StartedAt)

		if err := ctx.Err(); err != nil {
			merr = multierror.Append(merr, err)
		}
		if merr != nil {
			for _, e := range merr.Errors {
				summary.Errors = append(summary.Errors, e.Error())
			}
		}
		s.metrics.JobRows(job, "processed", summary.Processed)
		s.metrics.JobRows(job, "succeeded", summary.Succeeded)
		s.metrics.JobRows(job, "failed", summary.Failed)

		if err := merr.ErrorOrNil(); err != nil {
			s.metrics.JobRun(job, elapsed, err)
			logger.Warn("job finished with errors", "module", "service", "action", "run", "resource", job, "result", "partial",
				"processed", summary.Processed, "succeeded", summary.Succeeded, "failed", summary.Failed, "error", err)
		} else {
			s.metrics.JobRun(job, elapsed, nil)
			logger.Info("job finished", "module", "service", "action", "run", "resource", job, "result", "ok",
				"processed", summary.Processed, "succeeded", summary.Succeeded, "duration_ms", elapsed.Milliseconds())
		}
		return summary, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("job run shared", "module", "service", "action", "run", "resource", job)
		}
		return res.Val.(*JobSummary), nil
	case <-ctx.Done():
		logger.Info("job caller gave up", "module", "service", "action", "run", "resource", job, "error", ctx.Err())
		return nil, ctx.Err()
	}
}

func (s *domainJobService) reverify(ctx context.Context, summary *JobSummary) *multierror.Error {
	rows, err := s.domains.ListUnverified(ctx, 0)
	if err != nil {
		return multierror.Append(nil, fmt.Errorf("list unverified: %w", err))
	}

	var merr *multierror.Error
	for i := range rows {
		if ctx.Err() != nil {
			break
		}
		row := &rows[i]
		summary.Processed++

		d, err := s.provider.VerifyDomain(ctx, row.Domain)
		s.metrics.ProviderCall("verify", err)
		if err != nil && !vercel.IsVerificationPending(err) {
			summary.Failed++
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", row.Domain, err))
			continue
		}

		now := s.now().UTC()
		if err == nil && d.Verified {
			if err := s.domains.SetProviderVerified(ctx, row.ID, now); err != nil {
				summary.Failed++
				merr = multierror.Append(merr, fmt.Errorf("%s: persist verified: %w", row.Domain, err))
				continue
			}
			summary.Succeeded++
			logger.Info("domain verified", "module", "service", "action", "verify", "resource", "domain", "result", "ok", "domain", row.Domain)
			continue
		}
		if err := s.domains.TouchChecked(ctx, row.ID, now); err != nil {
			logger.Warn("touch checked failed", "module", "service", "action", "update", "resource", "domain", "result", "failed", "domain", row.Domain, "error", err)
		}
	}
	return merr
}

func (s *domainJobService) cleanup(ctx context.Context, summary *JobSummary) *multierror.Error {
	rows, err := s.domains.ListAll(ctx)
	if err != nil {
		return multierror.Append(nil, fmt.Errorf("list domains: %w", err))
	}

	cutoff := s.now().Add(-s.ttl)
	var merr *multierror.Error
	for i := range rows {
		if ctx.Err() != nil {
			break
		}
		row := &rows[i]
		summary.Processed++

		if !row.Verified && row.CreatedAt.Before(cutoff) {
			if err := s.removeStale(ctx, row); err != nil {
				summary.Failed++
				merr = multierror.Append(merr, err)
				continue
			}
			summary.Succeeded++
			continue
		}

		_, err := s.provider.GetDomain(ctx, row.Domain)
		s.metrics.ProviderCall("get", err)
		switch {
		case err == nil:
		case vercel.IsNotFound(err):
			if err := s.deleteRow(ctx, row); err != nil {
				summary.Failed++
				merr = multierror.Append(merr, err)
				continue
			}
			summary.Succeeded++
			logger.Info("orphaned domain removed", "module", "service", "action", "delete", "resource", "domain", "result", "ok", "domain", row.Domain)
		default:
			summary.Failed++
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", row.Domain, err))
		}
	}
	return merr
}

func (s *domainJobService) removeStale(ctx context.Context, row *model.SiteDomain) error {
	err := s.provider.RemoveDomain(ctx, row.Domain)
	s.metrics.ProviderCall("remove", err)
	if err != nil && !vercel.IsNotFound(err) {
		return fmt.Errorf("%s: remove from provider: %w", row.Domain, err)
	}
	if err := s.deleteRow(ctx, row); err != nil {
		return err
	}
	logger.Info("stale domain removed", "module", "service", "action", "delete", "resource", "domain", "result", "ok", "domain", row.Domain, "created_at", row.CreatedAt)
	return nil
}

func (s *domainJobService) deleteRow(ctx context.Context, row *model.SiteDomain) error {
	if err := s.domains.Delete(ctx, row.ID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: delete row: %w", row.Domain, err)
	}
	return nil
}
