package service

import (
	"context"
	"errors"
	"fmt"

	"dbc/backend/internal/domainutil"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/model"
	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/repository"
	"dbc/backend/internal/vercel"
)

const (
	msgDomainNotFound       = "Domain not found"
	msgDomainForbidden      = "You do not have access to this domain"
	msgInvalidTemplate      = "Template must be one of: card, website"
	msgProviderUnconfigured = "Custom domains are not available right now"
)

// validateDomain normalizes and checks input, returning a ValidationError
// carrying the normalized form on failure.
func validateDomain(v *domainutil.Validator, input string) (string, error) {
	res := v.Validate(input)
	if !res.Valid {
		return "", &ValidationError{Message: res.Message, Normalized: res.Normalized}
	}
	return res.Normalized, nil
}

// loadOwned returns the row for domain if userID owns it.
func loadOwned(ctx context.Context, repo repository.DomainRepository, userID, domain string) (*model.SiteDomain, error) {
	row, err := repo.GetByDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	if row == nil {
		return nil, newError(ErrNotFound, msgDomainNotFound)
	}
	if row.UserID != userID {
		return nil, newError(ErrForbidden, msgDomainForbidden)
	}
	return row, nil
}

// checkQuota returns a RateLimitError when op is exhausted for userID.
func checkQuota(ctx context.Context, limiter QuotaLimiter, m *metrics.Metrics, userID string, op ratelimit.Operation) error {
	res, err := limiter.Check(ctx, userID, op)
	if err != nil {
		return fmt.Errorf("check rate limit: %w", err)
	}
	if !res.Allowed {
		m.RateLimitDenied(string(op))
		return &RateLimitError{Operation: op, Result: res}
	}
	return nil
}

// providerError maps provider failures onto service errors.
func providerError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vercel.ErrNotConfigured):
		return &MessageError{Kind: ErrUnavailable, Message: msgProviderUnconfigured, Err: err}
	default:
		return &ProviderError{Op: op, Err: err}
	}
}
