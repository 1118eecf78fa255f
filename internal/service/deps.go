//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"

	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/vercel"
)

// DomainProvider attaches domains to the hosting project.
type DomainProvider interface {
	AddDomain(ctx context.Context, name string) (*vercel.Domain, error)
	RemoveDomain(ctx context.Context, name string) error
	GetDomain(ctx context.Context, name string) (*vercel.Domain, error)
	VerifyDomain(ctx context.Context, name string) (*vercel.Domain, error)
	GetDomainConfig(ctx context.Context, name string) (*vercel.DomainConfig, error)
}

// QuotaLimiter enforces per-user operation quotas.
type QuotaLimiter interface {
	Check(ctx context.Context, userID string, op ratelimit.Operation) (ratelimit.Result, error)
	Consume(ctx context.Context, userID string, op ratelimit.Operation) error
	Info(ctx context.Context, userID string, op ratelimit.Operation) (ratelimit.Result, error)
}

// TXTResolver looks up TXT records.
type TXTResolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}
