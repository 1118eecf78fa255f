// Package ratelimit implements per-user, per-operation fixed-window quotas.
//
// Check and Consume are separate calls: callers check before the guarded
// action and consume only after it succeeded. Two concurrent requests can
// both pass Check before either consumes; the limit is a best-effort abuse
// guard, not a correctness mechanism.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Operation string

const (
	OpDomainAdd    Operation = "domain:add"
	OpDomainVerify Operation = "domain:verify"
	OpDomainRemove Operation = "domain:remove"
)

// ErrUnknownOperation is returned for operations without a policy.
var ErrUnknownOperation = errors.New("unknown rate limit operation")

// Policy is the quota for one operation.
type Policy struct {
	Limit  int
	Window time.Duration
}

// DefaultPolicies returns the built-in quotas.
func DefaultPolicies() map[Operation]Policy {
	return map[Operation]Policy{
		OpDomainAdd:    {Limit: 5, Window: 24 * time.Hour},
		OpDomainVerify: {Limit: 10, Window: time.Hour},
		OpDomainRemove: {Limit: 3, Window: 24 * time.Hour},
	}
}

// Operations lists the operations with default policies, in a stable order.
func Operations() []Operation {
	return []Operation{OpDomainAdd, OpDomainVerify, OpDomainRemove}
}

// Result describes the quota state for one key.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RetryAfterMs is RetryAfter in milliseconds.
func (r Result) RetryAfterMs() int64 {
	return r.RetryAfter.Milliseconds()
}

// Limiter evaluates quotas against a Store.
type Limiter struct {
	store    Store
	policies map[Operation]Policy
	now      func() time.Time
}

type Option func(*Limiter)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithPolicy sets or replaces the policy for op.
func WithPolicy(op Operation, p Policy) Option {
	return func(l *Limiter) { l.policies[op] = p }
}

func New(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:    store,
		policies: DefaultPolicies(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key builds the store key for a user and operation.
func Key(userID string, op Operation) string {
	return userID + ":" + string(op)
}

// Policy returns the policy for op.
func (l *Limiter) Policy(op Operation) (Policy, error) {
	p, ok := l.policies[op]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return p, nil
}

// Check reports whether one more op is allowed for userID. A missing or
// expired window is reset to a zero count starting now, so Check mutates
// the store even though it does not count anything.
func (l *Limiter) Check(ctx context.Context, userID string, op Operation) (Result, error) {
	p, err := l.Policy(op)
	if err != nil {
		return Result{}, err
	}
	now := l.now()
	key := Key(userID, op)

	entry, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("rate limit get %s: %w", key, err)
	}
	if !ok || entry.expired(now, p.Window) {
		entry = Entry{Count: 0, WindowStart: now}
		if err := l.store.Reset(ctx, key, now, p.Window); err != nil {
			return Result{}, fmt.Errorf("rate limit reset %s: %w", key, err)
		}
	}

	resetAt := entry.WindowStart.Add(p.Window)
	if entry.Count >= p.Limit {
		return Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}, nil
	}
	return Result{
		Allowed:   true,
		Remaining: max(0, p.Limit-entry.Count-1),
		ResetAt:   resetAt,
	}, nil
}

// Consume counts one op for userID. Call it after the guarded action
// succeeded.
func (l *Limiter) Consume(ctx context.Context, userID string, op Operation) error {
	p, err := l.Policy(op)
	if err != nil {
		return err
	}
	key := Key(userID, op)
	if _, err := l.store.Increment(ctx, key, l.now(), p.Window); err != nil {
		return fmt.Errorf("rate limit increment %s: %w", key, err)
	}
	return nil
}

// Info reports the quota state without touching the store.
func (l *Limiter) Info(ctx context.Context, userID string, op Operation) (Result, error) {
	p, err := l.Policy(op)
	if err != nil {
		return Result{}, err
	}
	now := l.now()
	key := Key(userID, op)

	entry, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("rate limit get %s: %w", key, err)
	}
	if !ok || entry.expired(now, p.Window) {
		return Result{
			Allowed:   p.Limit > 0,
			Remaining: p.Limit,
			ResetAt:   now.Add(p.Window),
		}, nil
	}

	resetAt := entry.WindowStart.Add(p.Window)
	res := Result{
		Allowed:   entry.Count < p.Limit,
		Remaining: max(0, p.Limit-entry.Count),
		ResetAt:   resetAt,
	}
	if !res.Allowed {
		res.RetryAfter = resetAt.Sub(now)
	}
	return res, nil
}
