package service

import (
	"errors"

	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/vercel"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrUpstream     = errors.New("upstream error")
	ErrDNSTimeout   = errors.New("dns lookup timed out")
	ErrDNSLookup    = errors.New("dns lookup failed")
	ErrUnavailable  = errors.New("service unavailable")
)

// MessageError pairs a sentinel kind with the message shown to the caller.
type MessageError struct {
	Kind    error
	Message string
	Err     error
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) Is(target error) bool {
	return target == e.Kind
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

func newError(kind error, message string) error {
	return &MessageError{Kind: kind, Message: message}
}

// ValidationError is returned when a domain fails format validation.
type ValidationError struct {
	Message    string
	Normalized string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// RateLimitError is returned when the caller has used up a quota.
type RateLimitError struct {
	Operation ratelimit.Operation
	Result    ratelimit.Result
}

func (e *RateLimitError) Error() string {
	return "Rate limit exceeded. Please try again later."
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// ProviderError wraps a hosting provider failure. Error returns the
// provider's own message.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	var apiErr *vercel.APIError
	if errors.As(e.Err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return e.Err.Error()
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrUpstream
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
