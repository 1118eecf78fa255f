//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dbc/backend/internal/dnsresolver"
	"dbc/backend/internal/domainutil"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/repository"
	"dbc/backend/pkg/logger"
)

const (
	MsgAlreadyVerified   = "Domain already verified"
	MsgOwnershipVerified = "Domain ownership verified"
	MsgRecordNotFound    = "TXT record not found. DNS records can take up to 48 hours to propagate."
	MsgRecordMismatch    = "TXT record does not match the verification token. DNS records can take up to 48 hours to propagate."
	MsgNoToken           = "No verification token found. Request a verification token first."
	MsgDNSTimeout        = "DNS lookup timed out. Please try again in a few minutes."
	MsgDNSFailed         = "Failed to check DNS records. Please try again later."
)

// TXTChallenge is what the caller has to publish to prove ownership.
type TXTChallenge struct {
	Domain       string
	Verified     bool
	VerifiedAt   *time.Time
	RecordType   string
	RecordName   string
	RecordHost   string
	RecordValue  string
	Instructions string
}

type TXTVerifyResult struct {
	Domain     string
	Verified   bool
	VerifiedAt *time.Time
	Message    string
}

type TXTVerificationService interface {
	Issue(ctx context.Context, userID, domain string) (*TXTChallenge, error)
	Verify(ctx context.Context, userID, domain string) (*TXTVerifyResult, error)
}

type txtVerificationService struct {
	domains   repository.DomainRepository
	resolver  TXTResolver
	limiter   QuotaLimiter
	validator *domainutil.Validator
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewTXTVerificationService(domains repository.DomainRepository, resolver TXTResolver, limiter QuotaLimiter, validator *domainutil.Validator, m *metrics.Metrics) TXTVerificationService {
	if validator == nil {
		validator = domainutil.NewValidator(domainutil.PlatformDomain)
	}
	return &txtVerificationService{
		domains:   domains,
		resolver:  resolver,
		limiter:   limiter,
		validator: validator,
		metrics:   m,
		now:       time.Now,
	}
}

// Issue returns the caller's TXT challenge, creating a token on first use.
func (s *txtVerificationService) Issue(ctx context.Context, userID, domain string) (*TXTChallenge, error) {
	name, err := validateDomain(s.validator, domain)
	if err != nil {
		return nil, err
	}
	row, err := loadOwned(ctx, s.domains, userID, name)
	if err != nil {
		return nil, err
	}

	if row.TXTVerified() {
		return &TXTChallenge{Domain: name, Verified: true, VerifiedAt: row.TXTVerifiedAt}, nil
	}

	var token string
	if row.VerificationToken != nil && domainutil.IsVerificationToken(*row.VerificationToken) {
		token = *row.VerificationToken
	} else {
		token = domainutil.GenerateVerificationToken()
		if err := s.domains.SetVerificationToken(ctx, row.ID, token); err != nil {
			return nil, fmt.Errorf("save verification token: %w", err)
		}
		logger.Info("txt token issued", "module", "service", "action", "issue", "resource", "txt_verification", "result", "ok", "domain", name)
	}

	recordName := domainutil.GetVerificationRecordName(name)
	host := recordName
	if apex, err := domainutil.ApexDomain(name); err == nil {
		host = strings.TrimSuffix(recordName, "."+apex)
	}
	return &TXTChallenge{
		Domain:      name,
		RecordType:  "TXT",
		RecordName:  recordName,
		RecordHost:  host,
		RecordValue: token,
		Instructions: fmt.Sprintf(
			"Add a TXT record with name %s and value %s at your DNS provider, then click verify. DNS records can take up to 48 hours to propagate.",
			recordName, token),
	}, nil
}

// Verify looks up the challenge record and marks the domain verified on a
// match. Quota is only consumed once a lookup produced an answer.
func (s *txtVerificationService) Verify(ctx context.Context, userID, domain string) (*TXTVerifyResult, error) {
	name, err := validateDomain(s.validator, domain)
	if err != nil {
		return nil, err
	}
	row, err := loadOwned(ctx, s.domains, userID, name)
	if err != nil {
		return nil, err
	}

	if row.TXTVerified() {
		return &TXTVerifyResult{Domain: name, Verified: true, VerifiedAt: row.TXTVerifiedAt, Message: MsgAlreadyVerified}, nil
	}
	if row.VerificationToken == nil || *row.VerificationToken == "" {
		return nil, newError(ErrInvalid, MsgNoToken)
	}
	token := *row.VerificationToken

	if err := checkQuota(ctx, s.limiter, s.metrics, userID, ratelimit.OpDomainVerify); err != nil {
		return nil, err
	}

	recordName := domainutil.GetVerificationRecordName(name)
	values, err := s.resolver.LookupTXT(ctx, recordName)
	switch {
	case err == nil:
	case errors.Is(err, dnsresolver.ErrNotFound), errors.Is(err, dnsresolver.ErrNoData):
		s.consume(ctx, userID)
		s.metrics.TXTVerification("pending")
		return &TXTVerifyResult{Domain: name, Message: MsgRecordNotFound}, nil
	case errors.Is(err, dnsresolver.ErrTimeout):
		s.metrics.TXTVerification("timeout")
		logger.Warn("txt lookup timed out", "module", "service", "action", "verify", "resource", "txt_verification", "result", "failed", "domain", name)
		return nil, &MessageError{Kind: ErrDNSTimeout, Message: MsgDNSTimeout, Err: err}
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		s.metrics.TXTVerification("error")
		logger.Error("txt lookup failed", "module", "service", "action", "verify", "resource", "txt_verification", "result", "failed", "domain", name, "error", err)
		return nil, &MessageError{Kind: ErrDNSLookup, Message: MsgDNSFailed, Err: err}
	}

	s.consume(ctx, userID)
	if !matchesToken(values, token) {
		s.metrics.TXTVerification("pending")
		return &TXTVerifyResult{Domain: name, Message: MsgRecordMismatch}, nil
	}

	now := s.now().UTC()
	if err := s.domains.MarkTXTVerified(ctx, row.ID, now); err != nil {
		return nil, fmt.Errorf("mark txt verified: %w", err)
	}
	s.metrics.TXTVerification("verified")
	logger.Info("txt ownership verified", "module", "service", "action", "verify", "resource", "txt_verification", "result", "ok", "domain", name)
	return &TXTVerifyResult{Domain: name, Verified: true, VerifiedAt: &now, Message: MsgOwnershipVerified}, nil
}

func (s *txtVerificationService) consume(ctx context.Context, userID string) {
	if err := s.limiter.Consume(ctx, userID, ratelimit.OpDomainVerify); err != nil {
		logger.Warn("rate limit consume failed", "module", "service", "action", "consume", "resource", "rate_limit", "result", "failed", "operation", ratelimit.OpDomainVerify, "error", err)
	}
}

func matchesToken(values []string, token string) bool {
	want := strings.TrimSpace(token)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}
