//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dbc/backend/internal/domainutil"
	"dbc/backend/internal/metrics"
	"dbc/backend/internal/model"
	"dbc/backend/internal/ratelimit"
	"dbc/backend/internal/repository"
	"dbc/backend/internal/vercel"
	"dbc/backend/pkg/logger"
)

const (
	ApexARecordValue = "76.76.21.21"
	CNAMERecordValue = "cname.vercel-dns.com"

	msgDomainTaken       = "This domain is already connected to another account"
	msgDomainConnected   = "This domain is already connected"
	msgTemplateHasDomain = "A domain is already connected to this template. Remove it first."
	msgDomainInUse       = "This domain is already in use by another project"
	msgTemplateMismatch  = "Domain is not connected to this template"
	msgProviderMissing   = "Domain is not attached to the hosting project"
)

// DNSRecord is a record the caller has to create at their DNS provider.
type DNSRecord struct {
	Type  string
	Name  string
	Value string
}

// DomainStatus is the combined provider and local state of a domain.
type DomainStatus struct {
	Domain        string
	Template      string
	Verified      bool
	VerifiedAt    *time.Time
	Misconfigured bool
	Verification  []vercel.Verification
	DNSRecords    []DNSRecord
	TXTVerified   bool
	TXTVerifiedAt *time.Time
}

type DomainService interface {
	Add(ctx context.Context, userID, domain, template string) (*DomainStatus, error)
	Status(ctx context.Context, userID, domain string) (*DomainStatus, error)
	Remove(ctx context.Context, userID, domain, template string) error
	List(ctx context.Context, userID string) ([]model.SiteDomain, error)
	Quotas(ctx context.Context, userID string) (map[ratelimit.Operation]ratelimit.Result, error)
}

type domainService struct {
	domains   repository.DomainRepository
	provider  DomainProvider
	limiter   QuotaLimiter
	validator *domainutil.Validator
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewDomainService(domains repository.DomainRepository, provider DomainProvider, limiter QuotaLimiter, validator *domainutil.Validator, m *metrics.Metrics) DomainService {
	if validator == nil {
		validator = domainutil.NewValidator(domainutil.PlatformDomain)
	}
	return &domainService{
		domains:   domains,
		provider:  provider,
		limiter:   limiter,
		validator: validator,
		metrics:   m,
		now:       time.Now,
	}
}

// Add attaches domain to the hosting project and then records it. The
// provider call is undone when the row cannot be written.
func (s *domainService) Add(ctx context.Context, userID, domain, template string) (*DomainStatus, error) {
	name, err := validateDomain(s.validator, domain)
	if err != nil {
		return nil, err
	}
	if !model.IsValidTemplate(template) {
		return nil, newError(ErrInvalid, msgInvalidTemplate)
	}
	if err := checkQuota(ctx, s.limiter, s.metrics, userID, ratelimit.OpDomainAdd); err != nil {
		return nil, err
	}

	existing, err := s.domains.GetByDomain(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	if existing != nil {
		if existing.UserID != userID {
			return nil, newError(ErrConflict, msgDomainTaken)
		}
		return nil, newError(ErrConflict, msgDomainConnected)
	}
	current, err := s.domains.GetByUserTemplate(ctx, userID, template)
	if err != nil {
		return nil, fmt.Errorf("get template domain: %w", err)
	}
	if current != nil {
		return nil, newError(ErrConflict, msgTemplateHasDomain)
	}

	attached, err := s.provider.AddDomain(ctx, name)
	s.metrics.ProviderCall("add", err)
	if err != nil {
		if vercel.IsDomainInUse(err) {
			return nil, &MessageError{Kind: ErrConflict, Message: msgDomainInUse, Err: err}
		}
		logger.Error("provider add failed", "module", "service", "action", "create", "resource", "domain", "result", "failed", "domain", name, "error", err)
		return nil, providerError("add", err)
	}
	undo := func() {
		// The request context may already be done; the undo must still run.
		uctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
		defer cancel()
		uerr := s.provider.RemoveDomain(uctx, name)
		s.metrics.ProviderCall("remove", uerr)
		if uerr != nil {
			logger.Error("undo provider add failed", "module", "service", "action", "rollback", "resource", "domain", "result", "failed", "domain", name, "error", uerr)
			return
		}
		logger.Info("undo provider add", "module", "service", "action", "rollback", "resource", "domain", "result", "ok", "domain", name)
	}

	row, err := s.domains.Create(ctx, userID, template, name)
	if err != nil {
		undo()
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, msgDomainConnected)
		}
		return nil, fmt.Errorf("save domain: %w", err)
	}

	if err := s.limiter.Consume(ctx, userID, ratelimit.OpDomainAdd); err != nil {
		logger.Warn("rate limit consume failed", "module", "service", "action", "consume", "resource", "rate_limit", "result", "failed", "operation", ratelimit.OpDomainAdd, "error", err)
	}
	logger.Info("domain added", "module", "service", "action", "create", "resource", "domain", "result", "ok", "domain", name, "template", template)

	if attached.Verified {
		now := s.now().UTC()
		if err := s.domains.SetProviderVerified(ctx, row.ID, now); err != nil {
			logger.Warn("persist verified failed", "module", "service", "action", "update", "resource", "domain", "result", "failed", "domain", name, "error", err)
		} else {
			row.Verified = true
			row.VerifiedAt = &now
		}
	}
	return buildStatus(row, attached, nil), nil
}

// Status reads provider state for the caller's domain and, when the
// provider still reports it unverified, asks it to verify again.
func (s *domainService) Status(ctx context.Context, userID, domain string) (*DomainStatus, error) {
	name, err := validateDomain(s.validator, domain)
	if err != nil {
		return nil, err
	}
	row, err := loadOwned(ctx, s.domains, userID, name)
	if err != nil {
		return nil, err
	}

	pd, err := s.provider.GetDomain(ctx, name)
	s.metrics.ProviderCall("get", err)
	if err != nil {
		if vercel.IsNotFound(err) {
			return nil, &MessageError{Kind: ErrNotFound, Message: msgProviderMissing, Err: err}
		}
		return nil, providerError("get", err)
	}
	cfg, err := s.provider.GetDomainConfig(ctx, name)
	s.metrics.ProviderCall("config", err)
	if err != nil {
		return nil, providerError("config", err)
	}

	if !pd.Verified {
		verified, err := s.provider.VerifyDomain(ctx, name)
		s.metrics.ProviderCall("verify", err)
		switch {
		case err == nil:
			pd = verified
		case vercel.IsVerificationPending(err):
		default:
			logger.Warn("provider verify failed", "module", "service", "action", "verify", "resource", "domain", "result", "failed", "domain", name, "error", err)
		}
	}

	now := s.now().UTC()
	if pd.Verified && !row.Verified {
		if err := s.domains.SetProviderVerified(ctx, row.ID, now); err != nil {
			return nil, fmt.Errorf("persist verified: %w", err)
		}
		row.Verified = true
		row.VerifiedAt = &now
		logger.Info("domain verified", "module", "service", "action", "verify", "resource", "domain", "result", "ok", "domain", name)
	} else if err := s.domains.TouchChecked(ctx, row.ID, now); err != nil {
		logger.Warn("touch checked failed", "module", "service", "action", "update", "resource", "domain", "result", "failed", "domain", name, "error", err)
	}

	return buildStatus(row, pd, cfg), nil
}

// Remove detaches domain from the hosting project and deletes the row. A
// domain the provider no longer knows is still deleted locally.
func (s *domainService) Remove(ctx context.Context, userID, domain, template string) error {
	name, err := validateDomain(s.validator, domain)
	if err != nil {
		return err
	}
	if !model.IsValidTemplate(template) {
		return newError(ErrInvalid, msgInvalidTemplate)
	}
	if err := checkQuota(ctx, s.limiter, s.metrics, userID, ratelimit.OpDomainRemove); err != nil {
		return err
	}
	row, err := loadOwned(ctx, s.domains, userID, name)
	if err != nil {
		return err
	}
	if row.Template != template {
		return newError(ErrInvalid, msgTemplateMismatch)
	}

	err = s.provider.RemoveDomain(ctx, name)
	s.metrics.ProviderCall("remove", err)
	if err != nil && !vercel.IsNotFound(err) {
		logger.Error("provider remove failed", "module", "service", "action", "delete", "resource", "domain", "result", "failed", "domain", name, "error", err)
		return providerError("remove", err)
	}

	if err := s.domains.Delete(ctx, row.ID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("delete domain: %w", err)
	}
	if err := s.limiter.Consume(ctx, userID, ratelimit.OpDomainRemove); err != nil {
		logger.Warn("rate limit consume failed", "module", "service", "action", "consume", "resource", "rate_limit", "result", "failed", "operation", ratelimit.OpDomainRemove, "error", err)
	}
	logger.Info("domain removed", "module", "service", "action", "delete", "resource", "domain", "result", "ok", "domain", name)
	return nil
}

func (s *domainService) List(ctx context.Context, userID string) ([]model.SiteDomain, error) {
	return s.domains.ListByUser(ctx, userID)
}

// Quotas reports the caller's remaining quota for every operation.
func (s *domainService) Quotas(ctx context.Context, userID string) (map[ratelimit.Operation]ratelimit.Result, error) {
	out := make(map[ratelimit.Operation]ratelimit.Result, len(ratelimit.Operations()))
	for _, op := range ratelimit.Operations() {
		res, err := s.limiter.Info(ctx, userID, op)
		if err != nil {
			return nil, fmt.Errorf("rate limit info %s: %w", op, err)
		}
		out[op] = res
	}
	return out, nil
}

// DNSInstructions returns the routing record for domain: an A record at the
// apex, a CNAME for subdomains.
func DNSInstructions(domain string) []DNSRecord {
	if domainutil.IsApex(domain) {
		return []DNSRecord{{Type: "A", Name: "@", Value: ApexARecordValue}}
	}
	return []DNSRecord{{Type: "CNAME", Name: domainutil.SubdomainLabel(domain), Value: CNAMERecordValue}}
}

func buildStatus(row *model.SiteDomain, pd *vercel.Domain, cfg *vercel.DomainConfig) *DomainStatus {
	st := &DomainStatus{
		Domain:        row.Domain,
		Template:      row.Template,
		Verified:      row.Verified,
		VerifiedAt:    row.VerifiedAt,
		DNSRecords:    DNSInstructions(row.Domain),
		TXTVerified:   row.TXTVerified(),
		TXTVerifiedAt: row.TXTVerifiedAt,
	}
	if pd != nil {
		st.Verified = st.Verified || pd.Verified
		if !pd.Verified {
			st.Verification = pd.Verification
			for _, v := range pd.Verification {
				st.DNSRecords = append(st.DNSRecords, DNSRecord{Type: v.Type, Name: v.Domain, Value: v.Value})
			}
		}
	}
	if cfg != nil {
		st.Misconfigured = cfg.Misconfigured
	}
	return st
}
