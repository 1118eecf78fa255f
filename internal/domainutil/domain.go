// Package domainutil normalizes and validates user-supplied custom domains
// and builds the DNS names used to prove ownership of them.
package domainutil

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// PlatformDomain is the product's own domain; it can never be claimed.
const PlatformDomain = "digitalbusinesscard.app"

const (
	minDomainLength = 4
	maxDomainLength = 253
	maxLabelLength  = 63
)

const (
	MsgDomainRequired   = "Domain is required"
	MsgIncludesProtocol = "Please enter the domain without http:// or https://"
	MsgContainsSpaces   = "Domain cannot contain spaces"
	MsgInvalidLength    = "Domain must be between 4 and 253 characters"
	MsgInvalidFormat    = "Invalid domain format"
	MsgConsecutiveDots  = "Domain cannot contain consecutive dots"
	MsgBlockedDomain    = "This domain cannot be used"
	MsgBlockedTLD       = "This domain extension is not supported"
	MsgLabelTooLong     = "Each part of the domain must be 63 characters or fewer"
	MsgLabelHyphen      = "Domain parts cannot start or end with a hyphen"
)

var (
	domainPattern  = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)
	protocolPrefix = regexp.MustCompile(`^https?://`)

	blockedDomains = []string{
		"localhost",
		"vercel.app",
		"vercel.com",
		"supabase.co",
		"supabase.com",
	}
	blockedTLDs = map[string]struct{}{
		"local":     {},
		"localhost": {},
		"test":      {},
		"example":   {},
		"invalid":   {},
	}
)

// ValidationResult is the outcome of a format check. Normalized is set
// whenever parsing got far enough to produce it, including on failure.
type ValidationResult struct {
	Valid      bool
	Message    string
	Normalized string
}

// Validator checks domains against the format rules and a blocked list.
type Validator struct {
	blocked []string
}

// NewValidator returns a validator that also blocks platformDomain and its
// subdomains. An empty platformDomain falls back to PlatformDomain.
func NewValidator(platformDomain string) *Validator {
	platformDomain = NormalizeDomain(platformDomain)
	if platformDomain == "" {
		platformDomain = PlatformDomain
	}
	blocked := make([]string, 0, len(blockedDomains)+1)
	blocked = append(blocked, blockedDomains...)
	blocked = append(blocked, platformDomain)
	return &Validator{blocked: blocked}
}

var defaultValidator = NewValidator(PlatformDomain)

// ValidateDomainFormat validates input with the default blocked list.
func ValidateDomainFormat(input string) ValidationResult {
	return defaultValidator.Validate(input)
}

// NormalizeDomain lowercases input and strips protocol, path, query,
// fragment, port and trailing dots. It is idempotent.
func NormalizeDomain(input string) string {
	prev := input
	for {
		next := normalizePass(prev)
		if next == prev {
			return next
		}
		prev = next
	}
}

func normalizePass(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = protocolPrefix.ReplaceAllString(s, "")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, ".")
}

// Validate runs the checks in order and stops at the first failure.
func (v *Validator) Validate(input string) ValidationResult {
	if strings.TrimSpace(input) == "" {
		return ValidationResult{Message: MsgDomainRequired}
	}

	normalized := NormalizeDomain(input)
	fail := func(msg string) ValidationResult {
		return ValidationResult{Message: msg, Normalized: normalized}
	}

	if normalized == "" {
		return fail(MsgDomainRequired)
	}
	if strings.Contains(input, "://") {
		return fail(MsgIncludesProtocol)
	}
	if strings.Contains(input, " ") {
		return fail(MsgContainsSpaces)
	}
	if len(normalized) < minDomainLength || len(normalized) > maxDomainLength {
		return fail(MsgInvalidLength)
	}
	if !domainPattern.MatchString(normalized) {
		return fail(MsgInvalidFormat)
	}
	if strings.Contains(normalized, "..") {
		return fail(MsgConsecutiveDots)
	}
	if v.isBlocked(normalized) {
		return fail(MsgBlockedDomain)
	}

	labels := strings.Split(normalized, ".")
	if _, ok := blockedTLDs[labels[len(labels)-1]]; ok {
		return fail(MsgBlockedTLD)
	}
	for _, label := range labels {
		if len(label) > maxLabelLength {
			return fail(MsgLabelTooLong)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fail(MsgLabelHyphen)
		}
	}

	return ValidationResult{Valid: true, Normalized: normalized}
}

func (v *Validator) isBlocked(domain string) bool {
	for _, b := range v.blocked {
		if domain == b || strings.HasSuffix(domain, "."+b) {
			return true
		}
	}
	return false
}

// ApexDomain returns the registrable domain (eTLD+1) of a normalized domain.
func ApexDomain(domain string) (string, error) {
	return publicsuffix.EffectiveTLDPlusOne(domain)
}

// IsApex reports whether domain is its own registrable domain.
func IsApex(domain string) bool {
	apex, err := ApexDomain(domain)
	return err == nil && apex == domain
}

// SubdomainLabel returns the part of domain left of its apex, or "@" for
// an apex domain. This is the host value users enter at their DNS provider.
func SubdomainLabel(domain string) string {
	apex, err := ApexDomain(domain)
	if err != nil || apex == domain {
		return "@"
	}
	return strings.TrimSuffix(domain, "."+apex)
}
