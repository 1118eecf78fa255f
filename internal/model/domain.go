package model

import "time"

const (
	TemplateCard    = "card"
	TemplateWebsite = "website"
)

// IsValidTemplate reports whether t is a template a domain can be bound to.
func IsValidTemplate(t string) bool {
	return t == TemplateCard || t == TemplateWebsite
}

// SiteDomain is a custom domain connected to one of a user's templates.
type SiteDomain struct {
	ID                int64
	UserID            string
	Template          string
	Domain            string
	Verified          bool
	VerifiedAt        *time.Time
	VerificationToken *string
	TXTVerifiedAt     *time.Time
	LastCheckedAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TXTVerified reports whether ownership was proven via the TXT record.
func (d *SiteDomain) TXTVerified() bool {
	return d.TXTVerifiedAt != nil
}
