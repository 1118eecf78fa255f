//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"dbc/backend/internal/model"
	"dbc/backend/pkg/snowflake"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate")

// DomainRepository defines the interface for site domain storage.
type DomainRepository interface {
	Create(ctx context.Context, userID, template, domain string) (*model.SiteDomain, error)
	GetByDomain(ctx context.Context, domain string) (*model.SiteDomain, error)
	GetByUserTemplate(ctx context.Context, userID, template string) (*model.SiteDomain, error)
	ListByUser(ctx context.Context, userID string) ([]model.SiteDomain, error)
	ListUnverified(ctx context.Context, limit int) ([]model.SiteDomain, error)
	ListAll(ctx context.Context) ([]model.SiteDomain, error)
	SetProviderVerified(ctx context.Context, id int64, at time.Time) error
	SetVerificationToken(ctx context.Context, id int64, token string) error
	MarkTXTVerified(ctx context.Context, id int64, at time.Time) error
	TouchChecked(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

const domainColumns = `id, user_id, template, domain, verified, verified_at, verification_token,
	txt_verified_at, last_checked_at, created_at, updated_at`

type domainRepository struct {
	db dbtx
}

// NewDomainRepository creates a new site domain repository.
func NewDomainRepository(db *sql.DB) DomainRepository {
	return &domainRepository{db: db}
}

// Create inserts an unverified domain. Unique violations on the domain or on
// (user, template) return ErrDuplicate.
func (r *domainRepository) Create(ctx context.Context, userID, template, domain string) (*model.SiteDomain, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_domains (id, user_id, template, domain, verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`, id, userID, template, domain, nowStr, nowStr)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &model.SiteDomain{
		ID:        id,
		UserID:    userID,
		Template:  template,
		Domain:    domain,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByDomain returns nil, nil when no row matches.
func (r *domainRepository) GetByDomain(ctx context.Context, domain string) (*model.SiteDomain, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+domainColumns+` FROM site_domains WHERE domain = ?`, domain)
	return scanOptional(row)
}

func (r *domainRepository) GetByUserTemplate(ctx context.Context, userID, template string) (*model.SiteDomain, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+domainColumns+` FROM site_domains WHERE user_id = ? AND template = ?`, userID, template)
	return scanOptional(row)
}

func (r *domainRepository) ListByUser(ctx context.Context, userID string) ([]model.SiteDomain, error) {
	return r.list(ctx, `SELECT `+domainColumns+` FROM site_domains WHERE user_id = ? ORDER BY template`, userID)
}

// ListUnverified returns unverified domains oldest first. limit <= 0 means no limit.
func (r *domainRepository) ListUnverified(ctx context.Context, limit int) ([]model.SiteDomain, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.list(ctx, `SELECT `+domainColumns+` FROM site_domains WHERE verified = 0 ORDER BY created_at, id LIMIT ?`, limit)
}

func (r *domainRepository) ListAll(ctx context.Context) ([]model.SiteDomain, error) {
	return r.list(ctx, `SELECT `+domainColumns+` FROM site_domains ORDER BY created_at, id`)
}

func (r *domainRepository) SetProviderVerified(ctx context.Context, id int64, at time.Time) error {
	ts := formatTime(at)
	return r.execOne(ctx, `
		UPDATE site_domains SET verified = 1, verified_at = ?, last_checked_at = ?, updated_at = ? WHERE id = ?
	`, ts, ts, formatTime(time.Now()), id)
}

func (r *domainRepository) SetVerificationToken(ctx context.Context, id int64, token string) error {
	return r.execOne(ctx, `
		UPDATE site_domains SET verification_token = ?, updated_at = ? WHERE id = ?
	`, token, formatTime(time.Now()), id)
}

// MarkTXTVerified records TXT ownership proof and clears the token.
func (r *domainRepository) MarkTXTVerified(ctx context.Context, id int64, at time.Time) error {
	return r.execOne(ctx, `
		UPDATE site_domains SET txt_verified_at = ?, verification_token = NULL, updated_at = ? WHERE id = ?
	`, formatTime(at), formatTime(time.Now()), id)
}

func (r *domainRepository) TouchChecked(ctx context.Context, id int64, at time.Time) error {
	return r.execOne(ctx, `UPDATE site_domains SET last_checked_at = ? WHERE id = ?`, formatTime(at), id)
}

func (r *domainRepository) Delete(ctx context.Context, id int64) error {
	return r.execOne(ctx, `DELETE FROM site_domains WHERE id = ?`, id)
}

// execOne runs a statement that must touch exactly one row; zero rows is
// sql.ErrNoRows.
func (r *domainRepository) execOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *domainRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.SiteDomain, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []model.SiteDomain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, err
		}
		domains = append(domains, *d)
	}
	return domains, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOptional(row *sql.Row) (*model.SiteDomain, error) {
	d, err := scanDomain(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func scanDomain(s scanner) (*model.SiteDomain, error) {
	var (
		d                                         model.SiteDomain
		verified                                  int
		verifiedAt, token, txtVerifiedAt, checked sql.NullString
		createdAt, updatedAt                      string
	)
	if err := s.Scan(&d.ID, &d.UserID, &d.Template, &d.Domain, &verified, &verifiedAt, &token,
		&txtVerifiedAt, &checked, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	d.Verified = verified != 0
	d.VerifiedAt = nullTime(verifiedAt)
	d.TXTVerifiedAt = nullTime(txtVerifiedAt)
	d.LastCheckedAt = nullTime(checked)
	if token.Valid {
		d.VerificationToken = &token.String
	}
	var err error
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("domain %d: parse created_at: %w", d.ID, err)
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("domain %d: parse updated_at: %w", d.ID, err)
	}
	return &d, nil
}

func nullTime(value sql.NullString) *time.Time {
	if !value.Valid || value.String == "" {
		return nil
	}
	t, err := parseTime(value.String)
	if err != nil {
		return nil
	}
	return &t
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
