package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dbc/backend/internal/model"
	"dbc/backend/internal/repository"
	"dbc/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestDomainRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "user-1", model.TemplateCard, "card.example.com")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.Verified)

	got, err := repo.GetByDomain(ctx, "card.example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "user-1", got.UserID)
	require.Equal(t, model.TemplateCard, got.Template)
	require.Nil(t, got.VerifiedAt)
	require.Nil(t, got.VerificationToken)
	require.Nil(t, got.TXTVerifiedAt)
	require.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Millisecond)

	got, err = repo.GetByUserTemplate(ctx, "user-1", model.TemplateCard)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	got, err = repo.GetByDomain(ctx, "missing.example.com")
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = repo.GetByUserTemplate(ctx, "user-1", model.TemplateWebsite)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDomainRepository_CreateDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "user-1", model.TemplateCard, "example.com")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "user-2", model.TemplateCard, "example.com")
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.Create(ctx, "user-1", model.TemplateCard, "other.example.com")
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.Create(ctx, "user-1", model.TemplateWebsite, "other.example.com")
	require.NoError(t, err)
}

func TestDomainRepository_Lists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()
	now := time.Now()

	oldest := testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u1", Template: model.TemplateCard, Domain: "a.example.com", CreatedAt: now.Add(-3 * time.Hour)})
	testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u1", Template: model.TemplateWebsite, Domain: "b.example.com", Verified: true, VerifiedAt: &now, CreatedAt: now.Add(-2 * time.Hour)})
	newest := testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u2", Template: model.TemplateCard, Domain: "c.example.com", CreatedAt: now.Add(-time.Hour)})

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, model.TemplateCard, mine[0].Template)
	require.Equal(t, model.TemplateWebsite, mine[1].Template)
	require.True(t, mine[1].Verified)
	require.NotNil(t, mine[1].VerifiedAt)

	unverified, err := repo.ListUnverified(ctx, 0)
	require.NoError(t, err)
	require.Len(t, unverified, 2)
	require.Equal(t, oldest, unverified[0].ID)
	require.Equal(t, newest, unverified[1].ID)

	limited, err := repo.ListUnverified(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, oldest, limited[0].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestDomainRepository_VerificationState(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()

	id := testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u1", Domain: "example.com"})

	require.NoError(t, repo.SetVerificationToken(ctx, id, "dbc-abcdefgh12345678"))
	got, err := repo.GetByDomain(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got.VerificationToken)
	require.Equal(t, "dbc-abcdefgh12345678", *got.VerificationToken)
	require.False(t, got.TXTVerified())

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkTXTVerified(ctx, id, at))
	got, err = repo.GetByDomain(ctx, "example.com")
	require.NoError(t, err)
	require.Nil(t, got.VerificationToken)
	require.True(t, got.TXTVerified())
	require.True(t, got.TXTVerifiedAt.Equal(at))

	require.NoError(t, repo.SetProviderVerified(ctx, id, at))
	got, err = repo.GetByDomain(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, got.Verified)
	require.True(t, got.VerifiedAt.Equal(at))
	require.True(t, got.LastCheckedAt.Equal(at))

	later := at.Add(time.Hour)
	require.NoError(t, repo.TouchChecked(ctx, id, later))
	got, err = repo.GetByDomain(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, got.LastCheckedAt.Equal(later))
}

func TestDomainRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()

	id := testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u1", Domain: "example.com"})
	require.NoError(t, repo.Delete(ctx, id))

	got, err := repo.GetByDomain(ctx, "example.com")
	require.NoError(t, err)
	require.Nil(t, got)

	require.ErrorIs(t, repo.Delete(ctx, id), sql.ErrNoRows)
	require.ErrorIs(t, repo.SetVerificationToken(ctx, id, "x"), sql.ErrNoRows)
}

func TestDomainRepository_CorruptTimestamp(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewDomainRepository(db)
	ctx := context.Background()

	id := testutil.SeedDomain(t, db, model.SiteDomain{UserID: "u1", Domain: "example.com"})
	_, err := db.ExecContext(ctx, `UPDATE site_domains SET created_at = 'not-a-time' WHERE id = ?`, id)
	require.NoError(t, err)

	got, err := repo.GetByDomain(ctx, "example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "created_at")
	require.Nil(t, got)

	_, err = repo.ListAll(ctx)
	require.Error(t, err)
}
