package draft

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRepository(client, 30*time.Minute), mr
}

func testDraft() *domain.BookingDraft {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		ID:        "4b0c1d9e-0000-4000-8000-000000000001",
		Step:      domain.StepSelectingClass,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepository_CreateGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	d := testDraft()

	require.NoError(t, repo.Create(ctx, d))
	assert.ErrorIs(t, repo.Create(ctx, d), ErrDraftExists)

	got, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	d := testDraft()
	require.NoError(t, repo.Create(ctx, d))

	d.ClassID = "adult-first-aid-cpr-aed"
	d.Step = domain.StepEnteringDetails
	d.Version = 2
	require.NoError(t, repo.Update(ctx, d, 1))

	got, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepEnteringDetails, got.Step)
	assert.Equal(t, 2, got.Version)

	// устаревшая версия
	stale := testDraft()
	stale.Version = 2
	assert.ErrorIs(t, repo.Update(ctx, stale, 1), ErrVersionConflict)
}

func TestRepository_Expiry(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	d := testDraft()
	require.NoError(t, repo.Create(ctx, d))

	mr.FastForward(31 * time.Minute)

	_, err := repo.Get(ctx, d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, repo.Update(ctx, d, 1), ErrDraftNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	d := testDraft()
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, repo.Delete(ctx, d.ID))
	require.NoError(t, repo.Delete(ctx, d.ID))

	_, err := repo.Get(ctx, d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
