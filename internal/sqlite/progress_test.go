package sqlite

import (
	"context"
	"testing"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_TotalDuration(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	total, err := repo.TotalDuration(ctx, "client1")
	require.NoError(t, err)
	require.Zero(t, total, "empty log should sum to zero")

	sessionID := "sess1"
	require.NoError(t, repo.AddRecording(ctx, "client1", &sessionID, "rec1", 12.5))
	require.NoError(t, repo.AddRecording(ctx, "client1", nil, "rec2", 7.5))

	// Another client's donations must not leak into the total.
	require.NoError(t, repo.AddRecording(ctx, "client2", nil, "rec3", 100))

	total, err = repo.TotalDuration(ctx, "client1")
	require.NoError(t, err)
	require.InDelta(t, 20.0, total, 0.0001)
}

func TestProgressRepository_DuplicateRecording(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddRecording(ctx, "client1", nil, "rec1", 5))
	err := repo.AddRecording(ctx, "client1", nil, "rec1", 5)
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestProgressRepository_ConsentFlags(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	// Unset flag reads as not granted
	granted, err := repo.Consent(ctx, "research-use")
	require.NoError(t, err)
	require.False(t, granted)

	require.NoError(t, repo.SetConsent(ctx, "research-use", true))
	granted, err = repo.Consent(ctx, "research-use")
	require.NoError(t, err)
	require.True(t, granted)

	// Upsert flips the existing flag in place
	require.NoError(t, repo.SetConsent(ctx, "research-use", false))
	granted, err = repo.Consent(ctx, "research-use")
	require.NoError(t, err)
	require.False(t, granted)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM consent_flags`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
