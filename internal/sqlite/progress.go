package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/repository"
)

// ProgressRepository implements repository.ProgressRepository for SQLite
type ProgressRepository struct {
	db *DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// AddRecording logs one successfully uploaded recording.
func (r *ProgressRepository) AddRecording(ctx context.Context, clientID string, sessionID *string, recordingID string, durationSeconds float64) error {
	query := `
		INSERT INTO recordings (id, client_id, session_id, duration_seconds, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, recordingID, clientID, sessionID, durationSeconds, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to add recording: %w", err)
	}

	return nil
}

// TotalDuration sums the donated seconds attributed to a client.
func (r *ProgressRepository) TotalDuration(ctx context.Context, clientID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(duration_seconds), 0)
		FROM recordings
		WHERE client_id = ?
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, clientID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum durations: %w", err)
	}

	return total, nil
}

// SetConsent stores a consent flag.
func (r *ProgressRepository) SetConsent(ctx context.Context, name string, granted bool) error {
	query := `
		INSERT INTO consent_flags (name, granted, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET granted = excluded.granted, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, name, granted, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set consent flag: %w", err)
	}

	return nil
}

// Consent reads a consent flag; an unset flag reads as not granted.
func (r *ProgressRepository) Consent(ctx context.Context, name string) (bool, error) {
	query := `SELECT granted FROM consent_flags WHERE name = ?`

	var granted bool
	err := r.db.QueryRowContext(ctx, query, name).Scan(&granted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get consent flag: %w", err)
	}

	return granted, nil
}
