package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/identity"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/repository"
)

// IdentityRepository implements repository.IdentityRepository for SQLite
type IdentityRepository struct {
	db *DB
}

// NewIdentityRepository creates a new IdentityRepository
func NewIdentityRepository(db *DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Client returns the live client identity.
func (r *IdentityRepository) Client(ctx context.Context) (*identity.Client, error) {
	query := `SELECT client_id, created_at FROM client_identity WHERE rowid = 1`

	var client identity.Client
	err := r.db.QueryRowContext(ctx, query).Scan(&client.ID, &client.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client identity: %w", err)
	}

	return &client, nil
}

// CreateClient installs the client identity. The schema pins the row so a
// second live client cannot exist.
func (r *IdentityRepository) CreateClient(ctx context.Context, client *identity.Client) error {
	query := `INSERT INTO client_identity (rowid, client_id, created_at) VALUES (1, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, client.ID, client.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create client identity: %w", err)
	}

	return nil
}

// CreateSession records the start of a donation sitting.
func (r *IdentityRepository) CreateSession(ctx context.Context, sess *identity.Session) error {
	query := `INSERT INTO sessions (id, client_id, started_at, ended_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, sess.ID, sess.ClientID, sess.StartedAt, sess.EndedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// EndSession marks a session ended.
func (r *IdentityRepository) EndSession(ctx context.Context, sessionID string) error {
	query := `UPDATE sessions SET ended_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, time.Now(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Reset wipes all local state and installs the new client identity in one
// transaction.
func (r *IdentityRepository) Reset(ctx context.Context, newClient *identity.Client) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM recordings`,
		`DELETE FROM sessions`,
		`DELETE FROM consent_flags`,
		`DELETE FROM client_identity`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear local state: %w", err)
		}
	}

	query := `INSERT INTO client_identity (rowid, client_id, created_at) VALUES (1, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, newClient.ID, newClient.CreatedAt); err != nil {
		return fmt.Errorf("failed to install new client identity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	return nil
}
