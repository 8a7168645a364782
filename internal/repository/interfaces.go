package repository

import "context"

// IdentityRepository lives in the identity package to avoid an import cycle:
// the identity service depends on this package's sentinel errors.

// ProgressRepository persists recording attribution and consent flags.
type ProgressRepository interface {
	AddRecording(ctx context.Context, clientID string, sessionID *string, recordingID string, durationSeconds float64) error
	TotalDuration(ctx context.Context, clientID string) (float64, error)
	SetConsent(ctx context.Context, name string, granted bool) error
	Consent(ctx context.Context, name string) (bool, error)
}
