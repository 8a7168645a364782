package schedule

import "context"

// Source provides the campaign schedule. It is read-only and fetched once
// per donation run.
type Source interface {
	LoadSchedule(ctx context.Context, scheduleID string) (*Schedule, error)
}

// ProgressStore persists recording attribution for the current client.
type ProgressStore interface {
	AddRecording(ctx context.Context, clientID string, sessionID *string, recordingID string, durationSeconds float64) error
	TotalDuration(ctx context.Context, clientID string) (float64, error)
}
