package upload

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service runs the two-phase upload protocol. It carries no retry policy:
// the caller decides whether to re-run from Initiate (with a fresh ticket) or
// discard.
type Service struct {
	backend  Backend
	transfer Transferrer
	language string
	clock    func() time.Time
	logger   *slog.Logger
}

// NewService creates an upload service. language is the tag applied when a
// recording carries none. A nil clock defaults to time.Now.
func NewService(backend Backend, transfer Transferrer, language string, clock func() time.Time, logger *slog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		backend:  backend,
		transfer: transfer,
		language: language,
		clock:    clock,
		logger:   logger,
	}
}

// Upload requests an upload ticket and transfers the recording bytes to it.
// Any failure at either leg yields a Failed outcome; the recording buffer is
// never touched.
func (s *Service) Upload(ctx context.Context, rec Recording) Outcome {
	contentType := ContentTypeFor(rec.Filename)

	capturedAt := rec.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = s.clock()
	}

	req := InitiateRequest{
		Filename:    rec.Filename,
		ContentType: contentType,
		ClientID:    rec.ClientID,
		SessionID:   rec.SessionID,
		RecordingID: rec.RecordingID,
		Timestamp:   capturedAt.UTC().Format(time.RFC3339),
		Duration:    rec.Duration,
		Language:    s.language,
	}

	url, err := s.backend.InitiateUpload(ctx, req)
	if err != nil {
		s.logger.Warn("upload initiate failed", "recording_id", rec.RecordingID, "error", err)
		return Outcome{
			Phase: PhaseFailed,
			Err:   fmt.Errorf("initiating upload: %w", err),
		}
	}

	if err := s.transfer.Put(ctx, url, contentType, rec.Data); err != nil {
		s.logger.Warn("upload transfer failed", "recording_id", rec.RecordingID, "error", err)
		return Outcome{
			Phase:          PhaseFailed,
			TicketObtained: true,
			Err:            fmt.Errorf("transferring recording: %w", err),
		}
	}

	s.logger.Info("recording uploaded", "recording_id", rec.RecordingID, "bytes", len(rec.Data), "content_type", contentType)
	return Outcome{Phase: PhaseSucceeded, TicketObtained: true}
}
