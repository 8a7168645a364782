package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/repository"
	"github.com/google/uuid"
)

// Service manages the client/session identity hierarchy and its remote
// deletion operations. Remote deletion never touches local state; only the
// explicit Reset does.
type Service struct {
	store   Store
	deleter Deleter
	logger  *slog.Logger

	mu      sync.Mutex
	client  *Client
	session *Session
}

// NewService creates an identity service.
func NewService(store Store, deleter Deleter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, deleter: deleter, logger: logger}
}

// EnsureClient returns the live client identity, creating it on first use.
func (s *Service) EnsureClient(ctx context.Context) (*Client, error) {
	s.mu.Lock()
	if s.client != nil {
		client := s.client
		s.mu.Unlock()
		return client, nil
	}
	s.mu.Unlock()

	client, err := s.store.Client(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading client identity: %w", err)
		}
		client = &Client{ID: uuid.NewString(), CreatedAt: time.Now()}
		if err := s.store.CreateClient(ctx, client); err != nil {
			return nil, fmt.Errorf("creating client identity: %w", err)
		}
		s.logger.Info("client identity created", "client_id", client.ID)
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	return client, nil
}

// BeginSession starts a donation sitting. Any previous session is ended
// first.
func (s *Service) BeginSession(ctx context.Context) (*Session, error) {
	client, err := s.EnsureClient(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.EndSession(ctx); err != nil && !errors.Is(err, ErrNoSession) {
		return nil, err
	}

	sess := &Session{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		StartedAt: time.Now(),
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	s.logger.Info("session started", "session_id", sess.ID)
	return sess, nil
}

// EndSession closes the active session, if any.
func (s *Service) EndSession(ctx context.Context) error {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()

	if sess == nil {
		return ErrNoSession
	}
	if err := s.store.EndSession(ctx, sess.ID); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}

// CurrentSession returns the active session, or nil.
func (s *Service) CurrentSession() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Reset atomically wipes all local state and installs a fresh client
// identity. The old identifier is unrecoverable afterwards; there is no
// server-side reverse lookup from the new identity to the old.
func (s *Service) Reset(ctx context.Context) (*Client, error) {
	client := &Client{ID: uuid.NewString(), CreatedAt: time.Now()}
	if err := s.store.Reset(ctx, client); err != nil {
		return nil, fmt.Errorf("resetting local state: %w", err)
	}

	s.mu.Lock()
	s.client = client
	s.session = nil
	s.mu.Unlock()

	s.logger.Info("local state reset", "client_id", client.ID)
	return client, nil
}

// DeleteClient removes every remote recording under the live client.
func (s *Service) DeleteClient(ctx context.Context) error {
	client, err := s.requireClient()
	if err != nil {
		return err
	}
	if err := s.deleter.DeleteClient(ctx, client.ID); err != nil {
		return fmt.Errorf("deleting client data: %w", err)
	}
	return nil
}

// DeleteSession removes every remote recording under one session of the live
// client.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	client, err := s.requireClient()
	if err != nil {
		return err
	}
	if err := s.deleter.DeleteSession(ctx, client.ID, sessionID); err != nil {
		return fmt.Errorf("deleting session data: %w", err)
	}
	return nil
}

// DeleteRecording removes exactly one remote artifact.
func (s *Service) DeleteRecording(ctx context.Context, sessionID, recordingID string) error {
	client, err := s.requireClient()
	if err != nil {
		return err
	}
	if err := s.deleter.DeleteRecording(ctx, client.ID, sessionID, recordingID); err != nil {
		return fmt.Errorf("deleting recording: %w", err)
	}
	return nil
}

func (s *Service) requireClient() (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil, ErrNoClient
	}
	return s.client, nil
}
