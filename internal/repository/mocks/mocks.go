package mocks

import (
	"context"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/identity"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/schedule"
	"github.com/stretchr/testify/mock"
)

// IdentityRepository is a mock for repository.IdentityRepository.
type IdentityRepository struct {
	mock.Mock
}

func (m *IdentityRepository) Client(ctx context.Context) (*identity.Client, error) {
	args := m.Called(ctx)
	if client, ok := args.Get(0).(*identity.Client); ok {
		return client, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IdentityRepository) CreateClient(ctx context.Context, client *identity.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *IdentityRepository) CreateSession(ctx context.Context, sess *identity.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *IdentityRepository) EndSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *IdentityRepository) Reset(ctx context.Context, newClient *identity.Client) error {
	args := m.Called(ctx, newClient)
	return args.Error(0)
}

// ProgressRepository is a mock for repository.ProgressRepository.
type ProgressRepository struct {
	mock.Mock
}

func (m *ProgressRepository) AddRecording(ctx context.Context, clientID string, sessionID *string, recordingID string, durationSeconds float64) error {
	args := m.Called(ctx, clientID, sessionID, recordingID, durationSeconds)
	return args.Error(0)
}

func (m *ProgressRepository) TotalDuration(ctx context.Context, clientID string) (float64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ProgressRepository) SetConsent(ctx context.Context, name string, granted bool) error {
	args := m.Called(ctx, name, granted)
	return args.Error(0)
}

func (m *ProgressRepository) Consent(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// ScheduleSource is a mock for schedule.Source.
type ScheduleSource struct {
	mock.Mock
}

func (m *ScheduleSource) LoadSchedule(ctx context.Context, scheduleID string) (*schedule.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if sched, ok := args.Get(0).(*schedule.Schedule); ok {
		return sched, args.Error(1)
	}
	return nil, args.Error(1)
}

// Deleter is a mock for identity.Deleter.
type Deleter struct {
	mock.Mock
}

func (m *Deleter) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *Deleter) DeleteSession(ctx context.Context, clientID, sessionID string) error {
	args := m.Called(ctx, clientID, sessionID)
	return args.Error(0)
}

func (m *Deleter) DeleteRecording(ctx context.Context, clientID, sessionID, recordingID string) error {
	args := m.Called(ctx, clientID, sessionID, recordingID)
	return args.Error(0)
}
