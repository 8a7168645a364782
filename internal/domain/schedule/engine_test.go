package schedule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/schedule"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func donationSchedule() *schedule.Schedule {
	return &schedule.Schedule{
		ID:          "sched1",
		Description: "test schedule",
		Items: []schedule.Item{
			{ItemID: "i1", Kind: schedule.KindPrompt, ItemType: schedule.TypeText, Description: "introduce yourself"},
			{ItemID: "i2", Kind: schedule.KindMedia, ItemType: schedule.TypeAudio, IsRecording: true},
			{ItemID: "i3", Kind: schedule.KindMedia, ItemType: schedule.TypeVideo, URL: strPtr("https://example.com/v.mp4")},
			{ItemID: "i4", Kind: schedule.KindMedia, ItemType: schedule.TypeAudio, IsRecording: true},
		},
	}
}

func loadedEngine(t *testing.T, ctx context.Context, progress *mocks.ProgressRepository) *schedule.Engine {
	t.Helper()

	source := &mocks.ScheduleSource{}
	source.On("LoadSchedule", ctx, "sched1").Return(donationSchedule(), nil)

	engine := schedule.NewEngine(source, progress, nil)
	require.NoError(t, engine.Load(ctx, "sched1"))
	return engine
}

func TestEngine_Load_PropagatesError(t *testing.T) {
	ctx := context.Background()

	source := &mocks.ScheduleSource{}
	source.On("LoadSchedule", ctx, "missing").Return(nil, errors.New("status 404"))

	engine := schedule.NewEngine(source, &mocks.ProgressRepository{}, nil)
	err := engine.Load(ctx, "missing")
	require.Error(t, err)
	require.Nil(t, engine.CurrentElement())
}

func TestEngine_Load_Once(t *testing.T) {
	ctx := context.Background()
	engine := loadedEngine(t, ctx, &mocks.ProgressRepository{})

	require.ErrorIs(t, engine.Load(ctx, "sched1"), schedule.ErrAlreadyLoaded)
}

func TestEngine_AdvanceBounds(t *testing.T) {
	ctx := context.Background()
	engine := loadedEngine(t, ctx, &mocks.ProgressRepository{})

	for i := 0; i < 4; i++ {
		require.False(t, engine.Completed(), "completed early at step %d", i)
		require.NotNil(t, engine.CurrentElement())
		require.NoError(t, engine.Advance())
	}

	require.True(t, engine.Completed())
	require.Nil(t, engine.CurrentElement())
	require.ErrorIs(t, engine.Advance(), schedule.ErrCompleted)
}

func TestEngine_Advance_BeforeLoad(t *testing.T) {
	engine := schedule.NewEngine(&mocks.ScheduleSource{}, &mocks.ProgressRepository{}, nil)
	require.ErrorIs(t, engine.Advance(), schedule.ErrNotLoaded)
}

func TestEngine_RecordingOrdinals(t *testing.T) {
	ctx := context.Background()
	engine := loadedEngine(t, ctx, &mocks.ProgressRepository{})

	wantOrdinals := []int{0, 1, 0, 2}
	for i, want := range wantOrdinals {
		el := engine.CurrentElement()
		require.NotNil(t, el)
		require.Equal(t, i, el.Index)
		require.Equal(t, want, el.RecordingOrdinal)

		progress, ok := engine.RecordingProgress(el)
		if want == 0 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.Equal(t, want, progress.ItemNumber)
			require.Equal(t, 2, progress.TotalCount)
		}

		require.NoError(t, engine.Advance())
	}
}

func TestEngine_DurationAggregation(t *testing.T) {
	ctx := context.Background()
	sessionID := "sess1"

	progress := &mocks.ProgressRepository{}
	progress.On("TotalDuration", ctx, "client1").Return(float64(0), nil)
	progress.On("AddRecording", ctx, "client1", &sessionID, "rec1", 12.0).Return(nil)
	progress.On("AddRecording", ctx, "client1", &sessionID, "rec2", 8.0).Return(nil)

	engine := loadedEngine(t, ctx, progress)
	require.NoError(t, engine.Bind(ctx, "client1", &sessionID))
	require.Equal(t, 0.0, engine.TotalRecordingDuration())

	require.NoError(t, engine.AddRecording(ctx, "rec1", 12))
	require.NoError(t, engine.AddRecording(ctx, "rec2", 8))
	require.Equal(t, 20.0, engine.TotalRecordingDuration())
}

func TestEngine_Bind_RestoresPersistedTotal(t *testing.T) {
	ctx := context.Background()

	progress := &mocks.ProgressRepository{}
	progress.On("TotalDuration", ctx, "client1").Return(35.5, nil)

	engine := loadedEngine(t, ctx, progress)
	require.NoError(t, engine.Bind(ctx, "client1", nil))
	require.Equal(t, 35.5, engine.TotalRecordingDuration())
}

func TestEngine_AddRecording_Unbound(t *testing.T) {
	ctx := context.Background()
	engine := loadedEngine(t, ctx, &mocks.ProgressRepository{})

	require.ErrorIs(t, engine.AddRecording(ctx, "rec1", 5), schedule.ErrNotLoaded)
}

func TestEngine_Reset(t *testing.T) {
	ctx := context.Background()

	progress := &mocks.ProgressRepository{}
	progress.On("TotalDuration", ctx, "client1").Return(float64(0), nil)
	progress.On("AddRecording", ctx, "client1", (*string)(nil), "rec1", 12.0).Return(nil)

	source := &mocks.ScheduleSource{}
	source.On("LoadSchedule", ctx, "sched1").Return(donationSchedule(), nil)

	engine := schedule.NewEngine(source, progress, nil)
	require.NoError(t, engine.Load(ctx, "sched1"))
	require.NoError(t, engine.Bind(ctx, "client1", nil))
	require.NoError(t, engine.AddRecording(ctx, "rec1", 12))
	require.NoError(t, engine.Advance())

	engine.Reset()

	require.Nil(t, engine.CurrentElement())
	require.Equal(t, 0.0, engine.TotalRecordingDuration())
	require.ErrorIs(t, engine.Advance(), schedule.ErrNotLoaded)

	// A fresh load is required, and allowed, after reset.
	require.NoError(t, engine.Load(ctx, "sched1"))
	require.NotNil(t, engine.CurrentElement())
}
