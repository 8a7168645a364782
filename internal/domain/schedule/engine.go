package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Engine walks the schedule in order, tracks which items expect a recording,
// and aggregates the total donated duration for the bound client.
type Engine struct {
	source   Source
	progress ProgressStore
	logger   *slog.Logger

	mu        sync.Mutex
	sched     *Schedule
	cursor    int
	completed bool
	// ordinals[i] is the 1-based recording ordinal of item i, 0 for others.
	ordinals       []int
	recordingTotal int

	clientID  string
	sessionID *string
	totalSecs float64
}

// NewEngine creates a playlist engine.
func NewEngine(source Source, progress ProgressStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{source: source, progress: progress, logger: logger}
}

// Load fetches the schedule once and positions the cursor on the first item.
// Fetch failures propagate to the caller unmasked.
func (e *Engine) Load(ctx context.Context, scheduleID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sched != nil {
		return ErrAlreadyLoaded
	}

	sched, err := e.source.LoadSchedule(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("loading schedule %s: %w", scheduleID, err)
	}

	ordinals := make([]int, len(sched.Items))
	total := 0
	for i, item := range sched.Items {
		if item.IsRecording {
			total++
			ordinals[i] = total
		}
	}

	e.sched = sched
	e.ordinals = ordinals
	e.recordingTotal = total
	e.cursor = 0
	e.completed = len(sched.Items) == 0

	e.logger.Info("schedule loaded", "schedule_id", scheduleID, "items", len(sched.Items), "recording_items", total)
	return nil
}

// Bind attributes subsequent recordings to a client (and optional session)
// and restores the persisted duration total.
func (e *Engine) Bind(ctx context.Context, clientID string, sessionID *string) error {
	total, err := e.progress.TotalDuration(ctx, clientID)
	if err != nil {
		return fmt.Errorf("loading duration total: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.clientID = clientID
	e.sessionID = sessionID
	e.totalSecs = total
	return nil
}

// CurrentElement returns the cursor element, or nil before load and after
// completion.
func (e *Engine) CurrentElement() *DisplayedElement {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sched == nil || e.completed {
		return nil
	}
	return &DisplayedElement{
		Item:             e.sched.Items[e.cursor],
		Index:            e.cursor,
		RecordingOrdinal: e.ordinals[e.cursor],
	}
}

// Advance moves the cursor to the next item. Moving past the last item marks
// the traversal completed; advancing a completed traversal is an error.
func (e *Engine) Advance() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sched == nil {
		return ErrNotLoaded
	}
	if e.completed {
		return ErrCompleted
	}

	e.cursor++
	if e.cursor >= len(e.sched.Items) {
		e.completed = true
		e.logger.Info("schedule completed", "items", len(e.sched.Items))
	}
	return nil
}

// Completed reports whether the traversal reached its terminal state.
func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed
}

// RecordingProgress returns the "item X of Y" pair for a recording element.
func (e *Engine) RecordingProgress(el *DisplayedElement) (Progress, bool) {
	if el == nil || el.RecordingOrdinal == 0 {
		return Progress{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return Progress{ItemNumber: el.RecordingOrdinal, TotalCount: e.recordingTotal}, true
}

// AddRecording attributes one successfully uploaded recording to the bound
// client and grows the aggregate duration.
func (e *Engine) AddRecording(ctx context.Context, recordingID string, durationSeconds float64) error {
	e.mu.Lock()
	clientID, sessionID := e.clientID, e.sessionID
	e.mu.Unlock()

	if clientID == "" {
		return ErrNotLoaded
	}
	if err := e.progress.AddRecording(ctx, clientID, sessionID, recordingID, durationSeconds); err != nil {
		return fmt.Errorf("recording duration: %w", err)
	}

	e.mu.Lock()
	e.totalSecs += durationSeconds
	e.mu.Unlock()
	return nil
}

// TotalRecordingDuration returns the donated total in seconds.
func (e *Engine) TotalRecordingDuration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalSecs
}

// Reset returns the engine to its pre-load state: cursor, aggregate duration
// and identity binding are dropped, and a fresh Load is required before reuse.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sched = nil
	e.ordinals = nil
	e.recordingTotal = 0
	e.cursor = 0
	e.completed = false
	e.clientID = ""
	e.sessionID = nil
	e.totalSecs = 0
}
