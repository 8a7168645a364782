package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Recorder owns the capture device for one donation run and exposes the
// capture state machine:
//
//	NotInitialized -> WaitingForAccess -> {Recording | AccessDenied | NotSupported}
//
// A paused capture still reports Recording. Stop finalizes the buffer; a new
// take for the same slot requires Discard first.
type Recorder struct {
	device Device
	clock  func() time.Time
	logger *slog.Logger

	mu          sync.Mutex
	status      Status
	granted     bool
	paused      bool
	live        bytes.Buffer
	finalized   []byte
	finalDur    time.Duration
	accumulated time.Duration
	resumedAt   time.Time

	subs    map[int]func(Status, time.Duration)
	nextSub int
}

// New creates a recorder around an injected capture device. A nil clock
// defaults to time.Now.
func New(device Device, clock func() time.Time, logger *slog.Logger) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		device: device,
		clock:  clock,
		logger: logger,
		status: StatusNotInitialized,
		subs:   make(map[int]func(Status, time.Duration)),
	}
}

// Initialize requests device access. It is idempotent: any call past
// NotInitialized is a no-op. Refusal and missing capability are terminal for
// the session; they are surfaced as statuses, never retried here.
func (r *Recorder) Initialize(ctx context.Context) error {
	r.mu.Lock()
	if r.status != StatusNotInitialized {
		r.mu.Unlock()
		return nil
	}
	r.setStatusLocked(StatusWaitingForAccess)
	r.mu.Unlock()

	err := r.device.RequestAccess(ctx)

	r.mu.Lock()
	switch {
	case err == nil:
		r.granted = true
		r.mu.Unlock()
		return nil
	case errors.Is(err, ErrNotSupported):
		r.setStatusLocked(StatusNotSupported)
	default:
		r.setStatusLocked(StatusAccessDenied)
	}
	r.mu.Unlock()

	r.logger.Warn("capture access not granted", "error", err)
	return fmt.Errorf("requesting capture access: %w", err)
}

// StartOrResume starts a fresh capture, or resumes a paused one preserving
// the already buffered audio. Callers gate it on IsInitialized and Status.
func (r *Recorder) StartOrResume() error {
	r.mu.Lock()
	if !r.granted {
		status := r.status
		r.mu.Unlock()
		r.logger.Debug("start ignored", "status", status)
		return ErrNotReady
	}
	if r.finalized != nil {
		r.mu.Unlock()
		return ErrBufferHeld
	}
	if r.status == StatusRecording && !r.paused {
		r.mu.Unlock()
		return ErrAlreadyRecording
	}
	resuming := r.paused
	r.mu.Unlock()

	if resuming {
		if err := r.device.Resume(); err != nil {
			return fmt.Errorf("resuming capture: %w", err)
		}
		r.mu.Lock()
		r.paused = false
		r.resumedAt = r.clock()
		r.mu.Unlock()
		return nil
	}

	if err := r.device.Start(r.onChunk); err != nil {
		return fmt.Errorf("starting capture: %w", err)
	}
	r.mu.Lock()
	r.live.Reset()
	r.accumulated = 0
	r.resumedAt = r.clock()
	r.setStatusLocked(StatusRecording)
	r.mu.Unlock()
	return nil
}

// Pause suspends capture without finalizing. The recorder keeps reporting
// Recording; the duration counter freezes.
func (r *Recorder) Pause() error {
	r.mu.Lock()
	if r.status != StatusRecording || r.paused {
		r.mu.Unlock()
		return ErrNotRecording
	}
	r.accumulated += r.clock().Sub(r.resumedAt)
	r.paused = true
	r.mu.Unlock()

	if err := r.device.Pause(); err != nil {
		return fmt.Errorf("pausing capture: %w", err)
	}
	return nil
}

// Stop finalizes the capture buffer, stops the device stream and returns the
// elapsed duration. Valid only while Recording.
func (r *Recorder) Stop() (time.Duration, error) {
	r.mu.Lock()
	if r.status != StatusRecording {
		r.mu.Unlock()
		return 0, ErrNotRecording
	}
	if !r.paused {
		r.accumulated += r.clock().Sub(r.resumedAt)
	}
	r.paused = false
	r.mu.Unlock()

	if err := r.device.Stop(); err != nil {
		r.logger.Warn("stopping capture device", "error", err)
	}

	r.mu.Lock()
	r.finalized = append([]byte(nil), r.live.Bytes()...)
	r.live.Reset()
	r.finalDur = r.accumulated
	dur := r.finalDur
	r.setStatusLocked(StatusWaitingForAccess)
	r.mu.Unlock()

	r.logger.Info("recording stopped", "duration", dur, "bytes", len(r.finalized))
	return dur, nil
}

// Discard drops a finalized take so a fresh capture can start.
func (r *Recorder) Discard() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == StatusRecording {
		return ErrAlreadyRecording
	}
	r.finalized = nil
	r.finalDur = 0
	r.accumulated = 0
	r.live.Reset()
	return nil
}

// Status returns the current public status.
func (r *Recorder) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// IsInitialized reports whether device access has been granted.
func (r *Recorder) IsInitialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.granted
}

// Duration returns the live elapsed time while recording, or the finalized
// duration after a stop.
func (r *Recorder) Duration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == StatusRecording {
		if r.paused {
			return r.accumulated
		}
		return r.accumulated + r.clock().Sub(r.resumedAt)
	}
	return r.finalDur
}

// Buffer returns the finalized audio, or nil while no take is held.
func (r *Recorder) Buffer() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finalized
}

// Subscribe registers a status observer. The returned function removes it.
func (r *Recorder) Subscribe(fn func(Status, time.Duration)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Recorder) onChunk(chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusRecording || r.paused {
		return
	}
	r.live.Write(chunk)
}

// setStatusLocked mutates status and schedules observer callbacks. Callers
// hold r.mu; callbacks run without it.
func (r *Recorder) setStatusLocked(status Status) {
	r.status = status
	dur := r.accumulated
	if status == StatusWaitingForAccess && r.finalDur > 0 {
		dur = r.finalDur
	}
	subs := make([]func(Status, time.Duration), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	go func() {
		for _, fn := range subs {
			fn(status, dur)
		}
	}()
}
