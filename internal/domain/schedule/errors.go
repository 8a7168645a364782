package schedule

import "errors"

var (
	// ErrNotLoaded indicates the engine has no schedule yet.
	ErrNotLoaded = errors.New("schedule not loaded")
	// ErrAlreadyLoaded indicates the schedule was fetched before.
	ErrAlreadyLoaded = errors.New("schedule already loaded")
	// ErrCompleted indicates the traversal has reached its terminal state.
	ErrCompleted = errors.New("schedule completed")
)
