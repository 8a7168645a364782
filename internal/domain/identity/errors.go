package identity

import "errors"

var (
	// ErrNoClient indicates no client identity has been established yet.
	ErrNoClient = errors.New("no client identity")
	// ErrNoSession indicates no donation session is active.
	ErrNoSession = errors.New("no active session")
)
