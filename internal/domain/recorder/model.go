package recorder

import "context"

// Status is the externally observable recorder state. A stopped capture is
// not a status of its own: it is observable through Buffer becoming non-nil.
type Status string

const (
	StatusNotInitialized   Status = "NotInitialized"
	StatusWaitingForAccess Status = "WaitingForAccess"
	StatusRecording        Status = "Recording"
	StatusAccessDenied     Status = "AccessDenied"
	StatusNotSupported     Status = "NotSupported"
)

// Device is the capture capability handed to the recorder. Exactly one device
// exists per donation run; at most one capture stream is active at a time.
//
// Start must deliver captured chunks asynchronously through onChunk and must
// not invoke it after Stop returns.
type Device interface {
	RequestAccess(ctx context.Context) error
	Start(onChunk func([]byte)) error
	Pause() error
	Resume() error
	Stop() error
}
