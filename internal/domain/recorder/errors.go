package recorder

import "errors"

var (
	// ErrAccessDenied indicates the user refused capture access.
	ErrAccessDenied = errors.New("capture access denied")
	// ErrNotSupported indicates the runtime has no capture capability.
	ErrNotSupported = errors.New("capture not supported")
	// ErrNotReady indicates the device is not initialized and granted.
	ErrNotReady = errors.New("recorder not ready")
	// ErrAlreadyRecording indicates a capture is actively running.
	ErrAlreadyRecording = errors.New("already recording")
	// ErrNotRecording indicates no capture is running.
	ErrNotRecording = errors.New("not recording")
	// ErrBufferHeld indicates a finalized take must be discarded first.
	ErrBufferHeld = errors.New("finalized recording must be discarded before a new take")
)
