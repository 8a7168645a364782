package capture

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/recorder"
)

const (
	chunkBytes    = 4096
	pausePollTime = 20 * time.Millisecond
)

// ReaderDevice implements recorder.Device over an io.ReadCloser audio source
// (a file or a pipe fed by an external capture tool). One device owns one
// source; only one pump runs at a time.
type ReaderDevice struct {
	open func() (io.ReadCloser, error)

	mu     sync.Mutex
	src    io.ReadCloser
	paused bool
	stop   chan struct{}
	done   chan struct{}
}

// NewFileDevice creates a device reading from a file path. An empty path
// means the runtime has no capture source at all.
func NewFileDevice(path string) *ReaderDevice {
	return &ReaderDevice{
		open: func() (io.ReadCloser, error) {
			if path == "" {
				return nil, recorder.ErrNotSupported
			}
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", recorder.ErrAccessDenied, err)
			}
			return f, nil
		},
	}
}

// NewReaderDevice creates a device over an arbitrary source opener.
func NewReaderDevice(open func() (io.ReadCloser, error)) *ReaderDevice {
	return &ReaderDevice{open: open}
}

// RequestAccess opens the source, mapping failures to the recorder's
// capability sentinels.
func (d *ReaderDevice) RequestAccess(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := d.open()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.src = src
	d.mu.Unlock()
	return nil
}

// Start launches the chunk pump.
func (d *ReaderDevice) Start(onChunk func([]byte)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stop != nil {
		return recorder.ErrAlreadyRecording
	}
	if d.src == nil {
		// Re-arm after a previous take closed the source.
		src, err := d.open()
		if err != nil {
			return err
		}
		d.src = src
	}

	d.paused = false
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.pump(d.src, onChunk, d.stop, d.done)
	return nil
}

// Pause suspends chunk delivery without closing the source.
func (d *ReaderDevice) Pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = true
	return nil
}

// Resume restarts chunk delivery.
func (d *ReaderDevice) Resume() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = false
	return nil
}

// Stop ends the pump and closes the source. Idempotent.
func (d *ReaderDevice) Stop() error {
	d.mu.Lock()
	stop, done, src := d.stop, d.done, d.src
	d.stop = nil
	d.src = nil
	d.mu.Unlock()

	if stop == nil {
		if src != nil {
			return src.Close()
		}
		return nil
	}

	close(stop)
	<-done
	return src.Close()
}

// Done reports when the source is exhausted; useful for batch sources that
// end on their own. Valid after Start.
func (d *ReaderDevice) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *ReaderDevice) pump(src io.Reader, onChunk func([]byte), stop, done chan struct{}) {
	defer close(done)

	buf := make([]byte, chunkBytes)
	for {
		select {
		case <-stop:
			return
		default:
		}

		d.mu.Lock()
		paused := d.paused
		d.mu.Unlock()
		if paused {
			// Leave the source untouched while paused.
			select {
			case <-stop:
				return
			case <-time.After(pausePollTime):
			}
			continue
		}

		n, err := src.Read(buf)
		if n > 0 {
			onChunk(append([]byte(nil), buf[:n]...))
		}
		if err != nil {
			// io.EOF ends a batch source; anything else means the
			// source was closed underneath us.
			return
		}
	}
}
