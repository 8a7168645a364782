package capture

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/recorder"
	"github.com/stretchr/testify/require"
)

func writeAudioFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.wav")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileDevice_EmptyPath(t *testing.T) {
	dev := NewFileDevice("")
	err := dev.RequestAccess(context.Background())
	require.ErrorIs(t, err, recorder.ErrNotSupported)
}

func TestFileDevice_MissingFile(t *testing.T) {
	dev := NewFileDevice(filepath.Join(t.TempDir(), "nope.wav"))
	err := dev.RequestAccess(context.Background())
	require.ErrorIs(t, err, recorder.ErrAccessDenied)
}

func TestFileDevice_DeliversChunksUntilEOF(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, chunkBytes*2+100)
	dev := NewFileDevice(writeAudioFile(t, data))
	require.NoError(t, dev.RequestAccess(context.Background()))

	var mu sync.Mutex
	var got []byte
	require.NoError(t, dev.Start(func(chunk []byte) {
		mu.Lock()
		got = append(got, chunk...)
		mu.Unlock()
	}))

	select {
	case <-dev.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("source never drained")
	}
	require.NoError(t, dev.Stop())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, data, got)
}

func TestFileDevice_ReArmsForSecondTake(t *testing.T) {
	data := []byte("take bytes")
	dev := NewFileDevice(writeAudioFile(t, data))
	require.NoError(t, dev.RequestAccess(context.Background()))

	for take := 0; take < 2; take++ {
		var mu sync.Mutex
		var got []byte
		require.NoError(t, dev.Start(func(chunk []byte) {
			mu.Lock()
			got = append(got, chunk...)
			mu.Unlock()
		}))

		select {
		case <-dev.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("source never drained")
		}
		require.NoError(t, dev.Stop())

		mu.Lock()
		require.Equal(t, data, got)
		mu.Unlock()
	}
}

func TestFileDevice_StartWhilePumping(t *testing.T) {
	blocked := make(chan struct{})
	dev := NewReaderDevice(func() (io.ReadCloser, error) {
		return io.NopCloser(blockingReader{unblock: blocked}), nil
	})
	require.NoError(t, dev.RequestAccess(context.Background()))
	require.NoError(t, dev.Start(func([]byte) {}))

	require.ErrorIs(t, dev.Start(func([]byte) {}), recorder.ErrAlreadyRecording)

	close(blocked)
	require.NoError(t, dev.Stop())
}

func TestFileDevice_PauseSkipsSource(t *testing.T) {
	reads := make(chan struct{}, 64)
	dev := NewReaderDevice(func() (io.ReadCloser, error) {
		return io.NopCloser(countingReader{reads: reads}), nil
	})
	require.NoError(t, dev.RequestAccess(context.Background()))
	require.NoError(t, dev.Start(func([]byte) {}))
	require.NoError(t, dev.Pause())

	// Give the pump time to notice the pause, then confirm the source goes
	// quiet.
	time.Sleep(3 * pausePollTime)
	drain(reads)
	time.Sleep(3 * pausePollTime)
	require.Empty(t, reads)

	require.NoError(t, dev.Resume())
	select {
	case <-reads:
	case <-time.After(2 * time.Second):
		t.Fatal("no reads after resume")
	}

	require.NoError(t, dev.Stop())
}

func TestFileDevice_StopIdempotent(t *testing.T) {
	dev := NewFileDevice(writeAudioFile(t, []byte("x")))
	require.NoError(t, dev.RequestAccess(context.Background()))
	require.NoError(t, dev.Start(func([]byte) {}))
	require.NoError(t, dev.Stop())
	require.NoError(t, dev.Stop())
}

func drain(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// blockingReader returns no data until unblocked, then EOF.
type blockingReader struct {
	unblock chan struct{}
}

func (r blockingReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

// countingReader signals each read and trickles single bytes.
type countingReader struct {
	reads chan struct{}
}

func (r countingReader) Read(p []byte) (int, error) {
	select {
	case r.reads <- struct{}{}:
	default:
	}
	time.Sleep(time.Millisecond)
	p[0] = 0x01
	return 1, nil
}
