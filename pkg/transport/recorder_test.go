package transport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCapturesInOrder(t *testing.T) {
	rec := NewRecorder()

	require.NoError(t, rec.Send([]byte{0x01}))
	require.NoError(t, rec.Send([]byte{0x02}))
	require.NoError(t, rec.Send([]byte{0x03}))

	bufs := rec.Buffers()
	require.Len(t, bufs, 3)
	assert.Equal(t, []byte{0x01}, bufs[0])
	assert.Equal(t, []byte{0x02}, bufs[1])
	assert.Equal(t, []byte{0x03}, bufs[2])
	assert.Equal(t, 3, rec.Len())
}

func TestRecorderCopiesBuffers(t *testing.T) {
	rec := NewRecorder()

	buf := []byte{0x01, 0x02}
	require.NoError(t, rec.Send(buf))

	// Mutating the caller's buffer must not affect the capture.
	buf[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, rec.Buffers()[0])

	// Mutating a returned buffer must not affect later reads.
	rec.Buffers()[0][0] = 0xee
	assert.Equal(t, []byte{0x01, 0x02}, rec.Buffers()[0])
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()

	require.NoError(t, rec.Send([]byte{0x01}))
	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	assert.Empty(t, rec.Buffers())
}

func TestRecorderConcurrentSend(t *testing.T) {
	rec := NewRecorder()

	const goroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_ = rec.Send([]byte{byte(i)})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, rec.Len())
}
