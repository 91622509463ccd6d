package transport

import "sync"

// Recorder captures buffers in memory for later inspection. It is used by
// test harnesses that assert on the exact sequence of published events.
// Recorder is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	bufs [][]byte
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send stores a copy of the buffer.
func (r *Recorder) Send(buf []byte) error {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	r.mu.Lock()
	r.bufs = append(r.bufs, cp)
	r.mu.Unlock()
	return nil
}

// Close does nothing; captured buffers remain available.
func (r *Recorder) Close() error { return nil }

// Buffers returns a deep copy of all captured buffers in send order.
func (r *Recorder) Buffers() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, len(r.bufs))
	for i, b := range r.bufs {
		cp := make([]byte, len(b))
		copy(cp, b)
		out[i] = cp
	}
	return out
}

// Len returns the number of captured buffers.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bufs)
}

// Reset discards all captured buffers.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.bufs = nil
	r.mu.Unlock()
}

// Compile-time interface satisfaction check.
var _ Transport = (*Recorder)(nil)
