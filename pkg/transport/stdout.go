package transport

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
)

// Stdout prints one hex-encoded buffer per line. It exists for quick
// debugging of a switch without attaching a subscriber.
// Stdout is safe for concurrent use.
type Stdout struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdout creates a Stdout transport writing to w.
// A nil writer defaults to os.Stdout.
func NewStdout(w io.Writer) *Stdout {
	if w == nil {
		w = os.Stdout
	}
	return &Stdout{w: w}
}

// Send writes the hex encoding of the buffer followed by a newline.
// Write errors are absorbed.
func (t *Stdout) Send(buf []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, hex.EncodeToString(buf))
	return nil
}

// Close does nothing; the writer is not owned by the transport.
func (t *Stdout) Close() error { return nil }

// Compile-time interface satisfaction check.
var _ Transport = (*Stdout)(nil)
