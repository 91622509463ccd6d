package transport

import (
	"os"
	"sync"
)

// File appends encoded event buffers to a file. Buffers are written
// back to back; since each buffer is a self-delimiting CBOR item, the file
// can be read back as a stream with elog.NewReader.
// File is safe for concurrent use from multiple goroutines.
type File struct {
	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewFile creates a File transport writing to the specified path.
// If the file exists, new events are appended. The file is created with
// permissions 0644 if it doesn't exist.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &File{file: f}, nil
}

// Send appends the buffer to the file.
// Write errors are absorbed - tracing must not disrupt the pipeline.
func (t *File) Send(buf []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	_, _ = t.file.Write(buf)
	return nil
}

// Close closes the underlying file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Send calls are silently ignored.
func (t *File) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true
	return t.file.Close()
}

// Compile-time interface satisfaction check.
var _ Transport = (*File)(nil)
