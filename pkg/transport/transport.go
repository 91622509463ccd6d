package transport

// Transport is the sink consumed by the event logger facade.
// Implementations must be safe for concurrent use by multiple goroutines
// once installed.
type Transport interface {
	// Send attempts best-effort delivery of an encoded event buffer.
	// It must not block for an unbounded time; a slow or absent consumer
	// must not stall the caller. Dropping the buffer is a normal outcome.
	Send(buf []byte) error

	// Close releases any resources held by the transport.
	// After Close, Send calls are silently ignored.
	Close() error
}

// Dummy discards all buffers and always reports success.
// Use when tracing is configured off; it is the default transport installed
// before initialization. Dummy is safe for concurrent use and usable as a
// zero value.
type Dummy struct{}

// Send discards the buffer.
func (Dummy) Send([]byte) error { return nil }

// Close does nothing.
func (Dummy) Close() error { return nil }

// Compile-time interface satisfaction check.
var _ Transport = Dummy{}
