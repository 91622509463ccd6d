package transport

import "errors"

// Multi fans out buffers to multiple transports.
// Useful when you want both a live NATS feed and a file capture
// simultaneously. Individual Send failures are absorbed; delivery to each
// sink is best effort like everywhere else.
type Multi struct {
	transports []Transport
}

// NewMulti creates a Multi that sends buffers to all provided transports.
func NewMulti(transports ...Transport) *Multi {
	return &Multi{transports: transports}
}

// Send forwards the buffer to all configured transports in order.
func (m *Multi) Send(buf []byte) error {
	for _, t := range m.transports {
		_ = t.Send(buf)
	}
	return nil
}

// Close closes all configured transports and returns the combined errors.
func (m *Multi) Close() error {
	var errs []error
	for _, t := range m.transports {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}

// Compile-time interface satisfaction check.
var _ Transport = (*Multi)(nil)
