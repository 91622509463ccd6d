package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// NATS publishes event buffers to a NATS subject using core (non-JetStream)
// pub/sub. Core NATS gives exactly the semantics the event channel wants:
// at-most-once delivery, no producer back-pressure, and drops when a
// subscriber falls behind. Publish writes to the client's outbound buffer
// and returns without waiting for the server.
type NATS struct {
	conn    *nats.Conn
	subject string
	owned   bool
}

// NewNATS connects to the NATS server at url and returns a transport
// publishing to the given subject. The connection reconnects indefinitely
// in the background; events produced while disconnected are dropped once
// the client's reconnect buffer fills, which is acceptable for this channel.
func NewNATS(url, subject string) (*NATS, error) {
	opts := []nats.Option{
		nats.Name("flowtrace-" + uuid.NewString()),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.Timeout(5 * time.Second),
		nats.PingInterval(20 * time.Second),
		nats.MaxPingsOutstanding(3),
	}
	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &NATS{conn: conn, subject: subject, owned: true}, nil
}

// NewNATSConn wraps an existing connection. The caller retains ownership of
// the connection; Close will not close it.
func NewNATSConn(conn *nats.Conn, subject string) *NATS {
	return &NATS{conn: conn, subject: subject}
}

// Send publishes the buffer to the configured subject.
func (t *NATS) Send(buf []byte) error {
	return t.conn.Publish(t.subject, buf)
}

// Close drains and closes the connection if the transport owns it.
func (t *NATS) Close() error {
	if !t.owned {
		return nil
	}
	return t.conn.Drain()
}

// Compile-time interface satisfaction check.
var _ Transport = (*NATS)(nil)
