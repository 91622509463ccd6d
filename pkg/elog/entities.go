package elog

// Named is the capability pipeline objects expose to the event logger.
// Parsers, deparsers, checksums, pipelines, conditionals, match tables and
// actions all satisfy it. The logger depends only on this capability, never
// on concrete pipeline types, and reads the name at the moment of the call
// without retaining the object.
type Named interface {
	// Name returns the object's stable name from the pipeline
	// configuration.
	Name() string
}

// PacketInfo is the capability packets expose to the event logger.
// All methods are reads; the logger never mutates the packet.
type PacketInfo interface {
	// PacketID returns the identifier assigned when the packet was
	// received, unique per received packet.
	PacketID() uint64

	// CopyID distinguishes copies made of the same packet. The original
	// is copy zero.
	CopyID() uint64

	// IngressPort returns the port the packet was received on.
	IngressPort() int

	// EgressPort returns the port the packet is destined to, or zero if
	// not yet decided.
	EgressPort() int
}
