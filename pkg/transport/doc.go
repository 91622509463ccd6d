// Package transport provides best-effort sinks for encoded trace events.
//
// A Transport accepts opaque event buffers produced by the elog encoder and
// attempts to deliver them to whoever is listening. Delivery is at most once:
// a nil error from Send means the buffer was accepted, not that any
// subscriber received it. Implementations must never block the caller for an
// unbounded time; dropping messages under load is normal and expected.
//
// Available implementations:
//   - Dummy: discards everything, always succeeds (the default before a
//     real transport is installed)
//   - NATS: publishes to a NATS subject for external subscribers
//   - File: appends buffers to a file for offline analysis
//   - Stdout: prints hex-encoded buffers for quick debugging
//   - Multi: fans out to several transports
//   - Recorder: captures buffers in memory, for tests and harnesses
package transport
