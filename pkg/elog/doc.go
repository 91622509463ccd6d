// Package elog signals significant packet events by publishing messages on a
// best-effort transport, typically NATS pub/sub. Other processes subscribe to
// the channel to monitor the activity of the switch, mostly for end-to-end
// testing of pipeline implementations. Depending on the transport, messages
// can be lost: drops happen when a subscriber is slower than the producer,
// and that is an accepted property of the channel.
//
// # Basic Usage
//
// Process setup installs a transport and device id once, before traffic:
//
//	t, _ := transport.NewNATS(nats.DefaultURL, "flowtrace.events")
//	elog.Init(t, deviceID)
//
// Pipeline code reports events through the package-level operations, guarded
// by the Enabled constant so that builds with the noelog tag pay nothing,
// not even argument evaluation:
//
//	if elog.Enabled {
//		elog.TableHit(pkt, table, handle)
//	}
//
// Before Init is called the process-wide logger is already usable: it is
// created on first access with a discarding transport, so early calls
// succeed and vanish. Pipeline entities are passed by the narrow Named and
// PacketInfo capabilities only; the facade never holds on to them past the
// call.
//
// # Wire Format
//
// Events are CBOR maps with integer keys, a closed protocol between this
// encoder and the known subscribers of the channel. The flowtrace-watch tool
// decodes a live subject or a capture file written by the file transport.
package elog
