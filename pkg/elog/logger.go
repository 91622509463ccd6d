package elog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/flowtrace/flowtrace-go/pkg/transport"
)

// EventLogger builds and publishes an Event for each reported packet event.
// Every operation is fire and forget: it never blocks beyond the transport's
// own bounded Send, never returns an error, and has no side effect on the
// packet or the pipeline objects it reads.
//
// The transport and device id are held as a single atomically swapped pair,
// so a re-initialization concurrent with in-flight calls can never be
// observed as a mismatched combination. A zero-value EventLogger discards
// everything.
type EventLogger struct {
	state atomic.Pointer[loggerState]
}

// loggerState is immutable after construction; Init replaces it wholesale.
type loggerState struct {
	transport transport.Transport
	deviceID  uint64
}

// New creates an EventLogger publishing through t, tagging events with
// deviceID. A nil transport discards everything.
func New(t transport.Transport, deviceID uint64) *EventLogger {
	l := &EventLogger{}
	l.Init(t, deviceID)
	return l
}

// Init installs the transport and device id as the new active pair,
// replacing whatever was active. It is intended to be called once, near
// process startup, before steady-state traffic begins. The swap itself is
// atomic: concurrent logging calls observe either the old pair or the new
// pair, never a mix.
func (l *EventLogger) Init(t transport.Transport, deviceID uint64) {
	if t == nil {
		t = transport.Dummy{}
	}
	l.state.Store(&loggerState{transport: t, deviceID: deviceID})
}

// publish stamps, encodes and hands off the event. All failures are
// absorbed here; the pipeline never observes them.
func (l *EventLogger) publish(ev Event) {
	st := l.state.Load()
	if st == nil {
		return
	}
	ev.Timestamp = time.Now()
	ev.DeviceID = st.deviceID
	buf, err := EncodeEvent(ev)
	if err != nil {
		return
	}
	_ = st.transport.Send(buf)
}

// packetContext reads the packet's identifying information.
func packetContext(pkt PacketInfo) *PacketContext {
	if pkt == nil {
		return nil
	}
	return &PacketContext{
		ID:          pkt.PacketID(),
		CopyID:      pkt.CopyID(),
		IngressPort: pkt.IngressPort(),
		EgressPort:  pkt.EgressPort(),
	}
}

// PacketIn signals that a packet was received by the switch.
// The ingress port is part of the packet context.
func (l *EventLogger) PacketIn(pkt PacketInfo) {
	l.publish(Event{Kind: KindPacketIn, Packet: packetContext(pkt)})
}

// PacketOut signals that a packet was transmitted by the switch.
func (l *EventLogger) PacketOut(pkt PacketInfo) {
	l.publish(Event{Kind: KindPacketOut, Packet: packetContext(pkt)})
}

// ParserStart signals that parser started processing pkt.
func (l *EventLogger) ParserStart(pkt PacketInfo, parser Named) {
	l.object(KindParserStart, pkt, parser)
}

// ParserDone signals that parser finished processing pkt.
func (l *EventLogger) ParserDone(pkt PacketInfo, parser Named) {
	l.object(KindParserDone, pkt, parser)
}

// ParserExtract signals that the header identified by header was extracted
// from pkt.
func (l *EventLogger) ParserExtract(pkt PacketInfo, header int) {
	l.publish(Event{
		Kind:   KindParserExtract,
		Packet: packetContext(pkt),
		Header: &HeaderData{ID: header},
	})
}

// DeparserStart signals that deparser started processing pkt.
func (l *EventLogger) DeparserStart(pkt PacketInfo, deparser Named) {
	l.object(KindDeparserStart, pkt, deparser)
}

// DeparserDone signals that deparser finished processing pkt.
func (l *EventLogger) DeparserDone(pkt PacketInfo, deparser Named) {
	l.object(KindDeparserDone, pkt, deparser)
}

// DeparserEmit signals that the header identified by header was serialized
// back into pkt.
func (l *EventLogger) DeparserEmit(pkt PacketInfo, header int) {
	l.publish(Event{
		Kind:   KindDeparserEmit,
		Packet: packetContext(pkt),
		Header: &HeaderData{ID: header},
	})
}

// ChecksumUpdate signals that checksum was recomputed for pkt.
func (l *EventLogger) ChecksumUpdate(pkt PacketInfo, checksum Named) {
	l.object(KindChecksumUpdate, pkt, checksum)
}

// PipelineStart signals that pkt entered pipeline.
func (l *EventLogger) PipelineStart(pkt PacketInfo, pipeline Named) {
	l.object(KindPipelineStart, pkt, pipeline)
}

// PipelineDone signals that pkt left pipeline.
func (l *EventLogger) PipelineDone(pkt PacketInfo, pipeline Named) {
	l.object(KindPipelineDone, pkt, pipeline)
}

// ConditionEval signals that cond was evaluated for pkt with the given
// result.
func (l *EventLogger) ConditionEval(pkt PacketInfo, cond Named, result bool) {
	if cond == nil {
		return
	}
	l.publish(Event{
		Kind:      KindConditionEval,
		Packet:    packetContext(pkt),
		Condition: &ConditionData{Name: cond.Name(), Result: result},
	})
}

// TableHit signals that a lookup in table matched the entry identified by
// handle.
func (l *EventLogger) TableHit(pkt PacketInfo, table Named, handle uint32) {
	if table == nil {
		return
	}
	h := handle
	l.publish(Event{
		Kind:   KindTableHit,
		Packet: packetContext(pkt),
		Table:  &TableData{Name: table.Name(), Handle: &h},
	})
}

// TableMiss signals that a lookup in table matched no entry.
func (l *EventLogger) TableMiss(pkt PacketInfo, table Named) {
	if table == nil {
		return
	}
	l.publish(Event{
		Kind:   KindTableMiss,
		Packet: packetContext(pkt),
		Table:  &TableData{Name: table.Name()},
	})
}

// ActionExecute signals that action was executed for pkt with the given
// runtime parameter data. params must be CBOR-encodable; the event is
// dropped otherwise.
func (l *EventLogger) ActionExecute(pkt PacketInfo, action Named, params any) {
	if action == nil {
		return
	}
	l.publish(Event{
		Kind:   KindActionExecute,
		Packet: packetContext(pkt),
		Action: &ActionData{Name: action.Name(), Params: params},
	})
}

// ConfigChange signals that the switch configuration was swapped.
// It is the one event not tied to a packet.
func (l *EventLogger) ConfigChange() {
	l.publish(Event{Kind: KindConfigChange})
}

// object publishes a kind whose payload is a single named pipeline object.
// A nil object means the identifying information is unavailable; the event
// is dropped, per the facade's contract.
func (l *EventLogger) object(kind Kind, pkt PacketInfo, obj Named) {
	if obj == nil {
		return
	}
	l.publish(Event{
		Kind:   kind,
		Packet: packetContext(pkt),
		Object: &ObjectData{Name: obj.Name()},
	})
}

var (
	globalOnce sync.Once
	global     *EventLogger
)

// Get returns the process-wide EventLogger, creating it on first access
// with a discarding transport so it is usable before Init.
func Get() *EventLogger {
	globalOnce.Do(func() {
		global = New(transport.Dummy{}, 0)
	})
	return global
}

// Init installs the transport and device id on the process-wide logger.
// Call once during process setup, before steady-state traffic. The facade
// takes ownership of the transport.
func Init(t transport.Transport, deviceID uint64) {
	Get().Init(t, deviceID)
}
