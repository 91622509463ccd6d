package elog

import (
	"sync"
	"testing"

	"github.com/flowtrace/flowtrace-go/pkg/transport"
)

// testPacket is a minimal PacketInfo for tests.
type testPacket struct {
	id, copy uint64
	in, out  int
}

func (p testPacket) PacketID() uint64 { return p.id }
func (p testPacket) CopyID() uint64   { return p.copy }
func (p testPacket) IngressPort() int { return p.in }
func (p testPacket) EgressPort() int  { return p.out }

// testObject is a minimal Named for tests.
type testObject string

func (o testObject) Name() string { return string(o) }

func decodeAll(t *testing.T, rec *transport.Recorder) []Event {
	t.Helper()
	bufs := rec.Buffers()
	events := make([]Event, 0, len(bufs))
	for i, buf := range bufs {
		ev, err := DecodeEvent(buf)
		if err != nil {
			t.Fatalf("buffer %d: DecodeEvent failed: %v", i, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestZeroValueLoggerDiscards(t *testing.T) {
	// A never-initialized logger must degrade to silent discard, not fault.
	var l EventLogger
	pkt := testPacket{id: 1}

	l.PacketIn(pkt)
	l.ConditionEval(pkt, testObject("drop_check"), false)
	l.TableHit(pkt, testObject("ipv4_fwd"), 42)
	l.ConfigChange()
}

func TestNilTransportDiscards(t *testing.T) {
	l := New(nil, 3)
	l.PacketIn(testPacket{id: 1})
	l.ConfigChange()
}

func TestEachKindPublishesOnce(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 7)
	pkt := testPacket{id: 100, copy: 0, in: 1, out: 2}

	l.PacketIn(pkt)
	l.PacketOut(pkt)
	l.ParserStart(pkt, testObject("parser"))
	l.ParserDone(pkt, testObject("parser"))
	l.ParserExtract(pkt, 3)
	l.DeparserStart(pkt, testObject("deparser"))
	l.DeparserDone(pkt, testObject("deparser"))
	l.DeparserEmit(pkt, 3)
	l.ChecksumUpdate(pkt, testObject("cksum16"))
	l.PipelineStart(pkt, testObject("ingress"))
	l.PipelineDone(pkt, testObject("ingress"))
	l.ConditionEval(pkt, testObject("node_2"), true)
	l.TableHit(pkt, testObject("ipv4_fwd"), 42)
	l.TableMiss(pkt, testObject("ipv4_fwd"))
	l.ActionExecute(pkt, testObject("set_egress_port"), map[string]any{"port": 3})
	l.ConfigChange()

	wantKinds := []Kind{
		KindPacketIn, KindPacketOut,
		KindParserStart, KindParserDone, KindParserExtract,
		KindDeparserStart, KindDeparserDone, KindDeparserEmit,
		KindChecksumUpdate,
		KindPipelineStart, KindPipelineDone,
		KindConditionEval, KindTableHit, KindTableMiss,
		KindActionExecute, KindConfigChange,
	}

	events := decodeAll(t, rec)
	if len(events) != len(wantKinds) {
		t.Fatalf("published %d events, want %d", len(events), len(wantKinds))
	}
	for i, ev := range events {
		if ev.Kind != wantKinds[i] {
			t.Errorf("event %d: kind = %v, want %v", i, ev.Kind, wantKinds[i])
		}
		if ev.DeviceID != 7 {
			t.Errorf("event %d: device = %d, want 7", i, ev.DeviceID)
		}
		if wantKinds[i] == KindConfigChange {
			if ev.Packet != nil {
				t.Errorf("event %d: packet = %+v, want nil", i, ev.Packet)
			}
			continue
		}
		if ev.Packet == nil || ev.Packet.ID != 100 {
			t.Errorf("event %d: packet = %+v, want ID 100", i, ev.Packet)
		}
	}
}

func TestTableHitScenario(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 7)

	l.TableHit(testPacket{id: 55}, testObject("ipv4_fwd"), 42)

	events := decodeAll(t, rec)
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != KindTableHit {
		t.Errorf("Kind: got %v, want %v", ev.Kind, KindTableHit)
	}
	if ev.DeviceID != 7 {
		t.Errorf("DeviceID: got %d, want 7", ev.DeviceID)
	}
	if ev.Table == nil {
		t.Fatal("Table is nil")
	}
	if ev.Table.Name != "ipv4_fwd" {
		t.Errorf("Table.Name: got %q, want %q", ev.Table.Name, "ipv4_fwd")
	}
	if ev.Table.Handle == nil || *ev.Table.Handle != 42 {
		t.Errorf("Table.Handle: got %v, want 42", ev.Table.Handle)
	}
}

func TestTableMissCarriesNoHandle(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 1)

	l.TableMiss(testPacket{id: 5}, testObject("acl"))

	events := decodeAll(t, rec)
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	if events[0].Table == nil || events[0].Table.Name != "acl" {
		t.Fatalf("Table: got %+v, want name %q", events[0].Table, "acl")
	}
	if events[0].Table.Handle != nil {
		t.Errorf("Table.Handle: got %v, want nil", *events[0].Table.Handle)
	}
}

func TestActionExecuteScenario(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 2)

	l.ActionExecute(testPacket{id: 9}, testObject("set_egress_port"), map[string]any{"port": 3})

	events := decodeAll(t, rec)
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Action == nil {
		t.Fatal("Action is nil")
	}
	if ev.Action.Name != "set_egress_port" {
		t.Errorf("Action.Name: got %q, want %q", ev.Action.Name, "set_egress_port")
	}
	params, ok := ev.Action.Params.(map[any]any)
	if !ok {
		t.Fatalf("Action.Params: got %T, want map", ev.Action.Params)
	}
	if params["port"] != uint64(3) {
		t.Errorf("Action.Params[port]: got %v, want 3", params["port"])
	}
}

func TestSingleGoroutineOrderPreserved(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 1)
	pkt := testPacket{id: 33}

	l.ParserStart(pkt, testObject("parser"))
	l.ParserExtract(pkt, 1)
	l.ParserExtract(pkt, 2)
	l.ParserDone(pkt, testObject("parser"))

	events := decodeAll(t, rec)
	want := []Kind{KindParserStart, KindParserExtract, KindParserExtract, KindParserDone}
	if len(events) != len(want) {
		t.Fatalf("recorded %d events, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev.Kind != want[i] {
			t.Errorf("event %d: kind = %v, want %v", i, ev.Kind, want[i])
		}
	}
	if events[1].Header == nil || events[1].Header.ID != 1 {
		t.Errorf("first extract header = %+v, want ID 1", events[1].Header)
	}
	if events[2].Header == nil || events[2].Header.ID != 2 {
		t.Errorf("second extract header = %+v, want ID 2", events[2].Header)
	}
}

func TestReinitSwapsPairAtomically(t *testing.T) {
	recA := transport.NewRecorder()
	recB := transport.NewRecorder()
	pkt := testPacket{id: 1}

	l := New(recA, 10)
	l.PacketIn(pkt)

	l.Init(recB, 20)
	l.PacketIn(pkt)
	l.PacketOut(pkt)

	eventsA := decodeAll(t, recA)
	if len(eventsA) != 1 {
		t.Fatalf("transport A recorded %d events, want 1", len(eventsA))
	}
	if eventsA[0].DeviceID != 10 {
		t.Errorf("transport A device = %d, want 10", eventsA[0].DeviceID)
	}

	eventsB := decodeAll(t, recB)
	if len(eventsB) != 2 {
		t.Fatalf("transport B recorded %d events, want 2", len(eventsB))
	}
	for i, ev := range eventsB {
		if ev.DeviceID != 20 {
			t.Errorf("transport B event %d: device = %d, want 20", i, ev.DeviceID)
		}
	}
}

func TestNilEntityDropsEvent(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 1)
	pkt := testPacket{id: 1}

	l.ParserStart(pkt, nil)
	l.ConditionEval(pkt, nil, true)
	l.TableHit(pkt, nil, 9)
	l.TableMiss(pkt, nil)
	l.ActionExecute(pkt, nil, nil)

	if rec.Len() != 0 {
		t.Errorf("recorded %d events, want 0", rec.Len())
	}
}

func TestConcurrentLogging(t *testing.T) {
	rec := transport.NewRecorder()
	l := New(rec, 1)

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			pkt := testPacket{id: id}
			for i := 0; i < perGoroutine; i++ {
				l.TableHit(pkt, testObject("ipv4_fwd"), uint32(i))
			}
		}(uint64(g))
	}
	wg.Wait()

	if rec.Len() != goroutines*perGoroutine {
		t.Fatalf("recorded %d events, want %d", rec.Len(), goroutines*perGoroutine)
	}
	// Per-goroutine order must survive the interleaving.
	next := make(map[uint64]uint32)
	for _, ev := range decodeAll(t, rec) {
		if ev.Packet == nil || ev.Table == nil || ev.Table.Handle == nil {
			t.Fatal("incomplete event recorded")
		}
		want := next[ev.Packet.ID]
		if *ev.Table.Handle != want {
			t.Fatalf("packet %d: handle = %d, want %d", ev.Packet.ID, *ev.Table.Handle, want)
		}
		next[ev.Packet.ID] = want + 1
	}
}
