package elog

import "time"

// Event is the record published for every reported packet event.
// CBOR encoding uses integer keys for compactness. Exactly one of the
// payload pointers is set, matching the Kind; kinds whose payload is the
// packet context alone set none.
type Event struct {
	// Timestamp when the event was reported (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// DeviceID identifies the owning switch instance.
	DeviceID uint64 `cbor:"2,keyasint"`

	// Kind selects the event type and implies which payload is present.
	Kind Kind `cbor:"3,keyasint"`

	// Packet is the context of the packet being processed.
	// Nil for events not tied to a packet (KindConfigChange).
	Packet *PacketContext `cbor:"4,keyasint,omitempty"`

	// Object names the pipeline object involved (parser, deparser,
	// checksum, pipeline) for the corresponding start/done/update kinds.
	Object *ObjectData `cbor:"5,keyasint,omitempty"`

	// Header identifies the header extracted or emitted.
	Header *HeaderData `cbor:"6,keyasint,omitempty"`

	// Condition carries the conditional and its evaluation result.
	Condition *ConditionData `cbor:"7,keyasint,omitempty"`

	// Table carries the match table and, on a hit, the entry handle.
	Table *TableData `cbor:"8,keyasint,omitempty"`

	// Action carries the action and its runtime parameter data.
	Action *ActionData `cbor:"9,keyasint,omitempty"`
}

// Kind identifies the event type. Values are part of the wire protocol and
// must not be renumbered.
type Kind uint8

const (
	// KindPacketIn signals that a packet was received by the switch.
	KindPacketIn Kind = 0
	// KindPacketOut signals that a packet was transmitted by the switch.
	KindPacketOut Kind = 1
	// KindParserStart signals that a parser started processing a packet.
	KindParserStart Kind = 2
	// KindParserDone signals that a parser finished processing a packet.
	KindParserDone Kind = 3
	// KindParserExtract signals that a header was extracted from a packet.
	KindParserExtract Kind = 4
	// KindDeparserStart signals that a deparser started processing a packet.
	KindDeparserStart Kind = 5
	// KindDeparserDone signals that a deparser finished processing a packet.
	KindDeparserDone Kind = 6
	// KindDeparserEmit signals that a header was serialized into a packet.
	KindDeparserEmit Kind = 7
	// KindChecksumUpdate signals that a checksum was recomputed.
	KindChecksumUpdate Kind = 8
	// KindPipelineStart signals that a packet entered a pipeline.
	KindPipelineStart Kind = 9
	// KindPipelineDone signals that a packet left a pipeline.
	KindPipelineDone Kind = 10
	// KindConditionEval signals that a conditional was evaluated.
	KindConditionEval Kind = 11
	// KindTableHit signals that a table lookup matched an entry.
	KindTableHit Kind = 12
	// KindTableMiss signals that a table lookup matched no entry.
	KindTableMiss Kind = 13
	// KindActionExecute signals that an action was executed.
	KindActionExecute Kind = 14
	// KindConfigChange signals that the switch configuration was swapped.
	KindConfigChange Kind = 15
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPacketIn:
		return "PACKET_IN"
	case KindPacketOut:
		return "PACKET_OUT"
	case KindParserStart:
		return "PARSER_START"
	case KindParserDone:
		return "PARSER_DONE"
	case KindParserExtract:
		return "PARSER_EXTRACT"
	case KindDeparserStart:
		return "DEPARSER_START"
	case KindDeparserDone:
		return "DEPARSER_DONE"
	case KindDeparserEmit:
		return "DEPARSER_EMIT"
	case KindChecksumUpdate:
		return "CHECKSUM_UPDATE"
	case KindPipelineStart:
		return "PIPELINE_START"
	case KindPipelineDone:
		return "PIPELINE_DONE"
	case KindConditionEval:
		return "CONDITION_EVAL"
	case KindTableHit:
		return "TABLE_HIT"
	case KindTableMiss:
		return "TABLE_MISS"
	case KindActionExecute:
		return "ACTION_EXECUTE"
	case KindConfigChange:
		return "CONFIG_CHANGE"
	default:
		return "UNKNOWN"
	}
}

// PacketContext is the identifying information read from a packet at the
// moment of the call.
type PacketContext struct {
	// ID is the packet identifier, unique per received packet.
	ID uint64 `cbor:"1,keyasint"`

	// CopyID distinguishes copies made of the same packet (clones,
	// recirculation). Zero for the original.
	CopyID uint64 `cbor:"2,keyasint,omitempty"`

	// IngressPort is the port the packet was received on.
	IngressPort int `cbor:"3,keyasint,omitempty"`

	// EgressPort is the port the packet is destined to, if decided.
	EgressPort int `cbor:"4,keyasint,omitempty"`
}

// ObjectData names a pipeline object (parser, deparser, checksum, pipeline).
type ObjectData struct {
	// Name is the object's stable name from the pipeline configuration.
	Name string `cbor:"1,keyasint"`
}

// HeaderData identifies a header instance.
type HeaderData struct {
	// ID is the header identifier from the pipeline configuration.
	ID int `cbor:"1,keyasint"`
}

// ConditionData carries a conditional evaluation.
type ConditionData struct {
	// Name is the conditional's stable name.
	Name string `cbor:"1,keyasint"`

	// Result is the outcome of the evaluation.
	Result bool `cbor:"2,keyasint"`
}

// TableData carries a match table lookup outcome.
type TableData struct {
	// Name is the table's stable name.
	Name string `cbor:"1,keyasint"`

	// Handle is the matched entry handle. Set for hits, nil for misses.
	Handle *uint32 `cbor:"2,keyasint,omitempty"`
}

// ActionData carries an action execution.
type ActionData struct {
	// Name is the action's stable name.
	Name string `cbor:"1,keyasint"`

	// Params is the runtime parameter data the action was called with
	// (CBOR-compatible representation).
	Params any `cbor:"2,keyasint,omitempty"`
}
