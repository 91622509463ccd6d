//go:build !noelog

package elog

// Enabled reports whether event instrumentation is compiled in. It is a
// constant, so call sites guarded by it are removed entirely from builds
// made with the noelog tag, including evaluation of their arguments:
//
//	if elog.Enabled {
//		elog.TableHit(pkt, table, handle)
//	}
const Enabled = true

// PacketIn reports the event on the process-wide logger.
func PacketIn(pkt PacketInfo) { Get().PacketIn(pkt) }

// PacketOut reports the event on the process-wide logger.
func PacketOut(pkt PacketInfo) { Get().PacketOut(pkt) }

// ParserStart reports the event on the process-wide logger.
func ParserStart(pkt PacketInfo, parser Named) { Get().ParserStart(pkt, parser) }

// ParserDone reports the event on the process-wide logger.
func ParserDone(pkt PacketInfo, parser Named) { Get().ParserDone(pkt, parser) }

// ParserExtract reports the event on the process-wide logger.
func ParserExtract(pkt PacketInfo, header int) { Get().ParserExtract(pkt, header) }

// DeparserStart reports the event on the process-wide logger.
func DeparserStart(pkt PacketInfo, deparser Named) { Get().DeparserStart(pkt, deparser) }

// DeparserDone reports the event on the process-wide logger.
func DeparserDone(pkt PacketInfo, deparser Named) { Get().DeparserDone(pkt, deparser) }

// DeparserEmit reports the event on the process-wide logger.
func DeparserEmit(pkt PacketInfo, header int) { Get().DeparserEmit(pkt, header) }

// ChecksumUpdate reports the event on the process-wide logger.
func ChecksumUpdate(pkt PacketInfo, checksum Named) { Get().ChecksumUpdate(pkt, checksum) }

// PipelineStart reports the event on the process-wide logger.
func PipelineStart(pkt PacketInfo, pipeline Named) { Get().PipelineStart(pkt, pipeline) }

// PipelineDone reports the event on the process-wide logger.
func PipelineDone(pkt PacketInfo, pipeline Named) { Get().PipelineDone(pkt, pipeline) }

// ConditionEval reports the event on the process-wide logger.
func ConditionEval(pkt PacketInfo, cond Named, result bool) { Get().ConditionEval(pkt, cond, result) }

// TableHit reports the event on the process-wide logger.
func TableHit(pkt PacketInfo, table Named, handle uint32) { Get().TableHit(pkt, table, handle) }

// TableMiss reports the event on the process-wide logger.
func TableMiss(pkt PacketInfo, table Named) { Get().TableMiss(pkt, table) }

// ActionExecute reports the event on the process-wide logger.
func ActionExecute(pkt PacketInfo, action Named, params any) {
	Get().ActionExecute(pkt, action, params)
}

// ConfigChange reports the event on the process-wide logger.
func ConfigChange() { Get().ConfigChange() }
