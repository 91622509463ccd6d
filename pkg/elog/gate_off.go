//go:build noelog

package elog

// Enabled reports whether event instrumentation is compiled in.
// This build was made with the noelog tag: guarded call sites are removed
// entirely, and the operations below are empty shells for any unguarded
// caller.
const Enabled = false

// PacketIn does nothing in noelog builds.
func PacketIn(PacketInfo) {}

// PacketOut does nothing in noelog builds.
func PacketOut(PacketInfo) {}

// ParserStart does nothing in noelog builds.
func ParserStart(PacketInfo, Named) {}

// ParserDone does nothing in noelog builds.
func ParserDone(PacketInfo, Named) {}

// ParserExtract does nothing in noelog builds.
func ParserExtract(PacketInfo, int) {}

// DeparserStart does nothing in noelog builds.
func DeparserStart(PacketInfo, Named) {}

// DeparserDone does nothing in noelog builds.
func DeparserDone(PacketInfo, Named) {}

// DeparserEmit does nothing in noelog builds.
func DeparserEmit(PacketInfo, int) {}

// ChecksumUpdate does nothing in noelog builds.
func ChecksumUpdate(PacketInfo, Named) {}

// PipelineStart does nothing in noelog builds.
func PipelineStart(PacketInfo, Named) {}

// PipelineDone does nothing in noelog builds.
func PipelineDone(PacketInfo, Named) {}

// ConditionEval does nothing in noelog builds.
func ConditionEval(PacketInfo, Named, bool) {}

// TableHit does nothing in noelog builds.
func TableHit(PacketInfo, Named, uint32) {}

// TableMiss does nothing in noelog builds.
func TableMiss(PacketInfo, Named) {}

// ActionExecute does nothing in noelog builds.
func ActionExecute(PacketInfo, Named, any) {}

// ConfigChange does nothing in noelog builds.
func ConfigChange() {}
