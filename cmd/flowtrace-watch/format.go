package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/flowtrace/flowtrace-go/pkg/elog"
)

// formatEvent renders one event as a human-readable line:
//
//	09:26:53.589793 dev=7 pkt=100.0 in=1 out=5 TABLE_HIT table=ipv4_fwd handle=42
func formatEvent(ev elog.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s dev=%d", ev.Timestamp.Format("15:04:05.000000"), ev.DeviceID)

	if ev.Packet != nil {
		fmt.Fprintf(&b, " pkt=%d.%d", ev.Packet.ID, ev.Packet.CopyID)
		if ev.Packet.IngressPort != 0 {
			fmt.Fprintf(&b, " in=%d", ev.Packet.IngressPort)
		}
		if ev.Packet.EgressPort != 0 {
			fmt.Fprintf(&b, " out=%d", ev.Packet.EgressPort)
		}
	}

	fmt.Fprintf(&b, " %s", ev.Kind)

	switch {
	case ev.Object != nil:
		fmt.Fprintf(&b, " object=%s", ev.Object.Name)
	case ev.Header != nil:
		fmt.Fprintf(&b, " header=%d", ev.Header.ID)
	case ev.Condition != nil:
		fmt.Fprintf(&b, " cond=%s result=%t", ev.Condition.Name, ev.Condition.Result)
	case ev.Table != nil:
		fmt.Fprintf(&b, " table=%s", ev.Table.Name)
		if ev.Table.Handle != nil {
			fmt.Fprintf(&b, " handle=%d", *ev.Table.Handle)
		}
	case ev.Action != nil:
		fmt.Fprintf(&b, " action=%s", ev.Action.Name)
		if ev.Action.Params != nil {
			fmt.Fprintf(&b, " params=%v", ev.Action.Params)
		}
	}

	return b.String()
}

// eventJSON renders one event as a JSONL line for machine consumption.
func eventJSON(ev elog.Event) ([]byte, error) {
	m := map[string]any{
		"time":   ev.Timestamp.Format(time.RFC3339Nano),
		"device": ev.DeviceID,
		"kind":   ev.Kind.String(),
	}

	if ev.Packet != nil {
		pkt := map[string]any{
			"id":      ev.Packet.ID,
			"copy_id": ev.Packet.CopyID,
		}
		if ev.Packet.IngressPort != 0 {
			pkt["ingress_port"] = ev.Packet.IngressPort
		}
		if ev.Packet.EgressPort != 0 {
			pkt["egress_port"] = ev.Packet.EgressPort
		}
		m["packet"] = pkt
	}

	switch {
	case ev.Object != nil:
		m["object"] = ev.Object.Name
	case ev.Header != nil:
		m["header"] = ev.Header.ID
	case ev.Condition != nil:
		m["condition"] = ev.Condition.Name
		m["result"] = ev.Condition.Result
	case ev.Table != nil:
		m["table"] = ev.Table.Name
		if ev.Table.Handle != nil {
			m["handle"] = *ev.Table.Handle
		}
	case ev.Action != nil:
		m["action"] = ev.Action.Name
		if ev.Action.Params != nil {
			m["params"] = fmt.Sprintf("%v", ev.Action.Params)
		}
	}

	return json.Marshal(m)
}
