// Command flowtrace-watch subscribes to a switch's event channel and prints
// the packet trace as it happens.
//
// Events are published by the elog facade over NATS pub/sub; this tool is
// one of the channel's known consumers. It can also replay a capture file
// written by the file transport.
//
// Usage:
//
//	flowtrace-watch [flags]
//
// Examples:
//
//	# Watch the live event stream
//	flowtrace-watch -url nats://localhost:4222 -subject flowtrace.events
//
//	# Only table lookups of device 7
//	flowtrace-watch -kind table_hit -device 7
//
//	# Follow a single packet through the pipeline
//	flowtrace-watch -packet 1042
//
//	# Replay a capture file as JSONL
//	flowtrace-watch -file switch.ftrace -json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/flowtrace/flowtrace-go/pkg/elog"
)

func main() {
	var (
		url      = flag.String("url", nats.DefaultURL, "NATS server URL")
		subject  = flag.String("subject", "flowtrace.events", "NATS subject to subscribe to")
		file     = flag.String("file", "", "replay a capture file instead of subscribing")
		jsonOut  = flag.Bool("json", false, "print events as JSONL instead of text")
		kindName = flag.String("kind", "", "only show events of this kind (e.g. table_hit)")
		device   = flag.Int64("device", -1, "only show events of this device id")
		packet   = flag.Int64("packet", -1, "only show events of this packet id")
	)
	flag.Parse()

	filter, err := buildFilter(*kindName, *device, *packet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowtrace-watch: %v\n", err)
		os.Exit(2)
	}

	if *file != "" {
		err = replayFile(*file, filter, *jsonOut)
	} else {
		err = watchLive(*url, *subject, filter, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowtrace-watch: %v\n", err)
		os.Exit(1)
	}
}

// buildFilter translates command line selectors into an event filter.
func buildFilter(kindName string, device, packet int64) (elog.Filter, error) {
	var filter elog.Filter
	if kindName != "" {
		kind, err := parseKind(kindName)
		if err != nil {
			return elog.Filter{}, err
		}
		filter.Kind = &kind
	}
	if device >= 0 {
		id := uint64(device)
		filter.DeviceID = &id
	}
	if packet >= 0 {
		id := uint64(packet)
		filter.PacketID = &id
	}
	return filter, nil
}

// replayFile prints all matching events from a capture file.
func replayFile(path string, filter elog.Filter, jsonOut bool) error {
	r, err := elog.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		ev, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := printEvent(ev, jsonOut); err != nil {
			return err
		}
	}
}

// watchLive subscribes to the event subject and prints matching events
// until interrupted.
func watchLive(url, subject string, filter elog.Filter, jsonOut bool) error {
	nc, err := nats.Connect(url, nats.Name("flowtrace-watch"))
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer nc.Close()

	sub, err := nc.SubscribeSync(subject)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	defer func() { _ = sub.Unsubscribe() }()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Fprintf(os.Stderr, "watching %s on %s\n", subject, url)
	for {
		select {
		case <-interrupt:
			return nil
		default:
		}

		msg, err := sub.NextMsg(250 * time.Millisecond)
		if err == nats.ErrTimeout {
			continue
		}
		if err != nil {
			return err
		}

		ev, err := elog.DecodeEvent(msg.Data)
		if err != nil {
			// A malformed message is a producer bug, not a reason to
			// stop watching.
			fmt.Fprintf(os.Stderr, "flowtrace-watch: undecodable event: %v\n", err)
			continue
		}
		if !filter.Matches(ev) {
			continue
		}
		if err := printEvent(ev, jsonOut); err != nil {
			return err
		}
	}
}

func printEvent(ev elog.Event, jsonOut bool) error {
	if jsonOut {
		line, err := eventJSON(ev)
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(line))
		return err
	}
	_, err := fmt.Println(formatEvent(ev))
	return err
}

// parseKind resolves a kind by its wire name, case-insensitively.
func parseKind(name string) (elog.Kind, error) {
	for k := elog.KindPacketIn; k <= elog.KindConfigChange; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	// Accept a raw numeric tag as well.
	if n, err := strconv.ParseUint(name, 10, 8); err == nil && elog.Kind(n).String() != "UNKNOWN" {
		return elog.Kind(n), nil
	}
	return 0, fmt.Errorf("unknown event kind %q", name)
}
