// Package telemetry decodes the sentinel's line-oriented serial output.
// The device emits two line shapes: structured "@STAT ..." snapshots and
// human-readable "[STATE] message" annotations. Anything else is noise.
package telemetry

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the two event variants.
type Kind int

const (
	// KindStat is a structured telemetry snapshot.
	KindStat Kind = iota
	// KindMessage is a human-readable annotation.
	KindMessage
)

// Event is a decoded telemetry line. State is the device's state word taken
// verbatim — unknown words are tolerated downstream, not rejected here.
// Anger and PatienceMs are only meaningful for KindStat; Text only for
// KindMessage. HasState is false for bracket lines with an empty state word.
type Event struct {
	Kind       Kind
	State      string
	HasState   bool
	Anger      int
	PatienceMs int
	Text       string
}

var statRe = regexp.MustCompile(`^@STAT\s+state=(\w+)\s+anger=(\d+)\s+patienceMs=(\d+)\s*$`)

// ParseLine decodes one trimmed line. It reports ok=false for lines matching
// neither shape; such lines are still worth keeping as diagnostic raw text,
// that is the caller's job. The "@STAT" pattern is tried first, so a line
// matches at most one variant.
func ParseLine(line string) (Event, bool) {
	if m := statRe.FindStringSubmatch(line); m != nil {
		anger, err := strconv.Atoi(m[2])
		if err != nil {
			return Event{}, false
		}
		patience, err := strconv.Atoi(m[3])
		if err != nil {
			return Event{}, false
		}
		return Event{
			Kind:       KindStat,
			State:      m[1],
			HasState:   true,
			Anger:      anger,
			PatienceMs: patience,
		}, true
	}

	return parseBracketLine(line)
}

// parseBracketLine handles "[STATE] message". The state word sits between the
// leading bracket and the first closing bracket; the rest is the message.
func parseBracketLine(line string) (Event, bool) {
	if !strings.HasPrefix(line, "[") {
		return Event{}, false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return Event{}, false
	}

	state := strings.TrimSpace(line[1:end])
	text := strings.TrimSpace(line[end+1:])

	return Event{
		Kind:     KindMessage,
		State:    state,
		HasState: state != "",
		Text:     text,
	}, true
}
