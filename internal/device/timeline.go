package device

import (
	"time"

	"github.com/luki/sentinel-hud/internal/telemetry"
)

// Timeline is the local model of the sentinel's state: the current mode, the
// instant it was first observed (the anchor all countdowns are computed
// against), and the last known telemetry values. It is owned by the single
// drive loop and mutated only through Apply/Observe; time is always passed in
// so the transition rules stay testable.
type Timeline struct {
	State          string
	StateStartedAt time.Time

	// Last known telemetry, retained across state changes until the next
	// @STAT line overwrites it.
	Anger      int
	PatienceMs int

	LastMessage string
	LastRaw     string
}

// NewTimeline returns a Timeline anchored at now, in the idle state.
func NewTimeline(now time.Time) *Timeline {
	return &Timeline{State: StateIdle, StateStartedAt: now}
}

// Observe records a raw input line for diagnostic display. It never affects
// state; unrecognized lines still show up under -show-raw.
func (t *Timeline) Observe(raw string) {
	t.LastRaw = raw
}

// Apply folds one decoded event into the timeline and reports whether a state
// transition occurred. The anchor resets exactly when the event's state
// differs from the current one — same-state lines, however many, never
// perturb it, so elapsed time is monotonic within a state run. A message
// event without a state word is discarded.
func (t *Timeline) Apply(ev telemetry.Event, now time.Time) bool {
	switch ev.Kind {
	case telemetry.KindStat:
		t.Anger = ev.Anger
		t.PatienceMs = ev.PatienceMs
		return t.enter(ev.State, now)

	case telemetry.KindMessage:
		if !ev.HasState {
			return false
		}
		changed := t.enter(ev.State, now)
		t.LastMessage = ev.Text
		return changed
	}
	return false
}

// enter moves to state, resetting the anchor only on an actual change.
func (t *Timeline) enter(state string, now time.Time) bool {
	if state == t.State {
		return false
	}
	t.State = state
	t.StateStartedAt = now
	return true
}

// Elapsed returns how long the current state has been held as of now.
func (t *Timeline) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.StateStartedAt)
}

// Remaining returns the countdown for the current state as of now.
func (t *Timeline) Remaining(now time.Time) (time.Duration, bool) {
	patience := time.Duration(t.PatienceMs) * time.Millisecond
	return Countdown(t.State, t.Elapsed(now), patience)
}
