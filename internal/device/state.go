// Package device models the sentinel's reported state: which mode it is in,
// since when, and how long until the next expected transition. The state word
// is kept as an open string tag — firmware revisions grow new modes, and an
// unknown word must degrade to a default style rather than be rejected.
package device

import "time"

// Device-side timing constants. These mirror the firmware's own transition
// timers; patience is the one duration the device reports dynamically.
const (
	MaxAnger     = 3
	AlertTimeout = 10 * time.Second
	AngryCalm    = 15 * time.Second
	Cooldown     = 10 * time.Second
	RewardTime   = 8 * time.Second
)

// StateIdle is the state a fresh Timeline starts in.
const StateIdle = "IDLE"

// StyleClass names a rendering style for a state. The HUD maps classes to
// concrete colors; the core only deals in class names.
type StyleClass string

const (
	StyleOk      StyleClass = "ok"
	StyleWarn    StyleClass = "warn"
	StyleCrit    StyleClass = "crit"
	StyleReward  StyleClass = "reward"
	StyleLockout StyleClass = "lockout"
	StyleDefault StyleClass = "default"
)

// stateInfo is the per-state display metadata for the known modes.
var stateInfo = map[string]struct {
	style    StyleClass
	subtitle string
}{
	"IDLE":     {StyleOk, "Still / waiting"},
	"ALERT":    {StyleWarn, "Warning"},
	"ANGRY":    {StyleCrit, "Escalating"},
	"COOLDOWN": {StyleWarn, "Cooling down"},
	"REWARD":   {StyleReward, "Reward"},
	"LOCKED":   {StyleLockout, "Lockout"},
}

// Style returns the style class and subtitle for a state word. Unknown words
// get the default class and an empty subtitle.
func Style(state string) (StyleClass, string) {
	if info, ok := stateInfo[state]; ok {
		return info.style, info.subtitle
	}
	return StyleDefault, ""
}

// Countdown returns the time remaining before the expected automatic
// transition out of state, given the elapsed time in it. LOCKED and unknown
// states have no timer, reported as ok=false.
//
// The result is deliberately not floored at zero: a negative value means the
// deadline has passed, which callers may care about. Display code clamps.
func Countdown(state string, elapsed, patience time.Duration) (time.Duration, bool) {
	switch state {
	case "IDLE":
		return patience - elapsed, true
	case "ALERT":
		return AlertTimeout - elapsed, true
	case "ANGRY":
		return AngryCalm - elapsed, true
	case "COOLDOWN":
		return Cooldown - elapsed, true
	case "REWARD":
		return RewardTime - elapsed, true
	}
	return 0, false
}
