package device

import (
	"testing"
	"time"
)

func TestCountdownFormulas(t *testing.T) {
	cases := []struct {
		state    string
		elapsed  time.Duration
		patience time.Duration
		want     time.Duration
		hasTimer bool
	}{
		{"IDLE", 0, 5 * time.Second, 5 * time.Second, true},
		{"IDLE", 2 * time.Second, 5 * time.Second, 3 * time.Second, true},
		{"ALERT", 12 * time.Second, 0, -2 * time.Second, true}, // overdue stays negative
		{"ALERT", 0, 99 * time.Second, AlertTimeout, true},     // patience ignored
		{"ANGRY", 5 * time.Second, 0, 10 * time.Second, true},
		{"COOLDOWN", 0, 0, Cooldown, true},
		{"REWARD", 8 * time.Second, 0, 0, true},
		{"LOCKED", 0, 5 * time.Second, 0, false},
		{"LOCKED", time.Hour, 0, 0, false},
		{"MYSTERY", 0, 5 * time.Second, 0, false},
	}
	for _, c := range cases {
		got, ok := Countdown(c.state, c.elapsed, c.patience)
		if ok != c.hasTimer {
			t.Errorf("Countdown(%s, %s): hasTimer=%v, want %v", c.state, c.elapsed, ok, c.hasTimer)
			continue
		}
		if ok && got != c.want {
			t.Errorf("Countdown(%s, %s, %s) = %s, want %s", c.state, c.elapsed, c.patience, got, c.want)
		}
	}
}

func TestStyleLookup(t *testing.T) {
	cases := []struct {
		state    string
		style    StyleClass
		subtitle string
	}{
		{"IDLE", StyleOk, "Still / waiting"},
		{"ALERT", StyleWarn, "Warning"},
		{"ANGRY", StyleCrit, "Escalating"},
		{"COOLDOWN", StyleWarn, "Cooling down"},
		{"REWARD", StyleReward, "Reward"},
		{"LOCKED", StyleLockout, "Lockout"},
		{"BOGUS", StyleDefault, ""},
	}
	for _, c := range cases {
		style, subtitle := Style(c.state)
		if style != c.style || subtitle != c.subtitle {
			t.Errorf("Style(%q) = (%s, %q), want (%s, %q)",
				c.state, style, subtitle, c.style, c.subtitle)
		}
	}
}
