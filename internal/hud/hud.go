// Package hud assembles the renderable snapshot of the sentinel's state.
// It owns no screen handling: the monitor package turns a Snapshot into
// styled terminal output, this package only decides what the HUD says.
package hud

import (
	"fmt"
	"strings"
	"time"

	"github.com/luki/sentinel-hud/internal/device"
)

// Snapshot is everything one HUD frame needs. All styling decisions are
// reduced to class names; the renderer picks the actual colors.
type Snapshot struct {
	StateLabel string
	Subtitle   string
	Style      device.StyleClass

	Message     string
	Placeholder bool // Message is the "(no message)" filler

	AngerBar   string
	Anger      int
	MaxAnger   int
	AngerStyle device.StyleClass

	PatienceLabel string

	CountdownLabel string
	CountdownValue string
	HasCountdown   bool

	Raw string // empty unless raw display is enabled
}

// Build produces the snapshot for one frame at the given instant.
func Build(tl *device.Timeline, now time.Time, showRaw bool) Snapshot {
	style, subtitle := device.Style(tl.State)

	s := Snapshot{
		StateLabel: tl.State,
		Subtitle:   subtitle,
		Style:      style,
		Message:    tl.LastMessage,
		AngerBar:   AngerBar(tl.Anger, device.MaxAnger, 12),
		Anger:      tl.Anger,
		MaxAnger:   device.MaxAnger,
		AngerStyle: angerStyle(tl.Anger),
		PatienceLabel: fmt.Sprintf("Patience knob: %s to earn REWARD in IDLE",
			FormatDuration(time.Duration(tl.PatienceMs)*time.Millisecond)),
	}

	if s.Message == "" {
		s.Message = "(no message)"
		s.Placeholder = true
	}

	if remaining, ok := tl.Remaining(now); ok {
		s.HasCountdown = true
		s.CountdownValue = FormatDuration(remaining)
		if tl.State == device.StateIdle {
			s.CountdownLabel = "Reward in"
		} else {
			s.CountdownLabel = "Next change in"
		}
	}

	if showRaw {
		s.Raw = tl.LastRaw
	}

	return s
}

// angerStyle picks the meter color class from the anger value alone: calm is
// green, anything partial is yellow, pegged is red.
func angerStyle(anger int) device.StyleClass {
	switch {
	case anger == 0:
		return device.StyleOk
	case anger < device.MaxAnger:
		return device.StyleWarn
	default:
		return device.StyleCrit
	}
}

// AngerBar renders a discretized meter like "[####--------]". The filled
// share is anger/max scaled to width, rounded, and clamped to [0, width] so
// out-of-range readings never overflow the bar.
func AngerBar(anger, max, width int) string {
	if max <= 0 {
		return "[" + strings.Repeat("-", width) + "]"
	}
	filled := int(float64(anger)/float64(max)*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// FormatDuration renders a countdown as whole seconds, flooring negative
// (overdue) values to "0s" for display.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%ds", int(d/time.Second))
}
