package hud

import (
	"strings"
	"testing"
	"time"

	"github.com/luki/sentinel-hud/internal/device"
	"github.com/luki/sentinel-hud/internal/history"
	"github.com/luki/sentinel-hud/internal/telemetry"
)

func TestAngerBar(t *testing.T) {
	cases := []struct {
		anger, max, width int
		want              string
	}{
		{0, 3, 12, "[------------]"},
		{3, 3, 12, "[############]"},
		{99, 3, 12, "[############]"}, // clamps, no overflow
		{1, 3, 12, "[####--------]"},
		{2, 3, 12, "[########----]"},
		{1, 0, 12, "[------------]"}, // degenerate max
		{2, 3, 6, "[####--]"},
	}
	for _, c := range cases {
		got := AngerBar(c.anger, c.max, c.width)
		if got != c.want {
			t.Errorf("AngerBar(%d, %d, %d) = %q, want %q", c.anger, c.max, c.width, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{4500 * time.Millisecond, "4s"},
		{0, "0s"},
		{-2 * time.Second, "0s"}, // overdue clamps at display time
		{61 * time.Second, "61s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	tl := device.NewTimeline(now)

	ev, _ := telemetry.ParseLine("@STAT state=IDLE anger=1 patienceMs=5000")
	tl.Apply(ev, now)

	s := Build(tl, now.Add(2*time.Second), false)

	if s.StateLabel != "IDLE" || s.Style != device.StyleOk || s.Subtitle != "Still / waiting" {
		t.Errorf("state fields: %+v", s)
	}
	if !s.Placeholder || s.Message != "(no message)" {
		t.Errorf("expected placeholder message, got %q (placeholder=%v)", s.Message, s.Placeholder)
	}
	if s.AngerBar != "[####--------]" || s.AngerStyle != device.StyleWarn {
		t.Errorf("anger meter: bar=%q style=%s", s.AngerBar, s.AngerStyle)
	}
	if !s.HasCountdown || s.CountdownLabel != "Reward in" || s.CountdownValue != "3s" {
		t.Errorf("countdown: %+v", s)
	}
	if s.Raw != "" {
		t.Errorf("raw should be empty when disabled, got %q", s.Raw)
	}
}

func TestBuildSnapshotOverdueClampsToZero(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	tl := device.NewTimeline(now)

	ev, _ := telemetry.ParseLine("[ALERT] heads up")
	tl.Apply(ev, now)

	s := Build(tl, now.Add(12*time.Second), false)
	if !s.HasCountdown || s.CountdownValue != "0s" {
		t.Errorf("overdue countdown: got %q (has=%v), want 0s", s.CountdownValue, s.HasCountdown)
	}
	if s.CountdownLabel != "Next change in" {
		t.Errorf("countdown label: got %q", s.CountdownLabel)
	}
	if s.Message != "heads up" || s.Placeholder {
		t.Errorf("message: got %q (placeholder=%v)", s.Message, s.Placeholder)
	}
}

func TestBuildSnapshotLockedAndUnknown(t *testing.T) {
	now := time.Now()
	for _, state := range []string{"LOCKED", "NO_SUCH_STATE"} {
		tl := device.NewTimeline(now)
		ev, _ := telemetry.ParseLine("[" + state + "] x")
		tl.Apply(ev, now)

		s := Build(tl, now.Add(time.Minute), true)
		if s.HasCountdown {
			t.Errorf("%s: expected no countdown, got %q", state, s.CountdownValue)
		}
		if state == "NO_SUCH_STATE" && s.Style != device.StyleDefault {
			t.Errorf("unknown state style: got %s, want default", s.Style)
		}
		if s.Raw != "" {
			// Observe was never called, but showRaw is on.
			t.Errorf("raw: got %q, want empty", s.Raw)
		}
	}
}

func TestRenderAngerSparkline(t *testing.T) {
	base := time.Now()
	b := history.NewBuffer(32)
	for i := 0; i < 10; i++ {
		b.Record(i%4, base.Add(time.Duration(i)*time.Second))
	}

	out := RenderAngerSparkline(b.LastN(32), 20)
	if out == "" {
		t.Fatal("sparkline should not be empty")
	}
	if !strings.Contains(out, "╌") {
		t.Error("expected left padding for a part-filled window")
	}
	t.Logf("Sparkline: %s", out)

	if RenderAngerSparkline(nil, 0) != "" {
		t.Error("zero width should render nothing")
	}
}
