// Package history keeps an in-memory ring buffer of recent anger samples so
// the HUD can show how worked up the sentinel has been lately. Nothing is
// persisted; the buffer lives and dies with the process.
package history

import "time"

// Sample is one recorded anger reading.
type Sample struct {
	Anger int
	Time  time.Time
}

// Buffer is a fixed-capacity ring of anger samples with a running peak.
type Buffer struct {
	samples []Sample
	cap     int
	peak    int
}

// NewBuffer returns a ring buffer holding at most capacity samples.
// Capacities below one are floored to one so Record can always store.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		samples: make([]Sample, 0, capacity),
		cap:     capacity,
	}
}

// Record appends a sample, evicting the oldest once full.
func (b *Buffer) Record(anger int, t time.Time) {
	s := Sample{Anger: anger, Time: t}
	if len(b.samples) >= b.cap {
		copy(b.samples, b.samples[1:])
		b.samples[len(b.samples)-1] = s
	} else {
		b.samples = append(b.samples, s)
	}
	if anger > b.peak {
		b.peak = anger
	}
}

// Len returns the number of stored samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Peak returns the highest anger seen since startup (not just in the window).
func (b *Buffer) Peak() int { return b.peak }

// LastN returns up to n of the most recent samples, oldest first.
func (b *Buffer) LastN(n int) []Sample {
	if n <= 0 || len(b.samples) == 0 {
		return nil
	}
	start := len(b.samples) - n
	if start < 0 {
		start = 0
	}
	out := make([]Sample, len(b.samples[start:]))
	copy(out, b.samples[start:])
	return out
}
