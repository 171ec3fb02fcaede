// Package transport provides the line-oriented byte stream from the sentinel.
// The real implementation speaks to a serial port; the fake replays scripted
// lines for tests. Both sit behind the LineSource interface so the drive loop
// never knows which one it is talking to.
package transport

// LineSource delivers device output one line at a time with a bounded wait.
//
// ReadLine blocks for at most the source's read timeout. It returns ok=false
// with a nil error when no complete line arrived in that window — the caller
// treats this as a tick and carries on. A non-nil error is a real transport
// failure and is fatal upstream.
type LineSource interface {
	ReadLine() (line string, ok bool, err error)

	// Close releases the underlying stream.
	Close() error
}
