package transport

// FakeSource is a test double that replays scripted lines. Each ReadLine
// consumes the next line; once exhausted it behaves like a quiet device,
// reporting timeout ticks forever.
type FakeSource struct {
	// Lines are returned in order, one per ReadLine call.
	Lines []string

	// ReadErr, if set, is returned by every ReadLine.
	ReadErr error

	// Closed records whether Close was called.
	Closed bool

	index int
}

var _ LineSource = (*FakeSource)(nil)

// NewFakeSource creates a FakeSource that replays lines.
func NewFakeSource(lines ...string) *FakeSource {
	return &FakeSource{Lines: lines}
}

// ReadLine returns the next scripted line, or a timeout tick once all lines
// are consumed.
func (f *FakeSource) ReadLine() (string, bool, error) {
	if f.ReadErr != nil {
		return "", false, f.ReadErr
	}
	if f.index >= len(f.Lines) {
		return "", false, nil
	}
	line := f.Lines[f.index]
	f.index++
	return line, true, nil
}

// Close marks the source as closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}
