package transport

import (
	"bytes"
	"strings"
)

// lineBuffer accumulates raw serial bytes and splits out complete lines.
// Serial reads hand back arbitrary chunks; a line is only released once its
// terminating '\n' has arrived. Not safe for concurrent use — the single
// drive loop is the only caller.
type lineBuffer struct {
	buf []byte
}

// append adds a chunk of raw bytes.
func (b *lineBuffer) append(p []byte) {
	b.buf = append(b.buf, p...)
}

// next pops the oldest complete line, trimmed of whitespace and any '\r'.
// Returns ok=false when no full line is buffered yet.
func (b *lineBuffer) next() (string, bool) {
	i := bytes.IndexByte(b.buf, '\n')
	if i < 0 {
		return "", false
	}
	line := strings.TrimSpace(string(b.buf[:i]))
	b.buf = b.buf[i+1:]
	return line, true
}
