package transport

import (
	"errors"
	"testing"
)

func TestLineBufferSplitsChunks(t *testing.T) {
	var lb lineBuffer

	lb.append([]byte("@STAT state=ID"))
	if _, ok := lb.next(); ok {
		t.Fatal("partial line should not be released")
	}

	lb.append([]byte("LE anger=0 patienceMs=5000\r\n[ALERT] up"))
	line, ok := lb.next()
	if !ok || line != "@STAT state=IDLE anger=0 patienceMs=5000" {
		t.Errorf("first line: got %q (ok=%v)", line, ok)
	}
	if _, ok := lb.next(); ok {
		t.Fatal("second line is still incomplete")
	}

	lb.append([]byte("\n"))
	line, ok = lb.next()
	if !ok || line != "[ALERT] up" {
		t.Errorf("second line: got %q (ok=%v)", line, ok)
	}
}

func TestLineBufferMultipleLinesInOneChunk(t *testing.T) {
	var lb lineBuffer
	lb.append([]byte("one\ntwo\nthree\n"))

	for _, want := range []string{"one", "two", "three"} {
		line, ok := lb.next()
		if !ok || line != want {
			t.Errorf("got %q (ok=%v), want %q", line, ok, want)
		}
	}
	if _, ok := lb.next(); ok {
		t.Error("buffer should be drained")
	}
}

func TestFakeSourceReplay(t *testing.T) {
	f := NewFakeSource("a", "b")

	for _, want := range []string{"a", "b"} {
		line, ok, err := f.ReadLine()
		if err != nil || !ok || line != want {
			t.Errorf("got (%q, %v, %v), want %q", line, ok, err, want)
		}
	}

	// Exhausted: behaves like a quiet device.
	if _, ok, err := f.ReadLine(); ok || err != nil {
		t.Errorf("exhausted fake should report a timeout tick, got ok=%v err=%v", ok, err)
	}

	if err := f.Close(); err != nil || !f.Closed {
		t.Errorf("close: err=%v closed=%v", err, f.Closed)
	}
}

func TestFakeSourceReadError(t *testing.T) {
	wantErr := errors.New("device unplugged")
	f := &FakeSource{ReadErr: wantErr}
	if _, _, err := f.ReadLine(); !errors.Is(err, wantErr) {
		t.Errorf("got err=%v, want %v", err, wantErr)
	}
}
