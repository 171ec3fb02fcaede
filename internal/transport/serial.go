package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Compile-time interface check.
var _ LineSource = (*SerialSource)(nil)

const (
	// readTimeout bounds a single ReadLine wait; it doubles as the drive
	// loop's tick when the device goes quiet.
	readTimeout = 200 * time.Millisecond

	// settleDelay covers the device reset triggered by opening the port.
	// Everything buffered during it is stale and gets flushed.
	settleDelay = 1200 * time.Millisecond
)

// Config identifies the serial endpoint.
type Config struct {
	Port string // e.g. /dev/ttyACM0 or /dev/ttyUSB0
	Baud int
}

// SerialSource reads newline-terminated telemetry from a serial port.
type SerialSource struct {
	port  serial.Port
	lines lineBuffer
	chunk [256]byte
}

// OpenSerial opens the port, waits out the device's reset settle, and flushes
// whatever noise arrived while it rebooted.
func OpenSerial(cfg Config) (*SerialSource, error) {
	mode := &serial.Mode{BaudRate: cfg.Baud}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Port, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", cfg.Port, err)
	}

	// The sentinel resets when the port opens.
	time.Sleep(settleDelay)
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("flush %s: %w", cfg.Port, err)
	}

	return &SerialSource{port: port}, nil
}

// ReadLine returns the next non-empty line, waiting at most one read timeout
// for new bytes. ok=false with a nil error means nothing complete arrived.
func (s *SerialSource) ReadLine() (string, bool, error) {
	if line, ok := s.popLine(); ok {
		return line, true, nil
	}

	n, err := s.port.Read(s.chunk[:])
	if err != nil {
		return "", false, fmt.Errorf("serial read: %w", err)
	}
	if n == 0 {
		// Timeout tick, no data.
		return "", false, nil
	}
	s.lines.append(s.chunk[:n])

	if line, ok := s.popLine(); ok {
		return line, true, nil
	}
	return "", false, nil
}

// popLine skips blank lines the device sometimes emits between records.
func (s *SerialSource) popLine() (string, bool) {
	for {
		line, ok := s.lines.next()
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
	}
}

// Close releases the serial port.
func (s *SerialSource) Close() error {
	return s.port.Close()
}
