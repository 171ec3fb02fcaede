// Package logger is a small leveled logger for the HUD. Output goes to a log
// file by default so nothing scribbles over the alternate screen while the
// dashboard is up.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level controls verbosity.
type Level int

const (
	// LevelOff silences everything.
	LevelOff Level = iota
	// LevelNormal shows info and errors.
	LevelNormal
	// LevelVerbose also shows per-line debug output.
	LevelVerbose
)

// Logger writes leveled, time-stamped lines to a single destination.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger at the given level. A nil writer falls back to stderr.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level: level,
		out:   log.New(w, "", log.Ltime),
	}
}

// Debug logs telemetry-level detail, only at verbose.
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelVerbose {
		l.out.Print("[DBG] " + fmt.Sprintf(format, args...))
	}
}

// Info logs normal operational events.
func (l *Logger) Info(format string, args ...any) {
	if l.level >= LevelNormal {
		l.out.Print("[INF] " + fmt.Sprintf(format, args...))
	}
}

// Error logs failures.
func (l *Logger) Error(format string, args ...any) {
	if l.level >= LevelNormal {
		l.out.Print("[ERR] " + fmt.Sprintf(format, args...))
	}
}
