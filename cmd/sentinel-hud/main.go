// Sentinel HUD — mirrors the sentinel's internal state over a serial link:
// big colored state banner, anger meter, and the countdown to its next move.
//
// Usage:
//
//	sentinel-hud [-port /dev/ttyACM0] [-baud 9600] [-no-banner] [-show-raw]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/luki/sentinel-hud/internal/logger"
	"github.com/luki/sentinel-hud/internal/monitor"
	"github.com/luki/sentinel-hud/internal/transport"
)

func main() {
	_ = godotenv.Load()

	port := flag.String("port", envOr("SENTINEL_PORT", "/dev/ttyACM0"), "serial port, e.g. /dev/ttyACM0 or /dev/ttyUSB0")
	baud := flag.Int("baud", envIntOr("SENTINEL_BAUD", 9600), "serial bitrate")
	noBanner := flag.Bool("no-banner", false, "disable big ASCII state text")
	showRaw := flag.Bool("show-raw", false, "show last raw line at bottom")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".sentinel-hud.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Logs go to a file by default so they never fight the alt screen.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		if dir := filepath.Dir(*logFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	log := logger.New(logLevel, logOut)

	src, err := transport.OpenSerial(transport.Config{Port: *port, Baud: *baud})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %s: %v\n", *port, err)
		os.Exit(1)
	}
	defer src.Close()
	log.Info("connected to %s at %d baud", *port, *baud)

	p := tea.NewProgram(
		monitor.New(src, log, monitor.Options{NoBanner: *noBanner, ShowRaw: *showRaw}),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(monitor.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "Transport error: %v\n", m.Err())
		os.Exit(1)
	}

	fmt.Println("bye.")
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
