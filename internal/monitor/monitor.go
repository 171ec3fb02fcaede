// Package monitor implements the live sentinel HUD using BubbleTea: a single
// loop that alternates bounded-wait reads from the device transport with a
// fixed redraw tick, so the countdown keeps moving even when the device is
// quiet.
package monitor

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/luki/sentinel-hud/internal/device"
	"github.com/luki/sentinel-hud/internal/history"
	"github.com/luki/sentinel-hud/internal/hud"
	"github.com/luki/sentinel-hud/internal/logger"
	"github.com/luki/sentinel-hud/internal/telemetry"
	"github.com/luki/sentinel-hud/internal/transport"
)

const (
	// tickInterval keeps the countdown smooth between telemetry lines.
	tickInterval = 100 * time.Millisecond

	// historySize bounds the anger sparkline window.
	historySize = 120

	sparklineWidth = 32
	bannerFont     = "slant"
)

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

// lineMsg carries one raw line from the transport.
type lineMsg string

// readIdleMsg means the bounded read timed out with nothing new.
type readIdleMsg struct{}

type readErrMsg struct{ err error }

func (e readErrMsg) Error() string { return e.err.Error() }

// ── Options / Model ──────────────────────────────────────────────────

// Options are the display toggles from the command line.
type Options struct {
	NoBanner bool // plain state label instead of big ASCII text
	ShowRaw  bool // echo the last raw line at the bottom
}

// Model is the BubbleTea model for the HUD. The timeline is mutated only
// inside Update, in the exact order lines arrive.
type Model struct {
	src      transport.LineSource
	log      *logger.Logger
	opts     Options
	timeline *device.Timeline
	hist     *history.Buffer

	width     int
	height    int
	startTime time.Time
	lastLine  time.Time
	paused    bool
	// reading is true while a read command is in flight. At most one read
	// chain may exist at a time: the transport's line buffer has a single
	// caller, and line order must match arrival order.
	reading bool
	err     error
}

// New creates the initial model reading from src.
func New(src transport.LineSource, log *logger.Logger, opts Options) Model {
	now := time.Now()
	return Model{
		src:       src,
		log:       log,
		opts:      opts,
		timeline:  device.NewTimeline(now),
		hist:      history.NewBuffer(historySize),
		startTime: now,
		reading:   true, // Init issues the first read
	}
}

// Err reports the transport failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// ── Commands ─────────────────────────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// readCmd performs one bounded-wait read. It reschedules itself from Update,
// never concurrently, so line order is preserved.
func readCmd(src transport.LineSource) tea.Cmd {
	return func() tea.Msg {
		line, ok, err := src.ReadLine()
		if err != nil {
			return readErrMsg{err}
		}
		if !ok {
			return readIdleMsg{}
		}
		return lineMsg(line)
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(readCmd(m.src), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.src.Close()
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			// Resume reading only if no read survived the pause; a stale
			// in-flight read reissues itself when it lands, and a second
			// chain would race it on the transport.
			if !m.paused && !m.reading {
				m.reading = true
				return m, readCmd(m.src)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tickCmd()

	case lineMsg:
		m.reading = false
		m.handleLine(string(msg), time.Now())
		if m.paused {
			return m, nil
		}
		m.reading = true
		return m, readCmd(m.src)

	case readIdleMsg:
		m.reading = false
		if m.paused {
			return m, nil
		}
		m.reading = true
		return m, readCmd(m.src)

	case readErrMsg:
		m.reading = false
		m.err = msg.err
		m.log.Error("transport: %v", msg.err)
		m.src.Close()
		return m, tea.Quit
	}

	return m, nil
}

// handleLine feeds one raw line through parser and timeline.
func (m *Model) handleLine(line string, now time.Time) {
	m.timeline.Observe(line)
	m.lastLine = now

	ev, ok := telemetry.ParseLine(line)
	if !ok {
		m.log.Debug("unrecognized line: %q", line)
		return
	}

	changed := m.timeline.Apply(ev, now)
	if changed {
		m.log.Info("state -> %s", m.timeline.State)
	}
	if ev.Kind == telemetry.KindStat {
		m.hist.Record(ev.Anger, now)
		m.log.Debug("stat: state=%s anger=%d patienceMs=%d", ev.State, ev.Anger, ev.PatienceMs)
	}
}

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorDim      = lipgloss.Color("240")
	colorLabel    = lipgloss.Color("252")
	colorFooterBg = lipgloss.Color("235")
	colorPaused   = lipgloss.Color("196")

	styleClasses = map[device.StyleClass]lipgloss.Style{
		device.StyleOk:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		device.StyleWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		device.StyleCrit:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		device.StyleReward:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		device.StyleLockout: lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		device.StyleDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// styleFor maps a style class to its lipgloss style, falling back to the
// default for anything unknown.
func styleFor(class device.StyleClass) lipgloss.Style {
	if s, ok := styleClasses[class]; ok {
		return s
	}
	return styleClasses[device.StyleDefault]
}

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = termWidth()
	}
	contentWidth := width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	snap := hud.Build(m.timeline, time.Now(), m.opts.ShowRaw)
	stateStyle := styleFor(snap.Style)

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))
	sections = append(sections, "")
	sections = append(sections, stateStyle.Bold(true).Render(bigText(snap.StateLabel, m.opts.NoBanner)))

	if snap.Subtitle != "" {
		sections = append(sections, dimStyle.Render(snap.Subtitle))
	}

	sections = append(sections, "")
	if snap.Placeholder {
		sections = append(sections, dimStyle.Render(snap.Message))
	} else {
		sections = append(sections, stateStyle.Bold(true).Render(snap.Message))
	}

	sections = append(sections, "")
	sections = append(sections, dimStyle.Render(strings.Repeat("─", 30)))

	angerLine := fmt.Sprintf("Anger: %s  (%d/%d)", snap.AngerBar, snap.Anger, snap.MaxAnger)
	sections = append(sections, styleFor(snap.AngerStyle).Bold(true).Render(angerLine))

	if m.hist.Len() > 0 {
		spark := hud.RenderAngerSparkline(m.hist.LastN(sparklineWidth), sparklineWidth)
		sections = append(sections, dimStyle.Render("       ")+spark+dimStyle.Render(fmt.Sprintf("  peak %d", m.hist.Peak())))
	}

	sections = append(sections, styleFor(device.StyleReward).Render(snap.PatienceLabel))

	if snap.HasCountdown {
		sections = append(sections, stateStyle.Bold(true).Render(
			fmt.Sprintf("%s: %s", snap.CountdownLabel, snap.CountdownValue)))
	} else {
		sections = append(sections, dimStyle.Render("Countdown: (none)"))
	}

	if snap.Raw != "" {
		sections = append(sections, "")
		sections = append(sections, dimStyle.Render("raw: "+snap.Raw))
	}

	sections = append(sections, "")
	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// bigText renders the state label as large ASCII art, or plainly when the
// banner is disabled.
func bigText(s string, plain bool) string {
	if plain {
		return s
	}
	lines := figure.NewFigure(s, bannerFont, true).Slicify()
	return strings.Join(lines, "\n")
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("SENTINEL HUD")

	var statusParts []string

	uptime := dimStyle.Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime))))
	statusParts = append(statusParts, uptime)

	if !m.lastLine.IsZero() {
		statusParts = append(statusParts, dimStyle.Render("last line "+m.lastLine.Format("15:04:05")))
	}

	if m.paused {
		statusParts = append(statusParts, lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true).
			Render("PAUSED"))
	}

	sep := dimStyle.Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

func (m Model) renderFooter(width int) string {
	keys := dimStyle.Render("q") + lipgloss.NewStyle().Foreground(colorLabel).Render(":quit") +
		dimStyle.Render("  p") + lipgloss.NewStyle().Foreground(colorLabel).Render(":pause")

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

// termWidth returns the terminal column count before the first
// WindowSizeMsg arrives, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	min := d / time.Minute
	d -= min * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, min, s)
	}
	return fmt.Sprintf("%dm%02ds", min, s)
}
