package hud

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/sentinel-hud/internal/device"
	"github.com/luki/sentinel-hud/internal/history"
)

var sparkBlocks = []rune{'▁', '▃', '▅', '█'}

var (
	sparkPadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	sparkOkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	sparkWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	sparkCritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// RenderAngerSparkline draws the recent anger samples as a color-coded
// sparkline, newest on the right, padded on the left until the window fills.
func RenderAngerSparkline(samples []history.Sample, width int) string {
	if width <= 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	var sb strings.Builder
	for i := len(samples); i < width; i++ {
		sb.WriteString(sparkPadStyle.Render("╌"))
	}

	for _, s := range samples {
		level := s.Anger
		if level < 0 {
			level = 0
		}
		if level >= len(sparkBlocks) {
			level = len(sparkBlocks) - 1
		}

		style := sparkOkStyle
		switch {
		case s.Anger >= device.MaxAnger:
			style = sparkCritStyle
		case s.Anger > 0:
			style = sparkWarnStyle
		}
		sb.WriteString(style.Render(string(sparkBlocks[level])))
	}
	return sb.String()
}
