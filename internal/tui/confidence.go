package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confidence values come from the backend in [0,1]; the client only decides
// the color band and renders a bar, it never recomputes the value.

func confidenceColor(v float64) lipgloss.TerminalColor {
	switch {
	case v >= 0.8:
		return colorConfidenceHigh
	case v >= 0.6:
		return colorConfidenceMid
	default:
		return colorConfidenceLow
	}
}

func confidenceBar(label string, v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if width < 10 {
		width = 10
	}

	filled := int(v*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	st := lipgloss.NewStyle().Foreground(confidenceColor(v))
	return fmt.Sprintf("%s %s %s", styleMuted().Render(label), st.Render(bar), st.Render(fmt.Sprintf("%d%%", int(v*100+0.5))))
}
