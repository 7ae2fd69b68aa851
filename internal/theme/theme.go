// ABOUTME: Builds lipgloss styles for markers and the status line from configured colors
// ABOUTME: Unset colors fall back to the canvas defaults

// Package theme turns the colors of config.Theme into lipgloss styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/pkg/tui/canvas"
)

const (
	defaultHint      = "#302505"
	defaultHintBg    = "#FFD76E"
	defaultMatched   = "#D4AC3A"
	defaultHighlight = "#A5E887"
	defaultStatus    = "245"
)

// Styles holds every style the overlay draws with.
type Styles struct {
	Canvas canvas.Styles
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Build returns styles for t. Empty fields use the defaults.
func Build(t config.Theme) Styles {
	base := lipgloss.NewStyle().
		Foreground(color(t.Hint, defaultHint)).
		Background(color(t.HintBg, defaultHintBg)).
		Bold(true)

	return Styles{
		Canvas: canvas.Styles{
			Pending:   base,
			Matched:   base.Foreground(color(t.Matched, defaultMatched)),
			Highlight: base.Background(color(t.Highlight, defaultHighlight)),
		},
		Status: lipgloss.NewStyle().Foreground(color(t.Status, defaultStatus)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Plain returns unstyled styles, for output that must not carry escapes.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Canvas: canvas.Styles{Pending: s, Matched: s, Highlight: s},
		Status: s,
		Error:  s,
	}
}

func color(v, fallback string) lipgloss.Color {
	if v == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(v)
}
