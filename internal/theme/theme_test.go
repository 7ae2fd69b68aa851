// ABOUTME: Tests for building marker and status styles from configured colors
// ABOUTME: Checks fallbacks and overrides on the resulting lipgloss styles

package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/hintmark/internal/config"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	s := Build(config.Theme{})

	if got := s.Canvas.Pending.GetBackground(); got != lipgloss.Color(defaultHintBg) {
		t.Errorf("pending background = %v; want %s", got, defaultHintBg)
	}
	if got := s.Canvas.Matched.GetForeground(); got != lipgloss.Color(defaultMatched) {
		t.Errorf("matched foreground = %v; want %s", got, defaultMatched)
	}
	if got := s.Canvas.Highlight.GetBackground(); got != lipgloss.Color(defaultHighlight) {
		t.Errorf("highlight background = %v; want %s", got, defaultHighlight)
	}
	if !s.Canvas.Pending.GetBold() {
		t.Error("pending style is not bold")
	}
}

func TestBuild_Overrides(t *testing.T) {
	t.Parallel()

	s := Build(config.Theme{Hint: "15", HintBg: "4", Matched: "8", Highlight: "2", Status: "214"})

	if got := s.Canvas.Pending.GetForeground(); got != lipgloss.Color("15") {
		t.Errorf("pending foreground = %v; want 15", got)
	}
	if got := s.Canvas.Highlight.GetBackground(); got != lipgloss.Color("2") {
		t.Errorf("highlight background = %v; want 2", got)
	}
	// Matched inherits the configured hint background.
	if got := s.Canvas.Matched.GetBackground(); got != lipgloss.Color("4") {
		t.Errorf("matched background = %v; want 4", got)
	}
	if got := s.Status.GetForeground(); got != lipgloss.Color("214") {
		t.Errorf("status foreground = %v; want 214", got)
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	s := Plain()
	if got := s.Canvas.Pending.Render("ab"); got != "ab" {
		t.Errorf("Plain pending render = %q; want %q", got, "ab")
	}
}
