// ABOUTME: Fixes the lipgloss background assumption before Bubble Tea initializes
// ABOUTME: Import for side effects ahead of any package that imports bubbletea

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// BackgroundEnv selects a light palette when set to "light".
const BackgroundEnv = "HINTMARK_BACKGROUND"

func init() {
	// With an explicit background lipgloss skips its OSC 11 query, whose
	// late reply would otherwise arrive as typed keys in hint mode.
	// Nothing here may import bubbletea.
	lipgloss.SetHasDarkBackground(Dark())
}

// Dark reports whether the terminal background is treated as dark.
func Dark() bool {
	return os.Getenv(BackgroundEnv) != "light"
}
