// ABOUTME: Entry point for interactive hint mode
// ABOUTME: Runs the Bubble Tea program on the alternate screen and returns the user's choice

package interactive

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts hint mode and blocks until an element is activated or the
// user cancels. The UI is drawn on stderr so stdout carries only the
// result, and keys are read from the controlling terminal so the page can
// arrive on stdin.
func Run(deps Deps) (*Result, error) {
	m := NewModel(deps)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithInputTTY())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("bubble tea: %w", err)
	}

	res := final.(Model).Result()
	if res == nil {
		res = &Result{Cancelled: true}
	}
	return res, nil
}
