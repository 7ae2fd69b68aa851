// ABOUTME: Bubble Tea model for interactive hint mode over a terminal canvas
// ABOUTME: Routes bound keys to session actions and other runes to hint matching

// Package interactive runs hint mode as a full-screen Bubble Tea program.
package interactive

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/keybindings"
	"github.com/mauromedda/hintmark/internal/session"
	"github.com/mauromedda/hintmark/internal/theme"
	"github.com/mauromedda/hintmark/pkg/hint"
	"github.com/mauromedda/hintmark/pkg/tui/canvas"
)

// Deps bundles what the interactive model needs.
type Deps struct {
	Elements  []dom.Element
	Keys      *keybindings.Manager
	Styles    theme.Styles
	Zoom      float64
	BaseZ     int
	HelpStyle string // glamour standard style; "dark" when empty
}

// Result is how the user left hint mode.
type Result struct {
	Activated *dom.Element
	Cancelled bool
}

// Model is the hint-mode tea.Model. Copies share the same session.
type Model struct {
	deps   Deps
	canvas *canvas.Canvas
	sess   *session.Session
	help   *helpRenderer

	width, height int
	showHelp      bool
	notice        string
	result        *Result
}

// NewModel builds the session for deps.Elements on a fresh canvas.
func NewModel(deps Deps) Model {
	if deps.Zoom <= 0 {
		deps.Zoom = 1
	}
	if deps.HelpStyle == "" {
		deps.HelpStyle = "dark"
	}
	cv := canvas.New(deps.Styles.Canvas)
	return Model{
		deps:   deps,
		canvas: cv,
		sess:   session.New(deps.Elements, cv, deps.BaseZ),
		help:   newHelpRenderer(deps.HelpStyle, deps.Keys.FormatMarkdown()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Result returns the outcome once the program has quit, or nil.
func (m Model) Result() *Result { return m.result }

// Session returns the underlying session.
func (m Model) Session() *session.Session { return m.sess }

// Close removes the overlay boxes.
func (m Model) Close() { m.sess.Close() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sess.Layout(m.viewport(), m.deps.Zoom)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// viewport is the page area behind the overlay; the last row is the
// status line.
func (m Model) viewport() hint.Rect {
	rows := max(m.height-1, 0)
	return hint.Rect{
		Right:  float64(m.width) / m.deps.Zoom,
		Bottom: float64(rows) / m.deps.Zoom,
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := keyName(msg)
	action := m.deps.Keys.ActionForName(name)

	if m.showHelp {
		if action == config.ActionHelp || action == config.ActionCancel {
			m.showHelp = false
		}
		return m, nil
	}

	m.notice = ""
	switch action {
	case config.ActionCancel:
		m.result = &Result{Cancelled: true}
		return m, tea.Quit
	case config.ActionHelp:
		m.showHelp = true
		return m, nil
	case "":
	default:
		m.sess.Apply(action)
		return m, nil
	}

	if msg.Type != tea.KeyRunes || msg.Alt {
		return m, nil
	}
	for _, r := range msg.Runes {
		outcome, hit := m.sess.Type(string(r))
		switch outcome {
		case session.Rejected:
			m.notice = fmt.Sprintf("no hint continues with %q", r)
			return m, nil
		case session.Activated:
			m.result = &Result{Activated: &hit.Element}
			return m, tea.Quit
		}
	}
	return m, nil
}

// keyName converts a Bubble Tea key to keybinding notation.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return msg.String()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.help.Render(m.width)
	}
	overlay := m.canvas.Render(m.width, m.height-1)
	return lipgloss.JoinVertical(lipgloss.Left, overlay, m.statusLine())
}

func (m Model) statusLine() string {
	if m.notice != "" {
		return m.deps.Styles.Error.Render(m.notice)
	}
	line := fmt.Sprintf("%d hints  %d typed  ? help", len(m.sess.Candidates()), m.sess.Typed())
	return m.deps.Styles.Status.Render(line)
}
