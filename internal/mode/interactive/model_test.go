// ABOUTME: Tests for the interactive hint-mode model driven by synthetic Bubble Tea messages
// ABOUTME: Covers layout, key routing, activation, cancel, help overlay, and rejected keys

package interactive

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/keybindings"
	"github.com/mauromedda/hintmark/internal/theme"
	"github.com/mauromedda/hintmark/pkg/hint"
)

func el(h, text string, x, y float64) dom.Element {
	return dom.Element{
		Kind: "button",
		Hint: h,
		Text: text,
		Shape: hint.Shape{
			Area:            8,
			NonCoveredPoint: hint.NonCoveredPoint{X: x, Y: y},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Deps{
		Elements: []dom.Element{
			el("ab", "one", 0, 1),
			el("cd", "two", 1, 1),
			el("e", "three", 20, 3),
		},
		Keys:      keybindings.NewFromBindings(config.NewKeybindings()),
		Styles:    theme.Plain(),
		BaseZ:     1,
		HelpStyle: "notty",
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestView_EmptyBeforeSize(t *testing.T) {
	t.Parallel()

	m := NewModel(Deps{
		Keys:   keybindings.NewFromBindings(config.NewKeybindings()),
		Styles: theme.Plain(),
	})
	if got := m.View(); got != "" {
		t.Errorf("View() before WindowSizeMsg = %q; want empty", got)
	}
}

func TestView_DrawsOverlayAndStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("View() has %d lines; want 5", len(lines))
	}
	if !strings.HasPrefix(lines[0], "acd") {
		t.Errorf("first row = %q; want cd drawn over ab", lines[0])
	}
	if !strings.Contains(lines[2], "e") {
		t.Errorf("third row = %q; want hint e", lines[2])
	}
	if !strings.Contains(lines[4], "3 hints") {
		t.Errorf("status = %q; want 3 hints", lines[4])
	}
}

func TestUpdate_SpaceRotates(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if first := strings.Split(m.View(), "\n")[0]; !strings.HasPrefix(first, "abd") {
		t.Errorf("after space first row = %q; want ab on top", first)
	}
	e := m.Session().Entries()
	if e[0].Marker.ZOrder() != 2 || e[1].Marker.ZOrder() != 1 {
		t.Errorf("z = %d,%d; want 2,1", e[0].Marker.ZOrder(), e[1].Marker.ZOrder())
	}
}

func TestUpdate_TypeActivatesAndQuits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := send(t, m, runes("c"))
	if isQuit(cmd) {
		t.Fatal("quit after one key")
	}
	m, cmd = send(t, m, runes("d"))
	if !isQuit(cmd) {
		t.Fatal("no quit after activation")
	}
	res := m.Result()
	if res == nil || res.Activated == nil || res.Activated.Text != "two" {
		t.Errorf("Result() = %+v; want activated two", res)
	}
}

func TestUpdate_PastedRunes(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := send(t, m, runes("ab"))
	if !isQuit(cmd) || m.Result().Activated.Hint != "ab" {
		t.Errorf("multi-rune message did not activate ab")
	}
}

func TestUpdate_BackspaceUndoes(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyBackspace})
	if got := len(m.Session().Candidates()); got != 3 {
		t.Errorf("candidates after backspace = %d; want 3", got)
	}
}

func TestUpdate_RejectedKeyShowsNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := send(t, m, runes("z"))
	if cmd != nil {
		t.Error("rejected key returned a command")
	}
	lines := strings.Split(m.View(), "\n")
	if status := lines[len(lines)-1]; !strings.Contains(status, `'z'`) {
		t.Errorf("status = %q; want rejection notice", status)
	}
	m, _ = send(t, m, runes("e"))
	if m.Result() == nil {
		t.Error("valid key after rejection did not activate")
	}
}

func TestUpdate_Cancel(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		m, cmd := send(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%s: no quit", msg)
		}
		if res := m.Result(); res == nil || !res.Cancelled {
			t.Errorf("%s: Result() = %+v; want cancelled", msg, res)
		}
	}
}

func TestUpdate_HelpOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, runes("?"))
	if !strings.Contains(m.View(), "rotateForward") {
		t.Errorf("help view missing bindings:\n%s", m.View())
	}

	// keys other than help/cancel are swallowed while help is open
	m, cmd := send(t, m, runes("e"))
	if cmd != nil || m.Result() != nil {
		t.Error("key reached the session while help was open")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if isQuit(cmd) {
		t.Error("esc in help quit instead of closing help")
	}
	if strings.Contains(m.View(), "rotateForward") {
		t.Error("help still shown after esc")
	}
}

func TestUpdate_ArrowScrolls(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if top := m.Session().Entries()[2].Marker.Position().Top; top != 1 {
		t.Errorf("e top after scroll down = %v; want 1", top)
	}
}

func TestUpdate_ResizeRelayouts(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 3})
	p := m.Session().Entries()[2].Marker.Position()
	if p.Left != 9 || p.Top != 1 {
		t.Errorf("e position after resize = %+v; want clamped to 9,1", p)
	}
}

func TestKeyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "shift+tab"},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, "ctrl+r"},
		{runes("?"), "?"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "alt+x"},
	}
	for _, tt := range tests {
		if got := keyName(tt.msg); got != tt.want {
			t.Errorf("keyName(%v) = %q; want %q", tt.msg, got, tt.want)
		}
	}
}
