// ABOUTME: Keybindings manager with O(1) key-name-to-action lookup
// ABOUTME: Merges global and local configs, detects conflicts, formats a Markdown help table

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/pkg/tui/key"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "space" → ActionRotateForward
}

// New creates a Manager from global and local keybinding files.
// Local bindings override global ones. Missing files are ignored.
func New(globalPath, localPath string) *Manager {
	m := &Manager{}
	m.Reload(globalPath, localPath)
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to k, or "" if unbound.
func (m *Manager) ActionForKey(k key.Key) config.KeyAction {
	return m.lookup[k.Name()]
}

// ActionForName returns the action bound to a key name, or "" if unbound.
func (m *Manager) ActionForName(name string) config.KeyAction {
	return m.lookup[name]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		actions := keyActions[k]
		if len(actions) > 1 {
			slices.Sort(actions)
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// Reload re-reads keybinding files and rebuilds the lookup table.
func (m *Manager) Reload(globalPath, localPath string) {
	kb := config.NewKeybindings()
	for _, p := range []string{globalPath, localPath} {
		if p == "" {
			continue
		}
		overrides, err := config.LoadKeybindingOverrides(p)
		if err != nil {
			log.Debug("keybindings %s: %v", p, err)
			continue
		}
		maps.Copy(kb.Bindings, overrides)
	}

	m.bindings = kb
	m.buildLookup()
	for _, c := range m.Conflicts() {
		log.Warn("key %q bound to several actions: %v", c.Key, c.Actions)
	}
}

// FormatMarkdown returns a Markdown table of all bindings for the help view.
func (m *Manager) FormatMarkdown() string {
	var b strings.Builder
	b.WriteString("# Hint mode keys\n\n")
	b.WriteString("Type the characters of a hint to select its element.\n\n")
	b.WriteString("| Action | Keys |\n|---|---|\n")
	for _, action := range config.AllActions {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		quoted := make([]string, len(keys))
		for i, k := range keys {
			quoted[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", action, strings.Join(quoted, ", "))
	}
	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(m.bindings.Bindings)*2)
	for _, action := range config.AllActions {
		for _, k := range m.bindings.Bindings[action] {
			if _, taken := m.lookup[k]; !taken {
				m.lookup[k] = action
			}
		}
	}
}
