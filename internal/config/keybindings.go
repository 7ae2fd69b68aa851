// ABOUTME: Keybinding actions for hint mode and the YAML keybindings file format
// ABOUTME: Unknown actions in a file are ignored; known ones replace the defaults

package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionRotateForward  KeyAction = "rotateForward"
	ActionRotateBackward KeyAction = "rotateBackward"
	ActionDeleteHintChar KeyAction = "deleteHintChar"
	ActionReset          KeyAction = "reset"
	ActionCancel         KeyAction = "cancel"
	ActionScrollUp       KeyAction = "scrollUp"
	ActionScrollDown     KeyAction = "scrollDown"
	ActionScrollLeft     KeyAction = "scrollLeft"
	ActionScrollRight    KeyAction = "scrollRight"
	ActionHelp           KeyAction = "help"
)

// AllActions lists every action in display order.
var AllActions = []KeyAction{
	ActionRotateForward, ActionRotateBackward,
	ActionDeleteHintChar, ActionReset, ActionCancel,
	ActionScrollUp, ActionScrollDown, ActionScrollLeft, ActionScrollRight,
	ActionHelp,
}

// Keybindings maps actions to key names ("space", "ctrl+r", "shift+tab").
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// RawKeybindings is the on-disk form.
type RawKeybindings map[string][]string

// NewKeybindings creates Keybindings with the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string)}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionRotateForward] = []string{"space", "tab"}
	kb.Bindings[ActionRotateBackward] = []string{"shift+tab"}
	kb.Bindings[ActionDeleteHintChar] = []string{"backspace"}
	kb.Bindings[ActionReset] = []string{"ctrl+r"}
	kb.Bindings[ActionCancel] = []string{"esc", "ctrl+c"}
	kb.Bindings[ActionScrollUp] = []string{"up"}
	kb.Bindings[ActionScrollDown] = []string{"down"}
	kb.Bindings[ActionScrollLeft] = []string{"left"}
	kb.Bindings[ActionScrollRight] = []string{"right"}
	kb.Bindings[ActionHelp] = []string{"?"}
}

// LoadKeybindings loads keybindings from a YAML file over the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	overrides, err := LoadKeybindingOverrides(path)
	if err != nil {
		return nil, err
	}
	kb := NewKeybindings()
	maps.Copy(kb.Bindings, overrides)
	return kb, nil
}

// LoadKeybindingOverrides returns only the known actions a YAML file sets.
func LoadKeybindingOverrides(path string) (map[KeyAction][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw RawKeybindings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	known := NewKeybindings().Bindings
	overrides := make(map[KeyAction][]string, len(raw))
	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := known[action]; ok {
			overrides[action] = keys
		}
	}
	return overrides, nil
}

// SaveKeybindings writes the bindings to path as YAML.
func (kb *Keybindings) SaveKeybindings(path string) error {
	raw := make(RawKeybindings, len(kb.Bindings))
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
