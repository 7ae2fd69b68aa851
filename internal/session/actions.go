// ABOUTME: Applies bound keybinding actions that operate on the session itself
// ABOUTME: Cancel and help are left to the calling mode

package session

import "github.com/mauromedda/hintmark/internal/config"

// ScrollStep is how far one scroll key moves the page, in page units.
const ScrollStep = 1

// Apply performs action if it is a session action and reports whether it
// did. ActionCancel, ActionHelp, and unknown actions return false.
func (s *Session) Apply(action config.KeyAction) bool {
	switch action {
	case config.ActionRotateForward:
		s.Rotate(true)
	case config.ActionRotateBackward:
		s.Rotate(false)
	case config.ActionDeleteHintChar:
		s.Backspace()
	case config.ActionReset:
		s.Reset()
	case config.ActionScrollUp:
		s.Scroll(0, -ScrollStep)
	case config.ActionScrollDown:
		s.Scroll(0, ScrollStep)
	case config.ActionScrollLeft:
		s.Scroll(-ScrollStep, 0)
	case config.ActionScrollRight:
		s.Scroll(ScrollStep, 0)
	default:
		return false
	}
	return true
}
