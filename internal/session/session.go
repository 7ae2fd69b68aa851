// ABOUTME: Hint-mode session: builds markers for elements and routes keystrokes to them
// ABOUTME: Tracks accepted keys so backspace can undo both match progress and hiding

// Package session is the input controller of hint mode. It owns the
// markers for one overlay, feeds typed characters to them, rotates
// overlapping stacks on request, and reports when a single element has
// been selected.
package session

import (
	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/pkg/hint"
	"github.com/mauromedda/hintmark/pkg/hint/stack"
)

// Outcome is the result of feeding one key to a session.
type Outcome int

const (
	// Pending means more keys are needed.
	Pending Outcome = iota
	// Activated means exactly one marker remains and its hint is complete.
	Activated
	// Rejected means the key matched no remaining marker and was ignored.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Activated:
		return "activated"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Entry pairs a marker with the element it labels.
type Entry struct {
	Element dom.Element
	Marker  *hint.Marker
}

// keystroke records which markers one accepted key advanced and which it hid.
type keystroke struct {
	advanced []int
	hidden   []int
}

// Session is one run of hint mode over a set of elements.
type Session struct {
	entries []Entry
	history []keystroke

	scrollX, scrollY float64
	laidOut          bool
	closed           bool
}

// New creates a marker on surface for each element, assigns its hint,
// and gives it z-order baseZ + index.
func New(elements []dom.Element, surface hint.Surface, baseZ int) *Session {
	s := &Session{entries: make([]Entry, len(elements))}
	for i, el := range elements {
		m := hint.NewMarker(el.Shape, el.Kind, surface)
		m.SetHint(el.Hint)
		m.SetZOrder(baseZ + i)
		s.entries[i] = Entry{Element: el, Marker: m}
	}
	return s
}

// Entries returns the session's markers in element order.
func (s *Session) Entries() []Entry {
	return s.entries
}

// Typed returns the number of accepted keystrokes.
func (s *Session) Typed() int {
	return len(s.history)
}

// Layout positions every marker for a viewport and zoom, then reapplies
// the current scroll offset.
func (s *Session) Layout(viewport hint.Rect, zoom float64) {
	for _, e := range s.entries {
		e.Marker.SetPosition(viewport, zoom)
	}
	s.laidOut = true
	if s.scrollX != 0 || s.scrollY != 0 {
		s.applyScroll()
	}
}

// Scroll moves the page by dx/dy; markers move the opposite way relative
// to their original anchors and stay clamped to the viewport.
func (s *Session) Scroll(dx, dy float64) {
	s.scrollX += dx
	s.scrollY += dy
	if s.laidOut {
		s.applyScroll()
	}
}

func (s *Session) applyScroll() {
	for _, e := range s.entries {
		e.Marker.UpdatePosition(-s.scrollX, -s.scrollY)
	}
}

// Candidates returns the entries still eligible for selection.
func (s *Session) Candidates() []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Marker.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// Type feeds one typed character to every eligible marker. Markers that
// do not accept it are hidden. A character that no eligible marker
// accepts is rejected and changes nothing.
func (s *Session) Type(ch string) (Outcome, *Entry) {
	var ks keystroke
	var rejecting []int
	for i, e := range s.entries {
		if !e.Marker.Visible() {
			continue
		}
		if e.Marker.MatchHintChar(ch) {
			ks.advanced = append(ks.advanced, i)
			continue
		}
		rejecting = append(rejecting, i)
	}
	if len(ks.advanced) == 0 {
		log.Debug("key %q matches no marker", ch)
		return Rejected, nil
	}

	for _, i := range rejecting {
		s.entries[i].Marker.Hide()
	}
	ks.hidden = rejecting
	s.history = append(s.history, ks)
	return s.settle()
}

// Backspace undoes the last accepted character.
func (s *Session) Backspace() Outcome {
	if len(s.history) == 0 {
		return Pending
	}
	ks := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	for _, i := range ks.advanced {
		s.entries[i].Marker.DeleteHintChar()
	}
	for _, i := range ks.hidden {
		s.entries[i].Marker.Show()
	}
	outcome, _ := s.settle()
	return outcome
}

// settle updates highlights after the candidate set changed.
func (s *Session) settle() (Outcome, *Entry) {
	candidates := s.visibleIndexes()
	only := -1
	if len(candidates) == 1 {
		only = candidates[0]
	}
	for i, e := range s.entries {
		e.Marker.MarkMatched(i == only)
	}
	if only < 0 {
		return Pending, nil
	}
	e := &s.entries[only]
	if !e.Marker.IsMatched() {
		return Pending, nil
	}
	log.Debug("activated <%s> %q (%s)", e.Element.Kind, e.Element.Text, e.Element.Hint)
	return Activated, e
}

func (s *Session) visibleIndexes() []int {
	var idx []int
	for i, e := range s.entries {
		if e.Marker.Visible() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Rotate cycles the draw order of overlapping visible markers.
func (s *Session) Rotate(forward bool) {
	var visible []*hint.Marker
	for _, e := range s.entries {
		if e.Marker.Visible() {
			visible = append(visible, e.Marker)
		}
	}
	stack.Rotate(visible, forward)
	log.Debug("rotated %d markers forward=%v", len(visible), forward)
}

// Stacks returns the current stacks of overlapping visible markers.
func (s *Session) Stacks() [][]*hint.Marker {
	var visible []*hint.Marker
	for _, e := range s.entries {
		if e.Marker.Visible() {
			visible = append(visible, e.Marker)
		}
	}
	return stack.Stacks(visible)
}

// Reset restarts hint mode: every marker is shown with no progress and no
// highlight. Geometry and z-order are kept.
func (s *Session) Reset() {
	for _, e := range s.entries {
		e.Marker.Reset()
		e.Marker.MarkMatched(false)
	}
	s.history = nil
}

// Close removes every marker box from its surface.
func (s *Session) Close() {
	if s.closed {
		return
	}
	for _, e := range s.entries {
		e.Marker.Remove()
	}
	s.closed = true
}
