// ABOUTME: Marker is one hint overlay: geometry, z-order, and incremental hint-match state
// ABOUTME: Rendering is delegated to a Box created from a Surface; positions stay in page units

package hint

import "math"

// Box is the rendered, labelled overlay for one marker.
// Coordinates passed to MoveTo and returned by Size are device units
// (page units multiplied by zoom).
type Box interface {
	// SetChars replaces the per-character sub-boxes. None are matched.
	SetChars(chars []string)
	SetCharMatched(i int, matched bool)
	MoveTo(left, top float64)
	SetZOrder(z int)
	SetVisible(visible bool)
	SetHighlighted(highlighted bool)
	Size() (width, height float64)
	// Remove detaches the box from its surface.
	Remove()
}

// Surface creates boxes. kind is the semantic type of the element the
// box labels, e.g. "a" or "button".
type Surface interface {
	NewBox(kind string) Box
}

// Marker tracks one candidate element's overlay.
//
// The zero value is not usable; create markers with NewMarker.
type Marker struct {
	shape  Shape
	kind   string
	box    Box
	weight float64

	hint      string
	chars     []string
	hintIndex int

	width  float64
	height float64
	zoom   float64

	viewport         Rect
	position         Rect
	originalPosition Offset

	zOrder  int
	matched bool
	visible bool
}

// NewMarker creates a marker for an element and inserts its box into surface.
func NewMarker(shape Shape, kind string, surface Surface) *Marker {
	m := &Marker{
		shape:   shape,
		kind:    kind,
		weight:  shape.Area,
		zoom:    1,
		visible: true,
	}
	m.box = surface.NewBox(kind)
	return m
}

// Kind returns the semantic type of the element.
func (m *Marker) Kind() string { return m.kind }

// Shape returns the geometry descriptor the marker was created with.
func (m *Marker) Shape() Shape { return m.shape }

// Weight returns the element's area.
func (m *Marker) Weight() float64 { return m.weight }

// Hint returns the full hint string.
func (m *Marker) Hint() string { return m.hint }

// HintIndex returns how many hint characters have been matched so far.
func (m *Marker) HintIndex() int { return m.hintIndex }

// Position returns the on-screen rectangle in unzoomed page units.
func (m *Marker) Position() Rect { return m.position }

// OriginalPosition returns the unclamped anchor computed by SetPosition.
func (m *Marker) OriginalPosition() Offset { return m.originalPosition }

// Size returns the marker's width and height in page units.
func (m *Marker) Size() (width, height float64) { return m.width, m.height }

// Zoom returns the zoom factor in effect.
func (m *Marker) Zoom() float64 { return m.zoom }

// ZOrder returns the draw order. Higher values are drawn on top.
func (m *Marker) ZOrder() int { return m.zOrder }

// SetZOrder changes the draw order.
func (m *Marker) SetZOrder(z int) {
	m.zOrder = z
	m.box.SetZOrder(z)
}

// Matched reports the presentation highlight set by MarkMatched.
func (m *Marker) Matched() bool { return m.matched }

// Visible reports whether the marker is shown.
func (m *Marker) Visible() bool { return m.visible }

// SetHint replaces the hint and clears any match progress.
func (m *Marker) SetHint(hint string) {
	m.hint = hint
	m.chars = SplitHint(hint)
	m.hintIndex = 0
	m.box.SetChars(m.chars)
}

// MatchHintChar matches ch against the next unmatched hint character.
// It returns false, changing nothing, on a mismatch or when the hint is
// already fully matched.
func (m *Marker) MatchHintChar(ch string) bool {
	if m.hintIndex >= len(m.chars) {
		return false
	}
	if !sameChar(ch, m.chars[m.hintIndex]) {
		return false
	}
	m.box.SetCharMatched(m.hintIndex, true)
	m.hintIndex++
	return true
}

// DeleteHintChar undoes the last successful MatchHintChar.
func (m *Marker) DeleteHintChar() {
	if m.hintIndex == 0 {
		return
	}
	m.hintIndex--
	m.box.SetCharMatched(m.hintIndex, false)
}

// IsMatched reports whether every hint character has been typed.
func (m *Marker) IsMatched() bool {
	return m.hintIndex == len(m.chars)
}

// MarkMatched toggles the highlight. It does not touch match progress.
func (m *Marker) MarkMatched(matched bool) {
	m.matched = matched
	m.box.SetHighlighted(matched)
}

// Show makes the marker visible.
func (m *Marker) Show() { m.SetVisibility(true) }

// Hide hides the marker.
func (m *Marker) Hide() { m.SetVisibility(false) }

// SetVisibility shows or hides the marker.
func (m *Marker) SetVisibility(visible bool) {
	m.visible = visible
	m.box.SetVisible(visible)
}

// SetPosition places the marker centred vertically on the element's
// non-covered point. The box must already have a hint so that it has a
// rendered size.
func (m *Marker) SetPosition(viewport Rect, zoom float64) {
	m.viewport = viewport
	m.zoom = zoom

	w, h := m.box.Size()
	m.width = w / zoom
	m.height = h / zoom

	p := m.shape.NonCoveredPoint
	left := p.X + p.Offset.Left
	top := p.Y - math.Ceil(m.height/2) + p.Offset.Top

	m.originalPosition = Offset{Left: left, Top: top}
	m.MoveTo(left, top)
}

// MoveTo places the marker at left/top, clamped so it stays inside the
// viewport. When the viewport is smaller than the marker the marker is
// pinned to the viewport's top-left corner.
//
// MoveTo must not be called before SetPosition.
func (m *Marker) MoveTo(left, top float64) {
	vp := m.viewport
	left = math.Max(vp.Left, math.Min(left, vp.Right-m.width))
	top = math.Max(vp.Top, math.Min(top, vp.Bottom-m.height))

	m.box.MoveTo(left*m.zoom, top*m.zoom)
	m.position = Rect{
		Left:   left,
		Top:    top,
		Right:  left + m.width,
		Bottom: top + m.height,
	}
}

// UpdatePosition moves the marker by dx/dy relative to its original anchor.
func (m *Marker) UpdatePosition(dx, dy float64) {
	m.MoveTo(m.originalPosition.Left+dx, m.originalPosition.Top+dy)
}

// Reset re-applies the current hint, clearing match progress, and shows
// the marker. Geometry is kept.
func (m *Marker) Reset() {
	m.SetHint(m.hint)
	m.Show()
}

// Remove detaches the marker's box from its surface.
func (m *Marker) Remove() {
	m.box.Remove()
}
