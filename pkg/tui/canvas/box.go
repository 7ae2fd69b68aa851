// ABOUTME: Box is one labelled marker on a Canvas, implementing hint.Box
// ABOUTME: Tracks per-character matched state, device position, z-order, and visibility

package canvas

import "strings"

// Box is a hint.Box drawn on a Canvas.
type Box struct {
	canvas *Canvas
	kind   string
	seq    int

	chars   []string
	widths  []int
	matched []bool

	left, top   float64
	z           int
	visible     bool
	highlighted bool
	removed     bool
}

// SetChars implements hint.Box.
func (b *Box) SetChars(chars []string) {
	b.chars = append(b.chars[:0], chars...)
	b.widths = make([]int, len(chars))
	b.matched = make([]bool, len(chars))
	for i, ch := range chars {
		b.widths[i] = cellWidth(ch)
	}
}

// SetCharMatched implements hint.Box.
func (b *Box) SetCharMatched(i int, matched bool) {
	if i < 0 || i >= len(b.matched) {
		return
	}
	b.matched[i] = matched
}

// MoveTo implements hint.Box.
func (b *Box) MoveTo(left, top float64) {
	b.left, b.top = left, top
}

// SetZOrder implements hint.Box.
func (b *Box) SetZOrder(z int) { b.z = z }

// SetVisible implements hint.Box.
func (b *Box) SetVisible(visible bool) { b.visible = visible }

// SetHighlighted implements hint.Box.
func (b *Box) SetHighlighted(highlighted bool) { b.highlighted = highlighted }

// Size implements hint.Box: display width in cells by one row.
func (b *Box) Size() (width, height float64) {
	w := 0
	for _, cw := range b.widths {
		w += cw
	}
	return float64(w), 1
}

// Remove implements hint.Box. Removing twice is a no-op.
func (b *Box) Remove() {
	if b.removed {
		return
	}
	b.removed = true
	b.canvas.remove(b)
}

// Kind returns the element type the box was created for.
func (b *Box) Kind() string { return b.kind }

// Text returns the hint characters joined.
func (b *Box) Text() string { return strings.Join(b.chars, "") }

// Origin returns the device position of the box.
func (b *Box) Origin() (left, top float64) { return b.left, b.top }

// ZOrder returns the box's draw order.
func (b *Box) ZOrder() int { return b.z }

// Visible reports whether the box is drawn.
func (b *Box) Visible() bool { return b.visible }

// Highlighted reports whether the box is highlighted.
func (b *Box) Highlighted() bool { return b.highlighted }
