// ABOUTME: Terminal cell-grid Surface for hint markers; boxes are composited by z-order
// ABOUTME: Box sizes are display cells measured per grapheme cluster with go-runewidth

// Package canvas renders hint marker boxes onto a grid of terminal cells.
// One device unit is one cell; a box is one row high and as wide as its
// hint's display width.
package canvas

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/hintmark/pkg/hint"
)

// Styles controls how hint characters are drawn.
type Styles struct {
	Pending   lipgloss.Style // not yet typed
	Matched   lipgloss.Style // already typed
	Highlight lipgloss.Style // every char of a highlighted marker
}

// DefaultStyles returns black-on-yellow hints with dimmed typed characters.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle().
		Background(lipgloss.Color("#FFD76E")).
		Foreground(lipgloss.Color("#302505")).
		Bold(true)
	return Styles{
		Pending:   base,
		Matched:   base.Foreground(lipgloss.Color("#D4AC3A")),
		Highlight: base.Background(lipgloss.Color("#A5E887")),
	}
}

// Canvas is a hint.Surface drawing into terminal cells.
type Canvas struct {
	styles Styles
	boxes  []*Box
	seq    int
}

// New creates an empty canvas.
func New(styles Styles) *Canvas {
	return &Canvas{styles: styles}
}

// NewBox implements hint.Surface.
func (c *Canvas) NewBox(kind string) hint.Box {
	c.seq++
	b := &Box{canvas: c, kind: kind, seq: c.seq, visible: true}
	c.boxes = append(c.boxes, b)
	return b
}

// Boxes returns the boxes currently attached, in creation order.
func (c *Canvas) Boxes() []*Box {
	return slices.Clone(c.boxes)
}

func (c *Canvas) remove(b *Box) {
	c.boxes = slices.DeleteFunc(c.boxes, func(o *Box) bool { return o == b })
}

// cell is one terminal cell. A wide grapheme occupies its head cell and
// one or more tail cells.
type cell struct {
	text  string
	style *lipgloss.Style
	tail  bool
}

// Render composites the visible boxes onto a cols x rows grid, lowest
// z-order first so higher boxes cover lower ones. Ties are drawn in
// creation order. Trailing empty cells of each row are trimmed.
func (c *Canvas) Render(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	order := slices.Clone(c.boxes)
	slices.SortStableFunc(order, func(a, b *Box) int {
		if n := cmp.Compare(a.z, b.z); n != 0 {
			return n
		}
		return cmp.Compare(a.seq, b.seq)
	})

	for _, b := range order {
		if !b.visible {
			continue
		}
		c.paint(grid, b)
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) paint(grid [][]cell, b *Box) {
	row := int(math.Round(b.top))
	if row < 0 || row >= len(grid) {
		return
	}
	cols := len(grid[row])
	col := int(math.Round(b.left))
	for i, ch := range b.chars {
		w := b.widths[i]
		if col < 0 {
			col += w
			continue
		}
		if col+w > cols {
			return
		}
		for k := 0; k < w; k++ {
			clearCell(grid[row], col+k)
		}
		style := c.styleFor(b, i)
		grid[row][col] = cell{text: ch, style: style}
		for k := 1; k < w; k++ {
			grid[row][col+k] = cell{tail: true}
		}
		col += w
	}
}

func (c *Canvas) styleFor(b *Box, i int) *lipgloss.Style {
	switch {
	case b.highlighted:
		return &c.styles.Highlight
	case b.matched[i]:
		return &c.styles.Matched
	default:
		return &c.styles.Pending
	}
}

// clearCell blanks the grapheme covering col so that a partly covered
// wide character does not leave a dangling half behind.
func clearCell(row []cell, col int) {
	head := col
	for head > 0 && row[head].tail {
		head--
	}
	if row[head].text == "" && !row[head].tail {
		return
	}
	row[head] = cell{text: " "}
	for k := head + 1; k < len(row) && row[k].tail; k++ {
		row[k] = cell{text: " "}
	}
}

func renderRow(row []cell) string {
	end := len(row)
	for end > 0 && row[end-1].text == "" && !row[end-1].tail {
		end--
	}
	var sb strings.Builder
	for _, c := range row[:end] {
		switch {
		case c.tail:
		case c.text == "":
			sb.WriteByte(' ')
		case c.style == nil:
			sb.WriteString(c.text)
		default:
			sb.WriteString(c.style.Render(c.text))
		}
	}
	return sb.String()
}

// cellWidth is the number of terminal cells a grapheme cluster occupies.
// Zero-width clusters still take one cell so every hint char is visible.
func cellWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
