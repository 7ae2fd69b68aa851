// ABOUTME: Extracts clickable elements and their geometry from an HTML page
// ABOUTME: Geometry comes from inline absolute styles; iframe srcdoc documents add a frame offset

// Package dom is the geometry provider for hint markers. It reads an HTML
// page whose interactive elements carry inline absolute geometry and a
// data-hint attribute, and produces one Element per candidate.
package dom

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/pkg/hint"
)

// HintAttr is the attribute that carries an element's assigned hint.
const HintAttr = "data-hint"

// Element is one clickable candidate.
type Element struct {
	Kind  string    // semantic type: tag name, or ARIA role when set
	Hint  string    // assigned hint string
	Text  string    // collapsed text content or label
	Rect  hint.Rect // bounds in top-frame coordinates
	Shape hint.Shape
}

var clickableRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"checkbox": true,
	"radio":    true,
	"tab":      true,
	"menuitem": true,
	"option":   true,
	"switch":   true,
}

// Extract parses an HTML document and returns its clickable elements in
// document order.
func Extract(r io.Reader) ([]Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	var out []Element
	if err := walk(doc, hint.Offset{}, 0, &out); err != nil {
		return nil, err
	}
	for _, c := range hintCollisions(out) {
		if c[0] == c[1] {
			log.Warn("hint %q is assigned more than once; those elements cannot be selected", c[0])
			continue
		}
		log.Warn("hint %q is a prefix of %q; the shorter one cannot be selected", c[0], c[1])
	}
	return out, nil
}

// hintCollisions returns pairs of hints where the first equals or is a
// prefix of the second. Typing either leaves both candidates pending.
func hintCollisions(els []Element) [][2]string {
	hints := make([]string, len(els))
	for i, el := range els {
		hints[i] = el.Hint
	}
	slices.Sort(hints)
	var out [][2]string
	for i := 1; i < len(hints); i++ {
		// A prefix sorts directly before the strings it prefixes.
		if strings.HasPrefix(hints[i], hints[i-1]) {
			out = append(out, [2]string{hints[i-1], hints[i]})
		}
	}
	return out
}

// maxFrameDepth bounds srcdoc nesting.
const maxFrameDepth = 8

func walk(n *html.Node, frame hint.Offset, depth int, out *[]Element) error {
	if n.Type == html.ElementNode {
		if hidden(n) {
			return nil
		}
		if n.DataAtom == atom.Iframe {
			return walkFrame(n, frame, depth, out)
		}
		if kind, ok := clickable(n); ok {
			el, ok, err := element(n, kind, frame)
			if err != nil {
				return err
			}
			if ok {
				*out = append(*out, el)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := walk(c, frame, depth, out); err != nil {
			return err
		}
	}
	return nil
}

// walkFrame descends into an iframe's srcdoc, shifting the frame offset
// by the iframe's own position.
func walkFrame(n *html.Node, frame hint.Offset, depth int, out *[]Element) error {
	srcdoc, ok := attr(n, "srcdoc")
	if !ok {
		return nil
	}
	if depth >= maxFrameDepth {
		log.Warn("iframe nesting deeper than %d ignored", maxFrameDepth)
		return nil
	}
	box, ok, err := parseGeometry(n)
	if err != nil {
		return fmt.Errorf("iframe: %w", err)
	}
	if !ok {
		log.Debug("iframe without inline geometry skipped")
		return nil
	}
	inner, err := html.Parse(strings.NewReader(srcdoc))
	if err != nil {
		return fmt.Errorf("parsing iframe srcdoc: %w", err)
	}
	child := hint.Offset{Left: frame.Left + box.left, Top: frame.Top + box.top}
	return walk(inner, child, depth+1, out)
}

func element(n *html.Node, kind string, frame hint.Offset) (Element, bool, error) {
	h, _ := attr(n, HintAttr)
	if h == "" {
		log.Debug("<%s> without %s skipped", n.Data, HintAttr)
		return Element{}, false, nil
	}
	box, ok, err := parseGeometry(n)
	if err != nil {
		return Element{}, false, fmt.Errorf("<%s %s=%q>: %w", n.Data, HintAttr, h, err)
	}
	if !ok || box.width <= 0 || box.height <= 0 {
		log.Debug("<%s %s=%q> has no visible geometry", n.Data, HintAttr, h)
		return Element{}, false, nil
	}

	rect := hint.Rect{
		Left:   frame.Left + box.left,
		Top:    frame.Top + box.top,
		Right:  frame.Left + box.left + box.width,
		Bottom: frame.Top + box.top + box.height,
	}
	return Element{
		Kind: kind,
		Hint: h,
		Text: label(n),
		Rect: rect,
		Shape: hint.Shape{
			Area: box.width * box.height,
			NonCoveredPoint: hint.NonCoveredPoint{
				X:      box.left,
				Y:      box.top + box.height/2,
				Offset: frame,
			},
		},
	}, true, nil
}

// clickable reports whether n is an interactive element and its kind.
func clickable(n *html.Node) (string, bool) {
	if _, ok := attr(n, "disabled"); ok {
		return "", false
	}
	if role, ok := attr(n, "role"); ok && clickableRoles[strings.ToLower(role)] {
		return strings.ToLower(role), true
	}
	switch n.DataAtom {
	case atom.A:
		_, ok := attr(n, "href")
		return n.Data, ok
	case atom.Button, atom.Select, atom.Textarea, atom.Summary:
		return n.Data, true
	case atom.Input:
		t, _ := attr(n, "type")
		return n.Data, !strings.EqualFold(t, "hidden")
	}
	if _, ok := attr(n, "onclick"); ok {
		return n.Data, true
	}
	if v, ok := attr(n, "contenteditable"); ok && !strings.EqualFold(v, "false") {
		return n.Data, true
	}
	if v, ok := attr(n, "tabindex"); ok && strings.TrimSpace(v) != "-1" {
		return n.Data, true
	}
	return "", false
}

// hidden reports whether n is excluded from layout.
func hidden(n *html.Node) bool {
	if _, ok := attr(n, "hidden"); ok {
		return true
	}
	style, _ := attr(n, "style")
	decls := parseStyle(style)
	return decls["display"] == "none" || decls["visibility"] == "hidden"
}

// label returns the text a user would associate with n.
func label(n *html.Node) string {
	for _, name := range []string{"aria-label", "title", "value", "placeholder", "alt"} {
		if v, ok := attr(n, name); ok && strings.TrimSpace(v) != "" {
			return strings.Join(strings.Fields(v), " ")
		}
	}
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
