// ABOUTME: Minimal inline CSS parsing for absolute element geometry
// ABOUTME: Accepts px or unitless lengths for left, top, width, and height

package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// geometry is an element's box in its frame.
type geometry struct {
	left, top, width, height float64
}

// parseStyle splits a style attribute into lower-cased property → value.
func parseStyle(style string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.ToLower(strings.TrimSpace(val))
		if prop != "" {
			decls[prop] = val
		}
	}
	return decls
}

// parseGeometry reads left/top/width/height from n's style. ok is false
// when the element does not declare all four.
func parseGeometry(n *html.Node) (g geometry, ok bool, err error) {
	style, _ := attr(n, "style")
	decls := parseStyle(style)

	fields := []struct {
		name string
		dst  *float64
	}{
		{"left", &g.left},
		{"top", &g.top},
		{"width", &g.width},
		{"height", &g.height},
	}
	for _, f := range fields {
		v, present := decls[f.name]
		if !present {
			return geometry{}, false, nil
		}
		px, err := parseLength(v)
		if err != nil {
			return geometry{}, false, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = px
	}
	return g, true, nil
}

func parseLength(v string) (float64, error) {
	num := strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid length %q", v)
	}
	return f, nil
}
