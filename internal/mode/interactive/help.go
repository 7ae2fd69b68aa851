// ABOUTME: Renders the keybinding help overlay as Markdown with glamour
// ABOUTME: Caches the rendering per width since the help text only changes on reload

package interactive

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpRenderer renders help Markdown with a fixed glamour style.
type helpRenderer struct {
	style string
	cache map[int]string
	md    string
}

func newHelpRenderer(style, md string) *helpRenderer {
	return &helpRenderer{style: style, md: md, cache: make(map[int]string)}
}

// Render returns the styled help text wrapped at width.
func (r *helpRenderer) Render(width int) string {
	if cached, ok := r.cache[width]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return r.md
	}
	rendered, err := renderer.Render(r.md)
	if err != nil {
		return r.md
	}

	rendered = strings.TrimRight(rendered, "\n ")
	r.cache[width] = rendered
	return rendered
}
