// Package markdown renders markdown for the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MinWidth is the narrowest wrap width a Renderer uses.
const MinWidth = 24

// Renderer renders markdown at a wrap width and rebuilds its glamour renderer
// only when that width changes. The zero value is ready to use.
type Renderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// Render converts markdown into ANSI-styled text wrapped at width. Blank input
// renders as an empty string.
func (r *Renderer) Render(md string, width int) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}

	wrapWidth := max(width, MinWidth)
	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}

// Width returns the wrap width of the cached renderer, or 0 before the first render.
func (r *Renderer) Width() int {
	return r.width
}
