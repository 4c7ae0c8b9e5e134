package layout

import (
	"tinyview/pkg/html"
)

// layoutText wraps a text node into maxWidth and advances the cursor by
// the wrapped height. The node's box takes the full maxWidth rather than
// the measured content width; the renderer draws lines left-aligned inside
// it, so the difference is not visible.
//
// Whitespace-only text yields nothing.
func (e *Engine) layoutText(n *html.Node, x, maxWidth float64) *Node {
	content := trimmedText(n)
	if content == "" {
		return nil
	}

	lines := WrapText(content, maxWidth, e.cfg.DefaultFontSize, e.measurer)
	height := float64(len(lines)) * e.lineHeight(e.cfg.DefaultFontSize)

	node := &Node{
		DOM:   n,
		Box:   Box{X: x, Y: e.currentY, Width: maxWidth, Height: height},
		Lines: lines,
	}
	e.currentY += height
	return node
}
