package layout

import (
	"strings"

	"tinyview/pkg/html"
)

// layoutPre lays out preformatted text. Wrapping is disabled entirely:
// the concatenated descendant text is split on explicit newlines only,
// keeping empty lines and interior whitespace exactly as parsed. Lines
// wider than the viewport overflow.
func (e *Engine) layoutPre(n *html.Node, x float64) *Node {
	content := n.TextContent()
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")

	maxWidth := e.viewportWidth - 2*x
	contentHeight := float64(len(lines)) * e.lineHeight(e.cfg.DefaultFontSize)
	totalHeight := contentHeight + 2*e.cfg.Margin

	node := &Node{
		DOM:   n,
		Box:   Box{X: x, Y: e.currentY, Width: maxWidth, Height: totalHeight},
		Lines: lines,
		Mono:  true,
	}
	e.currentY += totalHeight

	return node
}
