package layout

import (
	"tinyview/pkg/html"
)

// layoutBlock lays out a block-level element (p, div, blockquote, and any
// unknown tag). The block spans the viewport minus its own x on both
// sides, opens and closes with a margin, and indents children by the
// padding. Its height is whatever the cursor moved while it was open.
func (e *Engine) layoutBlock(n *html.Node, x float64) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY
	e.currentY += e.cfg.Margin

	for _, child := range n.Children {
		childLayout := e.layoutChild(child, x+e.cfg.Padding)
		if childLayout != nil {
			node.AddChild(childLayout)
		}
	}

	e.currentY += e.cfg.Margin
	node.Box.Height = e.currentY - startY

	return node
}

// layoutHeading lays out h1..h6. Headings behave like blocks with one and
// a half margins, and they size their text children themselves: each
// direct text child gets the heading's font size and exactly one line
// height per the multiplier, overriding whatever the text's own wrap
// produced.
//
// Only direct text children are laid out. Inline markup inside a heading
// is dropped, matching the reference behavior.
func (e *Engine) layoutHeading(n *html.Node, x float64) *Node {
	multiplier := e.cfg.HeadingSize(n.TagName)
	fontSize := e.cfg.DefaultFontSize * multiplier

	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY
	e.currentY += e.cfg.Margin * 1.5

	for _, child := range n.Children {
		if child.Type != html.TextNode {
			continue
		}
		textLayout := e.layoutText(child, x, e.viewportWidth-2*x)
		if textLayout == nil {
			continue
		}
		height := e.lineHeight(fontSize)
		textLayout.Box.Height = height
		textLayout.FontSize = fontSize
		node.AddChild(textLayout)
		e.currentY = textLayout.Box.Y + height
	}

	e.currentY += e.cfg.Margin * 1.5
	node.Box.Height = e.currentY - startY

	return node
}

// layoutInline lays out an inline wrapper (b, i, u, strong, em, code,
// span, a). It is transparent: children stay at the same x, no margins,
// no cursor movement of its own. If every child yielded nothing the
// wrapper itself yields nothing, so emptiness propagates upward.
func (e *Engine) layoutInline(n *html.Node, x float64) *Node {
	node := &Node{DOM: n}

	for _, child := range n.Children {
		childLayout := e.layoutChild(child, x)
		if childLayout != nil {
			node.AddChild(childLayout)
		}
	}

	if len(node.Children) == 0 {
		return nil
	}
	return node
}
