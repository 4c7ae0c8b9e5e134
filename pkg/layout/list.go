package layout

import (
	"fmt"

	"tinyview/pkg/html"
)

// listIndent is how far list items shift right of their list.
const listIndent = 25

// markerOffset is how far the marker sits left of the item box.
const markerOffset = 20

// layoutList lays out ul and ol. Only li children participate; anything
// else nested directly under the list is skipped. Items are numbered with
// a 1-based running index, which ordered lists turn into "1." markers.
func (e *Engine) layoutList(n *html.Node, x float64) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY
	e.currentY += e.cfg.Margin

	ordered := n.TagName == "ol"
	index := 0
	for _, child := range n.Children {
		if child.TagName != "li" {
			continue
		}
		index++
		childLayout := e.layoutListItem(child, x+listIndent, index, ordered)
		if childLayout != nil {
			node.AddChild(childLayout)
		}
	}

	e.currentY += e.cfg.Margin
	node.Box.Height = e.currentY - startY

	return node
}

// layoutListItem lays out one li. index 0 means the item was reached
// outside a list and gets no marker. Children stay at the item's own x;
// the indent was already applied by the list. Items close with half a
// margin for tighter spacing than blocks.
func (e *Engine) layoutListItem(n *html.Node, x float64, index int, ordered bool) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY

	if index > 0 {
		marker := "•"
		if ordered {
			marker = fmt.Sprintf("%d.", index)
		}
		node.Marker = marker
		// The marker hangs outside the item box, nudged down to sit on
		// the first line of content.
		node.MarkerX = x - markerOffset
		node.MarkerY = e.currentY + e.cfg.DefaultFontSize*0.2
	}

	for _, child := range n.Children {
		childLayout := e.layoutChild(child, x)
		if childLayout != nil {
			node.AddChild(childLayout)
		}
	}

	e.currentY += e.cfg.Margin * 0.5
	node.Box.Height = e.currentY - startY

	return node
}
