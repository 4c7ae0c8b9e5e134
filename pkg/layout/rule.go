package layout

import (
	"tinyview/pkg/html"
)

// ruleThickness and ruleAdvance are fixed: a 2px bar with 10px of flow.
const (
	ruleThickness = 2
	ruleAdvance   = 10
)

// layoutRule lays out hr as a thin full-width bar.
func (e *Engine) layoutRule(n *html.Node, x float64) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: ruleThickness},
	}
	e.currentY += ruleAdvance
	return node
}
