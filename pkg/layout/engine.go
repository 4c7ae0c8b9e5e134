// Package layout converts a parsed DOM tree into a positioned box tree.
//
// The engine performs one synchronous depth-first traversal in document
// order. Vertical position flows through a single write-cursor (currentY):
// each element reads the cursor for its own y, lays out its children, and
// leaves the cursor at the next free y. The only tolerated reordering is
// the per-cell cursor rewind inside a table row.
package layout

import (
	"strings"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
	"tinyview/pkg/text"
)

// Engine holds the state of one layout pass. An Engine must not be reused:
// construct one per ComputeLayout call. Concurrent passes over different
// documents each need their own Engine.
type Engine struct {
	cfg           config.Config
	viewportWidth float64
	currentY      float64
	measurer      text.Measurer
}

// NewEngine returns an engine for one layout pass over a viewport of
// cfg.ViewportWidth. Text is measured with the per-character estimate
// unless SetMeasurer installs real font metrics.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{
		cfg:           cfg,
		viewportWidth: float64(cfg.ViewportWidth),
		measurer:      text.EstimateMeasurer{CharWidth: cfg.CharWidth},
	}
}

// SetMeasurer replaces the text width strategy for this pass.
func (e *Engine) SetMeasurer(m text.Measurer) {
	e.measurer = m
}

// ComputeLayout lays out the whole document and returns the layout root.
// The root box's height is the final cursor value, i.e. the total document
// height; callers size their output canvas from it.
func (e *Engine) ComputeLayout(doc *html.Document) *Node {
	root := &Node{
		DOM: doc.Root,
		Box: Box{X: 0, Y: 0, Width: e.viewportWidth, Height: 0},
	}

	for _, child := range doc.Root.Children {
		childLayout := e.layoutChild(child, e.cfg.Margin)
		if childLayout != nil {
			root.AddChild(childLayout)
		}
	}

	root.Box.Height = e.currentY
	return root
}

// layoutChild dispatches one DOM node to its layout behavior. A nil return
// means the node contributes nothing to the tree (empty text, <br>, an
// inline wrapper whose children all vanished); any cursor movement it
// performed still stands.
func (e *Engine) layoutChild(n *html.Node, x float64) *Node {
	switch e.kindOf(n) {
	case KindText:
		return e.layoutText(n, x, e.viewportWidth-2*x)
	case KindHeading:
		return e.layoutHeading(n, x)
	case KindPre:
		return e.layoutPre(n, x)
	case KindButton:
		return e.layoutButton(n, x)
	case KindInput:
		return e.layoutInput(n, x)
	case KindSelect:
		return e.layoutSelect(n, x)
	case KindOption:
		// Options are consumed by their parent select.
		return nil
	case KindList:
		return e.layoutList(n, x)
	case KindListItem:
		return e.layoutListItem(n, x, 0, false)
	case KindInline:
		return e.layoutInline(n, x)
	case KindBreak:
		e.currentY += e.cfg.DefaultFontSize * 0.5
		return nil
	case KindRule:
		return e.layoutRule(n, x)
	case KindTable:
		return e.layoutTable(n, x)
	case KindTableRow:
		// A row outside a table gets a single nominal column.
		return e.layoutTableRow(n, x, fallbackColumnWidth, 1)
	case KindTableCell:
		return e.layoutTableCell(n, x, fallbackColumnWidth)
	default:
		return e.layoutBlock(n, x)
	}
}

// kindOf resolves a DOM node to its behavior. Text nodes have no tag.
func (e *Engine) kindOf(n *html.Node) Kind {
	if n.Type == html.TextNode {
		return KindText
	}
	return KindFor(n.TagName)
}

// fallbackColumnWidth is used when a tr or td appears outside a table and
// no column sizing pass ran.
const fallbackColumnWidth = 100

// lineHeight returns the height of one text line at the given font size.
func (e *Engine) lineHeight(fontSize float64) float64 {
	return fontSize * e.cfg.LineHeight
}

// trimmedText returns a DOM text node's content with surrounding
// whitespace removed. Whitespace-only text is invisible to layout.
func trimmedText(n *html.Node) string {
	return strings.TrimSpace(n.Text)
}
