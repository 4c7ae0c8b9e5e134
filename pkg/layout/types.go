package layout

import (
	"tinyview/pkg/html"
)

// Box is a positioned rectangle in the single document coordinate space.
// Width and height may be zero for empty content; none of the fields are
// ever negative.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Node is a node in the layout tree. It mirrors a DOM node, owns its Box
// and its children, and carries the sparse per-kind annotations the
// renderer consumes. A node is built during one layout pass and never
// modified afterward.
type Node struct {
	DOM      *html.Node
	Box      Box
	Children []*Node

	// Wrapped text lines. Only set on text nodes and <pre>.
	Lines []string

	// Font size override for heading text. Zero means the default size.
	FontSize float64

	// Monospace rendering hint, set by <pre>.
	Mono bool

	// List item marker ("•" or "1.") drawn to the left of the item box.
	Marker           string
	MarkerX, MarkerY float64

	// Form-control annotations. Nil for everything else.
	Control *Control
}

// AddChild appends a child node.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Control carries what the renderer needs to draw a form control.
type Control struct {
	Kind          ControlKind
	DisplayText   string
	IsPlaceholder bool
	Checked       bool
}

type ControlKind int

const (
	ControlButton ControlKind = iota
	ControlTextInput
	ControlButtonInput
	ControlCheckbox
	ControlRadio
	ControlSelect
)
