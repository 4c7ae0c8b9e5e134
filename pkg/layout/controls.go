package layout

import (
	"strings"

	"tinyview/pkg/html"
)

// Form controls are fixed-size and estimate-based: widths come from the
// per-character estimate, never from real glyph metrics. The renderer
// applies real metrics later for centering and truncation only. The two
// deliberately disagree; unifying them is not a fix.

// checkboxSize is the fixed edge of checkbox and radio controls.
const checkboxSize = 16

// layoutButton lays out a <button>. A button with no text yields nothing.
func (e *Engine) layoutButton(n *html.Node, x float64) *Node {
	label := strings.TrimSpace(n.TextContent())
	if label == "" {
		return nil
	}

	buttonPadding := e.cfg.Padding * 2
	textWidth := float64(len(label)) * e.cfg.CharWidth
	width := textWidth + 2*buttonPadding
	height := e.lineHeight(e.cfg.DefaultFontSize) + 2*buttonPadding

	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: width, Height: height},
		Control: &Control{
			Kind:        ControlButton,
			DisplayText: label,
		},
	}
	e.currentY += height + e.cfg.Margin

	return node
}

// layoutInput lays out an <input>. The type attribute picks the shape;
// missing or unknown types default to a text field. Inputs always yield a
// node, even with empty display text.
func (e *Engine) layoutInput(n *html.Node, x float64) *Node {
	inputType, _ := n.GetAttribute("type")
	if inputType == "" {
		inputType = "text"
	}
	value, _ := n.GetAttribute("value")
	placeholder, _ := n.GetAttribute("placeholder")

	displayText := value
	if displayText == "" {
		displayText = placeholder
	}
	if displayText == "" && isButtonInput(inputType) {
		displayText = capitalize(inputType)
	}

	var width, height float64
	kind := ControlTextInput

	switch {
	case isTextInput(inputType):
		width = 200
		height = e.cfg.DefaultFontSize + 2*e.cfg.Padding
	case isButtonInput(inputType):
		kind = ControlButtonInput
		width = float64(len(displayText))*e.cfg.CharWidth + 2*e.cfg.Padding + 20
		height = e.cfg.DefaultFontSize + 2*e.cfg.Padding
	case inputType == "checkbox":
		kind = ControlCheckbox
		width, height = checkboxSize, checkboxSize
	case inputType == "radio":
		kind = ControlRadio
		width, height = checkboxSize, checkboxSize
	default:
		width = 100
		height = e.cfg.DefaultFontSize + 2*e.cfg.Padding
	}

	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: width, Height: height},
		Control: &Control{
			Kind:          kind,
			DisplayText:   displayText,
			IsPlaceholder: value == "",
			Checked:       n.HasAttribute("checked"),
		},
	}
	e.currentY += height + e.cfg.Margin

	return node
}

func isTextInput(t string) bool {
	switch t {
	case "text", "email", "password", "url", "search":
		return true
	}
	return false
}

func isButtonInput(t string) bool {
	switch t {
	case "submit", "button", "reset":
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// selectPlaceholder shows when a select has no options at all.
const selectPlaceholder = "Select..."

// selectMinWidth and selectArrowWidth size the dropdown box.
const (
	selectMinWidth   = 150
	selectArrowWidth = 20
)

// layoutSelect lays out a <select>. The display string is the explicitly
// selected option's text, else the first option's, else a placeholder.
// Options themselves never become layout nodes.
func (e *Engine) layoutSelect(n *html.Node, x float64) *Node {
	selectedText := selectedOptionText(n)
	displayText := selectedText
	if displayText == "" {
		displayText = selectPlaceholder
	}

	padding := e.cfg.Padding * 2
	textWidth := float64(len(displayText)) * e.cfg.CharWidth

	width := textWidth + 2*padding + selectArrowWidth
	if width < selectMinWidth {
		width = selectMinWidth
	}
	height := e.lineHeight(e.cfg.DefaultFontSize) + 2*padding

	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: width, Height: height},
		Control: &Control{
			Kind:          ControlSelect,
			DisplayText:   displayText,
			IsPlaceholder: selectedText == "",
		},
	}
	e.currentY += height + e.cfg.Margin

	return node
}

// selectedOptionText returns the text of the selected option, defaulting
// to the first option, or "" when the select has no options.
func selectedOptionText(n *html.Node) string {
	var first string
	haveFirst := false
	for _, child := range n.Children {
		if child.TagName != "option" {
			continue
		}
		label := strings.TrimSpace(child.TextContent())
		if child.HasAttribute("selected") {
			return label
		}
		if !haveFirst {
			first = label
			haveFirst = true
		}
	}
	return first
}
