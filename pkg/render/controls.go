package render

import (
	"tinyview/pkg/layout"
)

// Form-control drawing. Layout sized these boxes from the character
// estimate; here real string measurement decides how the label fits the
// box it was given.

func (r *Renderer) drawControl(n *layout.Node) {
	if n.Control == nil {
		return
	}
	switch n.Control.Kind {
	case layout.ControlButton, layout.ControlButtonInput:
		r.drawButton(n)
	case layout.ControlTextInput:
		r.drawTextInput(n)
	case layout.ControlCheckbox:
		r.drawCheckbox(n)
	case layout.ControlRadio:
		r.drawRadio(n)
	case layout.ControlSelect:
		r.drawSelect(n)
	}
}

func (r *Renderer) drawButton(n *layout.Node) {
	box := n.Box
	r.fillRect(box, 0.94, 0.94, 0.94)
	r.strokeRect(box, 0.6, 0.6, 0.6)

	label := n.Control.DisplayText
	if label == "" {
		return
	}

	r.context.SetRGB(0.2, 0.2, 0.2)
	r.loadFont(style{}, r.cfg.DefaultFontSize)
	width, _ := r.context.MeasureString(label)
	textX := box.X + (box.Width-width)/2
	textY := box.Y + (box.Height-r.cfg.DefaultFontSize)/2 + r.cfg.DefaultFontSize
	r.context.DrawString(label, textX, textY)
}

func (r *Renderer) drawTextInput(n *layout.Node) {
	box := n.Box
	r.fillRect(box, 1, 1, 1)
	r.strokeRect(box, 0, 0, 0)

	display := n.Control.DisplayText
	if display == "" {
		return
	}

	if n.Control.IsPlaceholder {
		r.context.SetRGB(0.53, 0.53, 0.53)
	} else {
		r.context.SetRGB(0, 0, 0)
	}
	r.loadFont(style{}, r.cfg.DefaultFontSize)

	available := box.Width - 2*r.cfg.Padding
	display = r.truncateToFit(display, available)
	r.context.DrawString(display, box.X+r.cfg.Padding, box.Y+r.cfg.Padding+r.cfg.DefaultFontSize*0.8)
}

// truncateToFit returns the rightmost portion of text that fits the
// available width, the way a real input field shows the tail of an
// overlong value. Binary search over suffix start positions.
func (r *Renderer) truncateToFit(s string, available float64) string {
	if w, _ := r.context.MeasureString(s); w <= available {
		return s
	}

	runes := []rune(s)
	lo, hi := 0, len(runes)
	best := len(runes)
	for lo <= hi {
		mid := (lo + hi) / 2
		w, _ := r.context.MeasureString(string(runes[mid:]))
		if w <= available {
			best = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return string(runes[best:])
}

func (r *Renderer) drawCheckbox(n *layout.Node) {
	box := n.Box
	r.fillRect(box, 1, 1, 1)
	r.strokeRect(box, 0, 0, 0)

	if !n.Control.Checked {
		return
	}
	// Checkmark as two strokes
	pad := 3.0
	r.context.SetRGB(0, 0, 0)
	r.context.SetLineWidth(2)
	r.context.DrawLine(box.X+pad, box.Y+box.Height/2, box.X+box.Width/2, box.Y+box.Height-pad)
	r.context.Stroke()
	r.context.DrawLine(box.X+box.Width/2, box.Y+box.Height-pad, box.X+box.Width-pad, box.Y+pad)
	r.context.Stroke()
}

func (r *Renderer) drawRadio(n *layout.Node) {
	box := n.Box
	radius := box.Width / 2
	cx := box.X + radius
	cy := box.Y + radius

	r.context.SetRGB(1, 1, 1)
	r.context.DrawCircle(cx, cy, radius)
	r.context.Fill()
	r.context.SetRGB(0, 0, 0)
	r.context.SetLineWidth(1)
	r.context.DrawCircle(cx, cy, radius)
	r.context.Stroke()

	if n.Control.Checked {
		r.context.DrawCircle(cx, cy, radius*0.6)
		r.context.Fill()
	}
}

func (r *Renderer) drawSelect(n *layout.Node) {
	box := n.Box
	r.fillRect(box, 1, 1, 1)
	r.strokeRect(box, 0.6, 0.6, 0.6)

	display := n.Control.DisplayText
	if display != "" {
		if n.Control.IsPlaceholder {
			r.context.SetRGB(0.6, 0.6, 0.6)
		} else {
			r.context.SetRGB(0.2, 0.2, 0.2)
		}
		r.loadFont(style{}, r.cfg.DefaultFontSize)
		padding := r.cfg.Padding * 2
		r.context.DrawString(display, box.X+padding, box.Y+padding+r.cfg.DefaultFontSize*0.8)
	}

	// Dropdown arrow
	arrowX := box.X + box.Width - 20
	arrowY := box.Y + box.Height/2
	r.context.SetRGB(0.4, 0.4, 0.4)
	r.context.MoveTo(arrowX, arrowY-3)
	r.context.LineTo(arrowX+8, arrowY-3)
	r.context.LineTo(arrowX+4, arrowY+3)
	r.context.ClosePath()
	r.context.Fill()
}
