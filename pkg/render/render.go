// Package render rasterizes a layout tree into a pixel buffer. It consumes
// the tree the layout engine produced and never feeds measurements back:
// real glyph metrics are used here for centering and truncation only,
// while layout keeps its per-character estimate.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
	"tinyview/pkg/layout"
	"tinyview/pkg/text"
)

type Renderer struct {
	context *gg.Context
	cfg     config.Config
	fonts   text.FontConfig
}

func NewRenderer(width, height int, cfg config.Config) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		cfg:     cfg,
		fonts:   text.DefaultFontConfig(),
	}
}

// style accumulates the inline formatting inherited from ancestors while
// walking the tree.
type style struct {
	bold      bool
	italic    bool
	underline bool
	mono      bool
	link      bool
}

// Render draws the whole layout tree over a white background.
func (r *Renderer) Render(root *layout.Node) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, child := range root.Children {
		r.drawNode(child, style{})
	}
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered canvas to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) drawNode(n *layout.Node, st style) {
	if n.DOM != nil && n.DOM.Type == html.TextNode {
		r.drawTextLines(n, st)
		return
	}

	switch layout.KindFor(n.DOM.TagName) {
	case layout.KindBlock:
		if n.DOM.TagName == "blockquote" {
			r.drawBlockquoteBar(n.Box)
		}
	case layout.KindHeading:
		st.bold = true
	case layout.KindInline:
		switch n.DOM.TagName {
		case "b", "strong":
			st.bold = true
		case "i", "em":
			st.italic = true
		case "u":
			st.underline = true
		case "code":
			st.mono = true
		case "a":
			st.link = true
		}
	case layout.KindRule:
		r.drawRule(n.Box)
	case layout.KindPre:
		r.drawPre(n)
		return
	case layout.KindListItem:
		r.drawMarker(n)
	case layout.KindTable:
		r.drawTable(n)
	case layout.KindTableCell:
		if n.DOM.TagName == "th" {
			r.fillRect(n.Box, 0.94, 0.94, 0.94)
			st.bold = true
		}
	case layout.KindButton, layout.KindInput, layout.KindSelect:
		r.drawControl(n)
		return
	}

	for _, child := range n.Children {
		r.drawNode(child, st)
	}
}

// loadFont loads the face for a style at a size. Reports false when no
// font file is available; callers fall back to gg's built-in face, which
// keeps rendering usable on systems without the bundled fonts.
func (r *Renderer) loadFont(st style, fontSize float64) bool {
	path := r.fonts.FontPath(st.bold, st.mono)
	return r.context.LoadFontFace(path, fontSize) == nil
}

// drawTextLines draws a text node's wrapped lines, left-aligned inside
// its box. Heading text carries its own font size; everything else uses
// the default.
func (r *Renderer) drawTextLines(n *layout.Node, st style) {
	if len(n.Lines) == 0 {
		return
	}

	fontSize := n.FontSize
	if fontSize == 0 {
		fontSize = r.cfg.DefaultFontSize
	}

	if st.link {
		r.context.SetRGB(0, 0.4, 0.8)
	} else {
		r.context.SetRGB(0, 0, 0)
	}
	r.loadFont(st, fontSize)

	lineHeight := fontSize * r.cfg.LineHeight
	y := n.Box.Y
	for _, line := range n.Lines {
		if line != "" {
			// gg positions text by baseline
			textY := y + fontSize
			r.context.DrawString(line, n.Box.X, textY)

			if st.underline || st.link {
				width, _ := r.context.MeasureString(line)
				underlineY := textY + fontSize*0.1
				r.context.SetLineWidth(1)
				r.context.DrawLine(n.Box.X, underlineY, n.Box.X+width, underlineY)
				r.context.Stroke()
			}
		}
		y += lineHeight
	}
}

// drawBlockquoteBar draws the gray bar along a blockquote's left edge.
func (r *Renderer) drawBlockquoteBar(box layout.Box) {
	r.context.SetRGB(0.8, 0.8, 0.8)
	r.context.DrawRectangle(box.X-5, box.Y, 2, box.Height)
	r.context.Fill()
}

func (r *Renderer) drawRule(box layout.Box) {
	r.context.SetRGB(0.8, 0.8, 0.8)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Fill()
}

// drawMarker draws a list item's bullet or number to the left of its box.
func (r *Renderer) drawMarker(n *layout.Node) {
	if n.Marker == "" {
		return
	}
	r.context.SetRGB(0, 0, 0)
	r.loadFont(style{}, r.cfg.DefaultFontSize)
	r.context.DrawString(n.Marker, n.MarkerX, n.MarkerY+r.cfg.DefaultFontSize)
}

// drawPre draws preformatted text: a light background block with the
// lines inside it in the monospace face, whitespace intact.
func (r *Renderer) drawPre(n *layout.Node) {
	box := n.Box
	r.context.SetRGB(0.97, 0.97, 0.97)
	r.context.DrawRectangle(box.X-r.cfg.Padding, box.Y, box.Width+r.cfg.Padding, box.Height)
	r.context.Fill()
	r.context.SetRGB(0.88, 0.88, 0.88)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(box.X-r.cfg.Padding, box.Y, box.Width+r.cfg.Padding, box.Height)
	r.context.Stroke()

	r.context.SetRGB(0, 0, 0)
	r.loadFont(style{mono: true}, r.cfg.DefaultFontSize)

	lineHeight := r.cfg.DefaultFontSize * r.cfg.LineHeight
	y := box.Y + r.cfg.Margin
	for _, line := range n.Lines {
		if line != "" {
			r.context.DrawString(line, box.X+r.cfg.Padding, y+r.cfg.DefaultFontSize)
		}
		y += lineHeight
	}
}

// drawTable draws the grid: one horizontal line above the first row and
// below each row, one vertical line at each column edge taken from the
// first row's cells.
func (r *Renderer) drawTable(n *layout.Node) {
	var rows []*layout.Node
	for _, child := range n.Children {
		if child.DOM != nil && child.DOM.TagName == "tr" {
			rows = append(rows, child)
		}
	}
	if len(rows) == 0 {
		return
	}

	box := n.Box
	r.context.SetRGB(0, 0, 0)
	r.context.SetLineWidth(1)

	top := rows[0].Box.Y
	bottom := rows[len(rows)-1].Box.Y + rows[len(rows)-1].Box.Height

	ys := []float64{top}
	for _, row := range rows {
		ys = append(ys, row.Box.Y+row.Box.Height)
	}
	for _, y := range ys {
		r.context.DrawLine(box.X, y, box.X+box.Width, y)
		r.context.Stroke()
	}

	xs := []float64{box.X}
	for _, cell := range rows[0].Children {
		xs = append(xs, cell.Box.X+cell.Box.Width)
	}
	for _, x := range xs {
		r.context.DrawLine(x, top, x, bottom)
		r.context.Stroke()
	}
}

func (r *Renderer) fillRect(box layout.Box, red, green, blue float64) {
	r.context.SetRGB(red, green, blue)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Fill()
}

func (r *Renderer) strokeRect(box layout.Box, red, green, blue float64) {
	r.context.SetRGB(red, green, blue)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Stroke()
}
