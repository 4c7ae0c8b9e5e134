package layout

import (
	"tinyview/pkg/html"
)

// tableRows returns the direct tr children of a table node.
func tableRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	for _, child := range n.Children {
		if child.TagName == "tr" {
			rows = append(rows, child)
		}
	}
	return rows
}

// isTableCell reports whether a node is a td or th.
func isTableCell(n *html.Node) bool {
	return n.TagName == "td" || n.TagName == "th"
}

// columnLayout computes the column count and the equal per-column width
// from the table's first row only. Later rows never change the column
// count: extra cells are dropped, missing cells leave blank columns.
// Returns numCols 0 when the table has no rows or the first row has no
// cells.
func (e *Engine) columnLayout(n *html.Node, x float64) (numCols int, colWidth float64) {
	rows := tableRows(n)
	if len(rows) == 0 {
		return 0, 0
	}
	for _, cell := range rows[0].Children {
		if isTableCell(cell) {
			numCols++
		}
	}
	if numCols == 0 {
		return 0, 0
	}
	tableWidth := e.viewportWidth - 2*x - 2*e.cfg.Padding
	return numCols, tableWidth / float64(numCols)
}

// layoutTable lays out a table: column sizing from the first row, then one
// row at a time. A table whose first row has no cells yields an empty node
// with no further processing.
func (e *Engine) layoutTable(n *html.Node, x float64) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY
	e.currentY += e.cfg.Margin

	numCols, colWidth := e.columnLayout(n, x)
	if numCols == 0 {
		return node
	}

	for _, row := range tableRows(n) {
		rowLayout := e.layoutTableRow(row, x, colWidth, numCols)
		if rowLayout != nil {
			node.AddChild(rowLayout)
		}
	}

	e.currentY += e.cfg.Margin
	node.Box.Height = e.currentY - startY

	return node
}

// layoutTableRow lays out one tr. Each cell starts from the row's own top
// (startY + padding) regardless of where the previous cell left the
// cursor: the cursor is saved, rewound, and restored around every cell.
// This is the one exception to cursor monotonicity, and it is invisible
// outside the row: the real cursor advances exactly once, by the height
// of the tallest cell plus the vertical padding.
func (e *Engine) layoutTableRow(n *html.Node, x float64, colWidth float64, numCols int) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: e.viewportWidth - 2*x, Height: 0},
	}

	startY := e.currentY
	rowHeight := 0.0

	currentX := x + e.cfg.Padding
	cellIndex := 0

	for _, child := range n.Children {
		if !isTableCell(child) || cellIndex >= numCols {
			continue
		}

		e.withCursorAt(startY+e.cfg.Padding, func() {
			cellLayout := e.layoutTableCell(child, currentX, colWidth-2*e.cfg.Padding)
			if cellLayout != nil {
				node.AddChild(cellLayout)
				cellHeight := e.currentY - startY - e.cfg.Padding
				if cellHeight > rowHeight {
					rowHeight = cellHeight
				}
			}
		})

		currentX += colWidth
		cellIndex++
	}

	minHeight := e.lineHeight(e.cfg.DefaultFontSize)
	if rowHeight < minHeight {
		rowHeight = minHeight
	}
	e.currentY = startY + rowHeight + 2*e.cfg.Padding
	node.Box.Height = rowHeight + 2*e.cfg.Padding

	return node
}

// withCursorAt runs fn with the cursor rewound to y, restoring the saved
// cursor on every exit path.
func (e *Engine) withCursorAt(y float64, fn func()) {
	saved := e.currentY
	e.currentY = y
	defer func() { e.currentY = saved }()
	fn()
}

// layoutTableCell lays out a td or th within the given content width.
// Text children wrap to the cell width instead of the viewport. An empty
// cell still takes one line of height so its row does not collapse.
func (e *Engine) layoutTableCell(n *html.Node, x float64, width float64) *Node {
	node := &Node{
		DOM: n,
		Box: Box{X: x, Y: e.currentY, Width: width, Height: 0},
	}

	startY := e.currentY

	for _, child := range n.Children {
		var childLayout *Node
		if child.Type == html.TextNode {
			childLayout = e.layoutText(child, x+e.cfg.Padding, width-2*e.cfg.Padding)
		} else {
			childLayout = e.layoutChild(child, x+e.cfg.Padding)
		}
		if childLayout != nil {
			node.AddChild(childLayout)
		}
	}

	if e.currentY == startY {
		e.currentY += e.lineHeight(e.cfg.DefaultFontSize)
	}

	node.Box.Height = e.currentY - startY

	return node
}
