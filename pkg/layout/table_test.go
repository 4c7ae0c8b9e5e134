package layout

import (
	"testing"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
)

func TestTable_ColumnWidthExample(t *testing.T) {
	// At x=10, viewport 800, padding 5: (800 - 20 - 10) / 2 = 385.
	doc, err := html.Parse(`<table><tr><td>A</td><td>B</td></tr></table>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	engine := NewEngine(config.Defaults())

	numCols, colWidth := engine.columnLayout(doc.Root.Children[0], 10)
	if numCols != 2 {
		t.Fatalf("numCols = %d, want 2", numCols)
	}
	if colWidth != 385 {
		t.Errorf("colWidth = %v, want 385", colWidth)
	}
}

func TestTable_ColumnCountFromFirstRowOnly(t *testing.T) {
	root := layoutSnippet(t, `<table>
		<tr><td>a</td><td>b</td></tr>
		<tr><td>c</td><td>d</td><td>dropped</td></tr>
		<tr><td>e</td></tr>
	</table>`)

	table := root.Children[0]
	if len(table.Children) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Children))
	}
	// Second row: the third cell is dropped.
	if got := len(table.Children[1].Children); got != 2 {
		t.Errorf("second row has %d cells, want 2", got)
	}
	// Third row: one cell, one blank column.
	if got := len(table.Children[2].Children); got != 1 {
		t.Errorf("third row has %d cells, want 1", got)
	}
}

func TestTable_CellsShareRowTop(t *testing.T) {
	root := layoutSnippet(t, `<table><tr>
		<td>short</td>
		<td>a much longer cell with enough words to wrap across several lines of the narrow column width</td>
	</tr></table>`)

	row := root.Children[0].Children[0]
	if len(row.Children) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(row.Children))
	}
	left, right := row.Children[0], row.Children[1]
	if left.Box.Y != right.Box.Y {
		t.Errorf("cells in one row must start at the same y: %v vs %v", left.Box.Y, right.Box.Y)
	}
	if left.Box.X >= right.Box.X {
		t.Errorf("cells must advance horizontally: %v then %v", left.Box.X, right.Box.X)
	}
}

func TestTable_RowHeightIsTallestCell(t *testing.T) {
	root := layoutSnippet(t, `<table><tr>
		<td>short</td>
		<td>a much longer cell with enough words to wrap across several lines of the narrow column width</td>
	</tr></table>`)

	row := root.Children[0].Children[0]
	tallest := 0.0
	for _, cell := range row.Children {
		if cell.Box.Height > tallest {
			tallest = cell.Box.Height
		}
	}
	if want := tallest + 2*5.0; row.Box.Height != want {
		t.Errorf("row height = %v, want tallest cell + 2*padding = %v", row.Box.Height, want)
	}
}

func TestTable_CursorAdvancesOncePerRow(t *testing.T) {
	doc, err := html.Parse(`<table><tr><td>a</td><td>b</td><td>c</td></tr></table>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	engine := NewEngine(config.Defaults())
	table := doc.Root.Children[0]
	row := table.Children[0]

	numCols, colWidth := engine.columnLayout(table, 10)
	before := engine.currentY
	rowNode := engine.layoutTableRow(row, 10, colWidth, numCols)
	after := engine.currentY

	// The per-cell rewind must not leak: the cursor moves exactly once,
	// by the row's height.
	if after-before != rowNode.Box.Height {
		t.Errorf("cursor moved %v, want row height %v", after-before, rowNode.Box.Height)
	}
}

func TestTable_EmptyCellStillHasHeight(t *testing.T) {
	root := layoutSnippet(t, `<table><tr><td></td><td>x</td></tr></table>`)

	row := root.Children[0].Children[0]
	empty := row.Children[0]
	if want := 16 * 1.5; empty.Box.Height != want {
		t.Errorf("empty cell height = %v, want one line %v", empty.Box.Height, want)
	}
}

func TestTable_RowMinimumHeight(t *testing.T) {
	root := layoutSnippet(t, `<table><tr><td></td></tr></table>`)

	row := root.Children[0].Children[0]
	if want := 16*1.5 + 2*5.0; row.Box.Height != want {
		t.Errorf("row height = %v, want min height + padding %v", row.Box.Height, want)
	}
}

func TestTable_NoRowsYieldsEmptyNode(t *testing.T) {
	root := layoutSnippet(t, `<table></table>`)

	if len(root.Children) != 1 {
		t.Fatalf("expected the table node, got %d", len(root.Children))
	}
	table := root.Children[0]
	if len(table.Children) != 0 || table.Box.Height != 0 {
		t.Errorf("empty table must yield an empty node, got %d children, height %v",
			len(table.Children), table.Box.Height)
	}
}

func TestTable_FirstRowWithoutCellsYieldsEmptyNode(t *testing.T) {
	root := layoutSnippet(t, `<table><tr></tr><tr><td>late</td></tr></table>`)

	table := root.Children[0]
	if len(table.Children) != 0 {
		t.Errorf("zero columns means no further processing, got %d children", len(table.Children))
	}
}

func TestTable_ThSizedLikeTd(t *testing.T) {
	thTree := layoutSnippet(t, `<table><tr><th>cell</th></tr></table>`)
	tdTree := layoutSnippet(t, `<table><tr><td>cell</td></tr></table>`)

	th := thTree.Children[0].Children[0].Children[0]
	td := tdTree.Children[0].Children[0].Children[0]
	if th.Box != td.Box {
		t.Errorf("th box %+v differs from td box %+v", th.Box, td.Box)
	}
}

func TestTable_TextWrapsToCellWidth(t *testing.T) {
	root := layoutSnippet(t, `<table><tr>
		<td>these words need enough combined length to exceed the usable single column width so the greedy
		wrapper is forced to break them into more than one line inside the cell</td>
	</tr></table>`)

	cell := root.Children[0].Children[0].Children[0]
	textNode := cell.Children[0]
	if len(textNode.Lines) < 2 {
		t.Errorf("text should wrap to the cell width, got lines %q", textNode.Lines)
	}
	if textNode.Box.Width >= 780 {
		t.Errorf("text width %v must be the cell's, not the viewport's", textNode.Box.Width)
	}
}
