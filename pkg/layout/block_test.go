package layout

import (
	"reflect"
	"testing"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
)

func TestBlock_MarginsAndChildIndent(t *testing.T) {
	root := layoutSnippet(t, `<div><p>inner</p></div>`)

	div := root.Children[0]
	if div.Box.X != 10 || div.Box.Y != 0 {
		t.Errorf("div at (%v,%v), want (10,0)", div.Box.X, div.Box.Y)
	}
	if len(div.Children) != 1 {
		t.Fatalf("expected nested p, got %d children", len(div.Children))
	}
	p := div.Children[0]
	// Children are indented by the padding.
	if p.Box.X != 15 {
		t.Errorf("nested p at x=%v, want 15", p.Box.X)
	}
	// The div opens with a margin, so the p starts 10 below it.
	if p.Box.Y != 10 {
		t.Errorf("nested p at y=%v, want 10", p.Box.Y)
	}
}

func TestHeading_FontSizeOverride(t *testing.T) {
	root := layoutSnippet(t, `<h1>Title</h1>`)

	h1 := root.Children[0]
	if len(h1.Children) != 1 {
		t.Fatalf("expected heading text child, got %d", len(h1.Children))
	}
	title := h1.Children[0]
	if title.FontSize != 32 {
		t.Errorf("h1 text font size = %v, want 32", title.FontSize)
	}
	if want := 32 * 1.5; title.Box.Height != want {
		t.Errorf("h1 text height = %v, want %v", title.Box.Height, want)
	}
}

func TestHeading_UsesLargerMargins(t *testing.T) {
	root := layoutSnippet(t, `<h1>Title</h1>`)

	h1 := root.Children[0]
	// 1.5 margins above and below plus one overridden line.
	want := 2*1.5*10.0 + 32*1.5
	if h1.Box.Height != want {
		t.Errorf("h1 height = %v, want %v", h1.Box.Height, want)
	}
}

func TestHeading_Multipliers(t *testing.T) {
	cases := []struct {
		fragment string
		fontSize float64
	}{
		{`<h1>x</h1>`, 32},
		{`<h2>x</h2>`, 28},
		{`<h3>x</h3>`, 24},
		{`<h4>x</h4>`, 20},
		{`<h5>x</h5>`, 17.6},
		{`<h6>x</h6>`, 16},
	}
	for _, tc := range cases {
		root := layoutSnippet(t, tc.fragment)
		got := root.Children[0].Children[0].FontSize
		if got != tc.fontSize {
			t.Errorf("%s: font size = %v, want %v", tc.fragment, got, tc.fontSize)
		}
	}
}

func TestHeading_DropsNonTextChildren(t *testing.T) {
	root := layoutSnippet(t, `<h1>Title <b>bold</b></h1>`)

	h1 := root.Children[0]
	if len(h1.Children) != 1 {
		t.Fatalf("heading lays out direct text only, got %d children", len(h1.Children))
	}
	if !reflect.DeepEqual(h1.Children[0].Lines, []string{"Title"}) {
		t.Errorf("lines = %q, want [Title]", h1.Children[0].Lines)
	}
}

func TestInline_TransparentWrapper(t *testing.T) {
	root := layoutSnippet(t, `<div><span>word</span></div>`)

	div := root.Children[0]
	if len(div.Children) != 1 {
		t.Fatalf("expected span node, got %d", len(div.Children))
	}
	span := div.Children[0]
	if len(span.Children) != 1 {
		t.Fatalf("expected text under span, got %d", len(span.Children))
	}
	// No extra indent: the text sits at the span's own x.
	if span.Children[0].Box.X != 15 {
		t.Errorf("inline text at x=%v, want 15", span.Children[0].Box.X)
	}
}

func TestInline_EmptyPropagatesUpward(t *testing.T) {
	doc, err := html.Parse(`<span><b> </b></span>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	engine := NewEngine(config.Defaults())
	root := engine.ComputeLayout(doc)

	if len(root.Children) != 0 {
		t.Errorf("empty inline chain must yield no nodes, got %d", len(root.Children))
	}
	if engine.currentY != 0 {
		t.Errorf("empty inline chain must not move the cursor, got %v", engine.currentY)
	}
}

func TestInline_CursorUnaffectedByWrapperItself(t *testing.T) {
	// The inline wrapper adds no margins of its own; only its text child
	// moves the cursor.
	wrapped := layoutSnippet(t, `<span>word</span>`)
	bare := layoutSnippet(t, `word`)

	if wrapped.Box.Height != bare.Box.Height {
		t.Errorf("inline wrapper changed total height: %v vs %v", wrapped.Box.Height, bare.Box.Height)
	}
}
