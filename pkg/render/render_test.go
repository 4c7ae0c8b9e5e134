package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
	"tinyview/pkg/layout"
)

func renderSnippet(t *testing.T, src string) *Renderer {
	t.Helper()
	doc, err := html.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cfg := config.Defaults()
	root := layout.NewEngine(cfg).ComputeLayout(doc)

	r := NewRenderer(cfg.ViewportWidth, cfg.MinHeight, cfg)
	r.Render(root)
	return r
}

func TestRender_WhiteBackground(t *testing.T) {
	r := renderSnippet(t, ``)

	img := r.Image()
	c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("background pixel = %+v, want white", c)
	}
}

func TestRender_TextDarkensPixels(t *testing.T) {
	r := renderSnippet(t, `<p>Hello World</p>`)

	// Text is drawn inside the paragraph's box: somewhere in the top-left
	// region a pixel should no longer be white.
	img := r.Image()
	found := false
	for y := 0; y < 80 && !found; y++ {
		for x := 0; x < 200 && !found; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no text pixels drawn")
	}
}

func TestRender_HorizontalRule(t *testing.T) {
	r := renderSnippet(t, `<hr>`)

	img := r.Image()
	found := false
	for y := 0; y < 40 && !found; y++ {
		for x := 200; x < 600 && !found; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				found = true
			}
		}
	}
	if !found {
		t.Error("rule not drawn")
	}
}

func TestRender_FullPageSmoke(t *testing.T) {
	// Every element kind on one page; the test is that nothing panics and
	// the canvas comes out non-blank.
	r := renderSnippet(t, `
		<h1>Title</h1>
		<p>Some <b>bold</b> and <i>italic</i> and <a href="#">linked</a> text.</p>
		<ul><li>one</li><li>two</li></ul>
		<ol><li>first</li></ol>
		<blockquote>quoted</blockquote>
		<pre>mono  spaced</pre>
		<hr>
		<table><tr><th>H</th><td>d</td></tr><tr><td>a</td><td>b</td></tr></table>
		<button>Press</button>
		<input type="text" placeholder="hint">
		<input type="checkbox" checked>
		<input type="radio">
		<select><option>pick</option></select>
	`)

	img := r.Image()
	found := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y += 7 {
		for x := bounds.Min.X; x < bounds.Max.X && !found; x += 7 {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				found = true
			}
		}
	}
	if !found {
		t.Error("page rendered blank")
	}
}

func TestSavePNG(t *testing.T) {
	r := renderSnippet(t, `<p>save me</p>`)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty file")
	}
}

func TestTruncateToFit(t *testing.T) {
	// With no font available MeasureString still reports widths from gg's
	// default face, so only check the invariants: the result is a suffix
	// of the input and never longer than it.
	r := NewRenderer(100, 100, config.Defaults())
	long := "a very long value that cannot possibly fit in a narrow box"

	got := r.truncateToFit(long, 40)
	if len(got) > len(long) {
		t.Fatalf("truncation grew the string: %q", got)
	}
	if got != "" && long[len(long)-len(got):] != got {
		t.Errorf("result %q is not a suffix of the input", got)
	}

	if short := r.truncateToFit("ab", 1000); short != "ab" {
		t.Errorf("short value truncated: %q", short)
	}
}
