// Package text provides the width-measuring strategies the layout engine
// is parameterized over: a constant per-character estimate and real font
// metrics. Both satisfy Measurer and are substitutable.
package text

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fogleman/gg"
)

// Measurer reports the width one line of text occupies at a font size.
type Measurer interface {
	Width(s string, fontSize float64) float64
}

// EstimateMeasurer approximates every glyph with a fixed advance. This is
// the layout-time default: cheap, deterministic, and independent of which
// fonts are installed.
type EstimateMeasurer struct {
	CharWidth float64
}

func (m EstimateMeasurer) Width(s string, fontSize float64) float64 {
	return float64(len([]rune(s))) * m.CharWidth
}

// FontConfig holds paths to font files used for measurement and rendering.
type FontConfig struct {
	Regular   string
	Bold      string
	Monospace string
}

// defaultFontsDir returns the fonts directory relative to the executable,
// falling back to the compile-time source location.
func defaultFontsDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "fonts")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "fonts")
}

// DefaultFontConfig returns a FontConfig pointing at the bundled fonts.
func DefaultFontConfig() FontConfig {
	dir := defaultFontsDir()
	return FontConfig{
		Regular:   filepath.Join(dir, "OpenSans-Regular.ttf"),
		Bold:      filepath.Join(dir, "OpenSans-Bold.ttf"),
		Monospace: filepath.Join(dir, "SourceCodePro-Regular.ttf"),
	}
}

// FontPath returns the font path for the given style combination.
func (fc FontConfig) FontPath(bold, mono bool) string {
	if mono && fc.Monospace != "" {
		return fc.Monospace
	}
	if bold && fc.Bold != "" {
		return fc.Bold
	}
	return fc.Regular
}

// FontMeasurer measures text with real glyph metrics through gg contexts,
// one cached per face and size so the font file is parsed once, not per
// call. When a font file cannot be loaded it degrades to a per-character
// estimate so layout still produces a usable tree.
type FontMeasurer struct {
	Fonts    FontConfig
	Fallback EstimateMeasurer

	mu       sync.Mutex
	contexts map[faceKey]*gg.Context
}

type faceKey struct {
	path string
	size float64
}

// NewFontMeasurer returns a FontMeasurer over the bundled fonts with the
// given estimate as its fallback.
func NewFontMeasurer(charWidth float64) *FontMeasurer {
	return &FontMeasurer{
		Fonts:    DefaultFontConfig(),
		Fallback: EstimateMeasurer{CharWidth: charWidth},
	}
}

// Width measures with the regular face.
func (m *FontMeasurer) Width(s string, fontSize float64) float64 {
	return m.WidthStyled(s, fontSize, false, false)
}

// WidthStyled measures with the face matching the style flags. gg contexts
// are not safe for concurrent use, so the lock covers the measurement as
// well as the cache lookup.
func (m *FontMeasurer) WidthStyled(s string, fontSize float64, bold, mono bool) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	dc, err := m.context(m.Fonts.FontPath(bold, mono), fontSize)
	if err != nil {
		return m.Fallback.Width(s, fontSize)
	}
	w, _ := dc.MeasureString(s)
	return w
}

// context returns the cached measuring context for a face, loading and
// caching it on first use. Callers must hold m.mu.
func (m *FontMeasurer) context(path string, fontSize float64) (*gg.Context, error) {
	key := faceKey{path: path, size: fontSize}
	if dc, ok := m.contexts[key]; ok {
		return dc, nil
	}
	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(path, fontSize); err != nil {
		return nil, err
	}
	if m.contexts == nil {
		m.contexts = make(map[faceKey]*gg.Context)
	}
	m.contexts[key] = dc
	return dc, nil
}
