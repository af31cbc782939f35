// Package textmetrics measures rendered text, either in pixels for a given
// font face or in terminal cells.
package textmetrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultFontSize = 13
	DefaultDPI      = 72
)

// Font measures strings in pixels using an OpenType face.
type Font struct {
	mu   sync.Mutex // font.Face implementations are not safe for concurrent use
	face font.Face
}

// NewFont loads the bundled bold monospace face at size points and dpi.
// At 72 dpi one point is one pixel.
func NewFont(size, dpi float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be > 0, got %v", size)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse monospace bold face: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &Font{face: face}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// MustFont returns the shared 13px face and panics if the embedded font
// cannot be parsed.
func MustFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := NewFont(DefaultFontSize, DefaultDPI)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	})
	return defaultFont
}

// Measure returns the advance width of text in pixels.
func (f *Font) Measure(text string) float64 {
	f.mu.Lock()
	adv := font.MeasureString(f.face, text)
	f.mu.Unlock()
	return float64(adv) / 64
}
