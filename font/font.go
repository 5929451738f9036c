// Package font defines the bitmap font format consumed by the gfx renderer.
//
// Glyphs are stored column by column: one byte per column, bit i (least
// significant first) set when the pixel on row i is lit. Fonts are therefore
// at most 8 pixels tall. A font covers one contiguous range of code points.
package font

import (
	"errors"
	"fmt"
)

// Font is an immutable column-major bitmap font.
type Font struct {
	Start  rune   // First code point
	End    rune   // Last code point, inclusive
	Width  int    // Columns per glyph
	Height int    // Rows per glyph, at most 8
	Data   []byte // Width bytes per glyph, glyphs in code point order
}

// Glyph returns the columns of r. ok is false when r is outside the font's
// range or the table is too short to hold it.
func (f *Font) Glyph(r rune) (cols []byte, ok bool) {
	if f == nil || r < f.Start || r > f.End || f.Width <= 0 {
		return nil, false
	}
	i := int(r-f.Start) * f.Width
	if i+f.Width > len(f.Data) {
		return nil, false
	}
	return f.Data[i : i+f.Width], true
}

// Has reports whether r is covered by the font.
func (f *Font) Has(r rune) bool {
	_, ok := f.Glyph(r)
	return ok
}

// Validate checks that the font is well formed. The renderer does not call
// it; it is meant for font authors and loaders.
func (f *Font) Validate() error {
	if f == nil {
		return errors.New("font: nil font")
	}
	if f.End < f.Start {
		return fmt.Errorf("font: empty range %#x..%#x", f.Start, f.End)
	}
	if f.Width <= 0 {
		return fmt.Errorf("font: invalid width %d", f.Width)
	}
	if f.Height <= 0 || f.Height > 8 {
		return fmt.Errorf("font: height %d outside 1..8", f.Height)
	}
	if want := int(f.End-f.Start+1) * f.Width; len(f.Data) != want {
		return fmt.Errorf("font: %d bytes of glyph data, want %d", len(f.Data), want)
	}
	return nil
}
