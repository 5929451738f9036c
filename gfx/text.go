package gfx

import (
	"github.com/flavioheleno/st7735/font"
	"github.com/flavioheleno/st7735/rgb565"
)

// DrawChar draws ch with its top-left corner at (x, y). Each font pixel
// becomes an sx by sy block; scales below 1 count as 1. Code points the font
// does not cover draw nothing.
func (d *Display) DrawChar(x, y int, ch rune, f *font.Font, c rgb565.Color, sx, sy int) error {
	cols, ok := f.Glyph(ch)
	if !ok {
		return nil
	}
	sx, sy = max(sx, 1), max(sy, 1)
	scaled := sx > 1 || sy > 1

	px := x
	for _, col := range cols {
		py := y
		for row := 0; row < f.Height; row++ {
			if col&0x01 != 0 {
				var err error
				if scaled {
					err = d.FillRect(px, py, sx, sy, c)
				} else {
					err = d.DrawPixel(px, py, c)
				}
				if err != nil {
					return err
				}
			}
			py += sy
			col >>= 1
		}
		px += sx
	}
	return nil
}

// DrawString draws text starting at (x, y), scale times the font size. The
// pen advances one cell plus one pixel per rune; when the next cell would
// cross the right edge the pen returns to x on the next line.
func (d *Display) DrawString(x, y int, text string, f *font.Font, c rgb565.Color, scale int) error {
	if f == nil {
		return nil
	}
	scale = max(scale, 1)
	advance := scale*f.Width + 1
	width := d.Width()

	px := x
	for _, r := range text {
		if err := d.DrawChar(px, y, r, f, c, scale, scale); err != nil {
			return err
		}
		px += advance
		if px+advance > width {
			y += scale*f.Height + 1
			px = x
		}
	}
	return nil
}
