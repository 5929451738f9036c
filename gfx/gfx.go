// Package gfx draws shapes and text on an unbuffered RGB565 panel.
//
// Every primitive is turned into address windows and solid pixel bursts sent
// straight to the panel; nothing is kept in memory. Shapes that fall partly
// outside the surface are clipped silently.
package gfx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/st7735/rgb565"
	"periph.io/x/conn/v3/display"
)

// Panel is the protocol surface the renderer draws through. *st7735.Dev
// implements it.
type Panel interface {
	// Size returns the logical width and height for the current orientation.
	Size() (w, h int)
	// SetWindow selects the inclusive rectangle filled by following bursts.
	SetWindow(x0, y0, x1, y1 int) error
	// StreamPixels writes n pixels of color c into the window.
	StreamPixels(n int, c rgb565.Color) error
	// WritePixels writes raw big-endian RGB565 data into the window.
	WritePixels(p []byte) error

	SetInversion(on bool) error
	Inverted() bool
	SetBacklight(on bool) error
	Backlight() (on, ok bool)

	Halt() error
	String() string
}

// Display is the drawing surface. It holds no pixels, only the panel and a
// copy of its inversion and backlight state.
//
// Display implements display.Drawer.
type Display struct {
	p Panel

	inverted     bool
	backlight    bool
	hasBacklight bool
}

var _ display.Drawer = (*Display)(nil)

// New creates a Display drawing on p.
func New(p Panel) *Display {
	d := &Display{p: p, inverted: p.Inverted()}
	d.backlight, d.hasBacklight = p.Backlight()
	return d
}

// Size returns the surface width and height. It follows the panel
// orientation.
func (d *Display) Size() (w, h int) {
	return d.p.Size()
}

// Width returns the surface width.
func (d *Display) Width() int {
	w, _ := d.p.Size()
	return w
}

// Height returns the surface height.
func (d *Display) Height() int {
	_, h := d.p.Size()
	return h
}

// Bounds returns the surface as a rectangle anchored at the origin.
func (d *Display) Bounds() image.Rectangle {
	w, h := d.p.Size()
	return image.Rect(0, 0, w, h)
}

// ColorModel returns rgb565.Model.
func (d *Display) ColorModel() color.Model {
	return rgb565.Model
}

// Clear fills the whole surface with c.
func (d *Display) Clear(c rgb565.Color) error {
	w, h := d.p.Size()
	return d.FillRect(0, 0, w, h, c)
}

// DrawPixel sets one pixel. Pixels outside the surface are ignored.
func (d *Display) DrawPixel(x, y int, c rgb565.Color) error {
	if !(image.Point{X: x, Y: y}.In(d.Bounds())) {
		return nil
	}
	if err := d.p.SetWindow(x, y, x, y); err != nil {
		return err
	}
	return d.p.StreamPixels(1, c)
}

// FillRect fills the w by h rectangle at (x, y), clipped to the surface, with
// one window and one burst.
func (d *Display) FillRect(x, y, w, h int, c rgb565.Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	return d.fill(image.Rect(x, y, x+w, y+h), c)
}

// fill paints r clipped to the surface.
func (d *Display) fill(r image.Rectangle, c rgb565.Color) error {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	if err := d.p.SetWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}
	return d.p.StreamPixels(r.Dx()*r.Dy(), c)
}

// Invert turns color inversion on or off.
func (d *Display) Invert(on bool) error {
	if err := d.p.SetInversion(on); err != nil {
		return err
	}
	d.inverted = on
	return nil
}

// Inverted reports whether color inversion is on.
func (d *Display) Inverted() bool {
	return d.inverted
}

// SetBacklight switches the backlight. The panel's error is returned as-is
// when no backlight line is wired.
func (d *Display) SetBacklight(on bool) error {
	if err := d.p.SetBacklight(on); err != nil {
		return err
	}
	d.backlight, d.hasBacklight = on, true
	return nil
}

// Backlight returns the backlight state; ok is false when the panel has no
// backlight line.
func (d *Display) Backlight() (on, ok bool) {
	return d.backlight, d.hasBacklight
}

// Halt turns the panel off.
func (d *Display) Halt() error {
	return d.p.Halt()
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("gfx.Display{%s}", d.p)
}
