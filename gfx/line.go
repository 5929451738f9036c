package gfx

import (
	"image"

	"github.com/flavioheleno/st7735/rgb565"
)

// DrawHLine draws w pixels to the right of (x, y) with a single burst.
func (d *Display) DrawHLine(x, y, w int, c rgb565.Color) error {
	if w <= 0 {
		return nil
	}
	return d.fill(image.Rect(x, y, x+w, y+1), c)
}

// DrawVLine draws h pixels below (x, y) with a single burst.
func (d *Display) DrawVLine(x, y, h int, c rgb565.Color) error {
	if h <= 0 {
		return nil
	}
	return d.fill(image.Rect(x, y, x+1, y+h), c)
}

// DrawLine draws a line between (x0, y0) and (x1, y1), both included.
//
// Axis-aligned lines are sent as one burst. Other lines are stepped with
// Bresenham's algorithm along the axis with the larger delta, one pixel per
// step, always starting from the endpoint with the lower coordinate on that
// axis so swapping the endpoints paints the same pixels.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c rgb565.Color) error {
	switch {
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		return d.DrawVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		return d.DrawHLine(x0, y0, x1-x0+1, c)
	}

	dx, dy := abs(x1-x0), abs(y1-y0)
	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		sy := 1
		if y1 < y0 {
			sy = -1
		}
		e := 2*dy - dx
		for x, y := x0, y0; x <= x1; x++ {
			if err := d.DrawPixel(x, y, c); err != nil {
				return err
			}
			if e >= 0 {
				y += sy
				e -= 2 * dx
			}
			e += 2 * dy
		}
		return nil
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	e := 2*dx - dy
	for x, y := x0, y0; y <= y1; y++ {
		if err := d.DrawPixel(x, y, c); err != nil {
			return err
		}
		if e >= 0 {
			x += sx
			e -= 2 * dy
		}
		e += 2 * dx
	}
	return nil
}

// DrawRect draws the outline of the w by h rectangle at (x, y) as four lines:
// top, right, bottom, left. Corners are painted twice.
func (d *Display) DrawRect(x, y, w, h int, c rgb565.Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	x1, y1 := x+w-1, y+h-1
	if err := d.DrawLine(x, y, x1, y, c); err != nil {
		return err
	}
	if err := d.DrawLine(x1, y, x1, y1, c); err != nil {
		return err
	}
	if err := d.DrawLine(x, y1, x1, y1, c); err != nil {
		return err
	}
	return d.DrawLine(x, y, x, y1, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
