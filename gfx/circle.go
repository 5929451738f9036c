package gfx

import "github.com/flavioheleno/st7735/rgb565"

// DrawCircle draws the outline of a circle of radius r centred on (x, y)
// using the midpoint algorithm: each step of one octant is mirrored into all
// eight. r == 0 paints the centre; a negative radius draws nothing.
func (d *Display) DrawCircle(x, y, r int, c rgb565.Color) error {
	if r < 0 {
		return nil
	}
	return midpoint(r, func(dx, dy int) error {
		for _, p := range [8][2]int{
			{x + dx, y + dy}, {x - dx, y + dy}, {x - dx, y - dy}, {x + dx, y - dy},
			{x + dy, y + dx}, {x - dy, y + dx}, {x - dy, y - dx}, {x + dy, y - dx},
		} {
			if err := d.DrawPixel(p[0], p[1], c); err != nil {
				return err
			}
		}
		return nil
	})
}

// FillCircle fills a circle of radius r centred on (x, y) with four
// horizontal spans per midpoint step.
func (d *Display) FillCircle(x, y, r int, c rgb565.Color) error {
	if r < 0 {
		return nil
	}
	return midpoint(r, func(dx, dy int) error {
		for _, s := range [4][3]int{
			{x - dy, x + dy, y + dx},
			{x - dy, x + dy, y - dx},
			{x - dx, x + dx, y + dy},
			{x - dx, x + dx, y - dy},
		} {
			if err := d.DrawLine(s[0], s[2], s[1], s[2], c); err != nil {
				return err
			}
		}
		return nil
	})
}

// midpoint walks one octant of a circle of radius r from (r, 0) while
// dx >= dy, with integer error terms only.
func midpoint(r int, step func(dx, dy int) error) error {
	dx, dy := r, 0
	xChange, yChange := 1-2*r, 1
	radiusError := 0
	for dx >= dy {
		if err := step(dx, dy); err != nil {
			return err
		}
		dy++
		radiusError += yChange
		yChange += 2
		if 2*radiusError+xChange > 0 {
			dx--
			radiusError += xChange
			xChange += 2
		}
	}
	return nil
}
