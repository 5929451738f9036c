package gfx

import (
	"image"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/flavioheleno/st7735/rgb565"
)

// assertSymmetric checks that s is unchanged by mirroring across both axes
// through (cx, cy) and by swapping the axes.
func assertSymmetric(c *qt.C, s map[image.Point]bool, cx, cy int) {
	c.Helper()
	for p := range s {
		dx, dy := p.X-cx, p.Y-cy
		for _, m := range []image.Point{
			{cx - dx, cy + dy},
			{cx + dx, cy - dy},
			{cx + dy, cy + dx},
		} {
			c.Assert(s[m], qt.IsTrue, qt.Commentf("%v present, mirror %v missing", p, m))
		}
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	for r := 0; r <= 30; r++ {
		c := qt.New(t)

		p := newFakePanel(160, 128)
		c.Assert(New(p).DrawCircle(64, 64, r, rgb565.Cyan), qt.IsNil)

		s := p.set()
		assertSymmetric(c, s, 64, 64)
		c.Assert(s[image.Pt(64+r, 64)], qt.IsTrue)
		c.Assert(s[image.Pt(64, 64-r)], qt.IsTrue)
		for pt := range s {
			dx, dy := pt.X-64, pt.Y-64
			c.Assert(dx*dx+dy*dy <= r*r+r, qt.IsTrue, qt.Commentf("r=%d %v", r, pt))
			c.Assert(dx*dx+dy*dy >= r*r-2*r, qt.IsTrue, qt.Commentf("r=%d %v", r, pt))
		}
	}
}

func TestDrawCircleZeroRadius(t *testing.T) {
	c := qt.New(t)

	p := newFakePanel(160, 128)
	c.Assert(New(p).DrawCircle(10, 20, 0, rgb565.Cyan), qt.IsNil)
	c.Assert(p.set(), qt.DeepEquals, map[image.Point]bool{{10, 20}: true})
}

func TestDrawCircleNegativeRadius(t *testing.T) {
	c := qt.New(t)

	p := newFakePanel(160, 128)
	d := New(p)
	c.Assert(d.DrawCircle(10, 20, -1, rgb565.Cyan), qt.IsNil)
	c.Assert(d.FillCircle(10, 20, -1, rgb565.Cyan), qt.IsNil)
	c.Assert(p.windows, qt.HasLen, 0)
}

func TestDrawCircleClipped(t *testing.T) {
	c := qt.New(t)

	p := newFakePanel(160, 128)
	c.Assert(New(p).DrawCircle(0, 0, 10, rgb565.Cyan), qt.IsNil)
	for pt := range p.set() {
		c.Assert(pt.In(image.Rect(0, 0, 160, 128)), qt.IsTrue)
	}
	c.Assert(p.set()[image.Pt(10, 0)], qt.IsTrue)
}

func TestFillCircle(t *testing.T) {
	for _, r := range []int{1, 2, 5, 12, 30} {
		c := qt.New(t)

		p := newFakePanel(160, 128)
		c.Assert(New(p).FillCircle(64, 64, r, rgb565.Magenta), qt.IsNil)

		s := p.set()
		assertSymmetric(c, s, 64, 64)
		c.Assert(s[image.Pt(64, 64)], qt.IsTrue)
		for pt := range s {
			dx, dy := pt.X-64, pt.Y-64
			c.Assert(dx*dx+dy*dy <= r*r+r, qt.IsTrue, qt.Commentf("r=%d %v", r, pt))
		}

		// Filled: every outline pixel is covered, and rows have no holes.
		outline := newFakePanel(160, 128)
		c.Assert(New(outline).DrawCircle(64, 64, r, rgb565.Magenta), qt.IsNil)
		for pt := range outline.set() {
			c.Assert(s[pt], qt.IsTrue, qt.Commentf("r=%d outline %v not filled", r, pt))
		}
		for y := 64 - r; y <= 64+r; y++ {
			for x := 64; s[image.Pt(x, y)]; x++ {
				c.Assert(s[image.Pt(64-(x-64), y)], qt.IsTrue)
			}
		}

		// Spans are horizontal, one burst each.
		for _, w := range p.windows {
			c.Assert(w.Y0, qt.Equals, w.Y1)
		}
	}
}

func TestFillCircleZeroRadius(t *testing.T) {
	c := qt.New(t)

	p := newFakePanel(160, 128)
	c.Assert(New(p).FillCircle(10, 20, 0, rgb565.Magenta), qt.IsNil)
	c.Assert(p.set(), qt.DeepEquals, map[image.Point]bool{{10, 20}: true})
}
