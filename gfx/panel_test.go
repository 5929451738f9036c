package gfx

import (
	"image"

	"github.com/flavioheleno/st7735/rgb565"
)

type window struct {
	X0, Y0, X1, Y1 int
}

type burst struct {
	N int
	C rgb565.Color
}

// fakePanel records windows and bursts and replays them onto a pixel map the
// way the controller fills a window: left to right, top to bottom.
type fakePanel struct {
	w, h int

	windows []window
	bursts  []burst
	raw     [][]byte
	pixels  map[image.Point]rgb565.Color

	cur      window
	pos      int
	overflow bool

	inverted     bool
	backlight    bool
	hasBacklight bool
	halted       bool

	err error // returned by SetWindow when set
}

func newFakePanel(w, h int) *fakePanel {
	return &fakePanel{w: w, h: h, pixels: map[image.Point]rgb565.Color{}}
}

func (p *fakePanel) Size() (int, int) { return p.w, p.h }

func (p *fakePanel) SetWindow(x0, y0, x1, y1 int) error {
	if p.err != nil {
		return p.err
	}
	p.cur = window{x0, y0, x1, y1}
	p.pos = 0
	p.windows = append(p.windows, p.cur)
	return nil
}

func (p *fakePanel) paint(c rgb565.Color) {
	w := p.cur.X1 - p.cur.X0 + 1
	h := p.cur.Y1 - p.cur.Y0 + 1
	if p.pos >= w*h {
		p.overflow = true
		return
	}
	p.pixels[image.Pt(p.cur.X0+p.pos%w, p.cur.Y0+p.pos/w)] = c
	p.pos++
}

func (p *fakePanel) StreamPixels(n int, c rgb565.Color) error {
	p.bursts = append(p.bursts, burst{n, c})
	for i := 0; i < n; i++ {
		p.paint(c)
	}
	return nil
}

func (p *fakePanel) WritePixels(b []byte) error {
	p.raw = append(p.raw, append([]byte(nil), b...))
	for i := 0; i+1 < len(b); i += 2 {
		p.paint(rgb565.Color(b[i])<<8 | rgb565.Color(b[i+1]))
	}
	return nil
}

func (p *fakePanel) SetInversion(on bool) error {
	p.inverted = on
	return nil
}

func (p *fakePanel) Inverted() bool { return p.inverted }

func (p *fakePanel) SetBacklight(on bool) error {
	if !p.hasBacklight {
		return errUnsupported
	}
	p.backlight = on
	return nil
}

func (p *fakePanel) Backlight() (bool, bool) { return p.backlight, p.hasBacklight }

func (p *fakePanel) Halt() error {
	p.halted = true
	return nil
}

func (p *fakePanel) String() string { return "fake" }

// set returns the painted coordinates.
func (p *fakePanel) set() map[image.Point]bool {
	s := make(map[image.Point]bool, len(p.pixels))
	for pt := range p.pixels {
		s[pt] = true
	}
	return s
}
