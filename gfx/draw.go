package gfx

import (
	"image"

	"github.com/flavioheleno/st7735/rgb565"
)

// Draw copies src onto the surface: dst is clipped to the surface and sp is
// the source point aligned with dst.Min. The clipped rectangle is sent as one
// window, row by row.
//
// *rgb565.Image sources are streamed without conversion.
func (d *Display) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))
	w, h := r.Dx(), r.Dy()

	if err := d.p.SetWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}

	// Fast path: rows of an rgb565.Image are already in wire format
	if img, ok := src.(*rgb565.Image); ok && image.Rect(sp.X, sp.Y, sp.X+w, sp.Y+h).In(img.Rect) {
		for y := 0; y < h; y++ {
			i := img.PixOffset(sp.X, sp.Y+y)
			if err := d.p.WritePixels(img.Pix[i : i+2*w]); err != nil {
				return err
			}
		}
		return nil
	}

	row := make([]byte, 2*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rgb565.Model.Convert(src.At(sp.X+x, sp.Y+y)).(rgb565.Color)
			row[2*x], row[2*x+1] = byte(c>>8), byte(c)
		}
		if err := d.p.WritePixels(row); err != nil {
			return err
		}
	}
	return nil
}
