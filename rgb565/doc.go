// Package rgb565 provides the 16-bit color format of the ST7735 controller.
//
// A Color packs 5 bits of red, 6 bits of green and 5 bits of blue, most
// significant bits first. On the wire each pixel is two bytes, big-endian.
//
// Packing layout:
//
//	bit:  15 .. 11 | 10 .. 5 | 4 .. 0
//	      red      | green   | blue
//
// This package provides:
//
// - Color: a packed RGB565 value and the RGB packing function
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image holding big-endian RGB565 pixels, ready to stream
//
// Example usage:
//
//	// Pack 8-bit channels; the low bits are dropped.
//	orange := rgb565.RGB(0xFF, 0xA5, 0x00)
//
//	// Draw into an image and stream it as-is.
//	img := rgb565.NewImage(image.Rect(0, 0, 32, 32))
//	draw.Draw(img, img.Bounds(), image.NewUniform(orange), image.Point{}, draw.Src)
package rgb565
