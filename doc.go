// Package st7735 controls an ST7735 TFT LCD controller via SPI.
//
// The ST7735 drives small 16-bit color panels, most commonly 160×128 pixels.
// This driver keeps no frame buffer: callers set an address window on the
// controller and stream RGB565 pixels straight into it. The gfx package
// builds drawing primitives (lines, rectangles, circles, text, image blits)
// on top of it.
//
// # Display Characteristics
//
// - 16-bit RGB565 color, big-endian on the wire
// - 162×132 controller grid; the visible glass sits inside it at a per-model margin
// - Four orientations selected through MADCTL
// - Display inversion, partial mode and display on/off
// - Optional backlight line
//
// # Hardware Connection
//
// Connect the ST7735 module to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	A0/DC       → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//	RESET       → GPIO passed as Opts.RST
//	LED/BL      → Optional: GPIO passed as Opts.BL
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/st7735"
//		"github.com/flavioheleno/st7735/font"
//		"github.com/flavioheleno/st7735/gfx"
//		"github.com/flavioheleno/st7735/rgb565"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device; NewSPI resets the panel and runs the init sequence
//		dev, _ := st7735.NewSPI(spiBus, gpioreg.ByName("GPIO24"), &st7735.Opts{
//			Profile: &st7735.GreenTab,
//			RST:     gpioreg.ByName("GPIO25"),
//		})
//		defer dev.Halt()
//
//		d := gfx.New(dev)
//		d.Clear(rgb565.Black)
//		d.DrawCircle(80, 64, 30, rgb565.Yellow)
//		d.DrawString(4, 4, "hello", font.Sys5x8, rgb565.White, 2)
//	}
//
// # Panel Profiles
//
// Panel models differ in glass offset, register setup and timing. These are
// described by a Profile value; Generic and GreenTab are built in. Opts can
// override the edges, margins and timings of the selected profile.
//
// # Lifecycle
//
// A Dev created with New starts uninitialized. HardReset pulses the reset
// line, Init runs the power-on sequence; only then do SetWindow and the pixel
// operations succeed. Any transport failure is reported as ErrHardwareFault
// and drops the device back to uninitialized.
//
// # Custom Transports
//
// New accepts any Transport, which lets the driver run over bit-banged GPIO
// or be exercised in tests without hardware.
//
// # Logging
//
// The driver is silent by default. SetLogger installs a log/slog logger that
// receives init steps and transport failures.
//
// # Compatibility with periph.io
//
// gfx.Display implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
package st7735
