package st7735

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Transport is the bus the driver talks through: a chip-select bracketed
// byte channel plus the data/command, reset and optional backlight lines.
//
// The driver never interleaves bursts: every Select is matched by a Deselect
// on all exit paths.
type Transport interface {
	// Select asserts chip select.
	Select() error
	// Deselect releases chip select.
	Deselect() error
	// SetDC drives the data/command line: false selects command mode.
	SetDC(data bool) error
	// Write sends p while selected.
	Write(p []byte) error
	// SetReset drives the reset line. The line is active low.
	SetReset(high bool) error
	// SetBacklight drives the backlight line. It returns ErrUnsupported when
	// HasBacklight is false.
	SetBacklight(on bool) error
	// HasBacklight reports whether a backlight line is wired.
	HasBacklight() bool
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// spiTransport implements Transport on a periph.io SPI connection and GPIO
// pins.
type spiTransport struct {
	c  conn.Conn
	dc gpio.PinOut // Low for commands, high for data

	// Optional lines. A nil cs means the SPI controller drives chip select.
	cs  gpio.PinOut
	rst gpio.PinOut
	bl  gpio.PinOut

	maxTxSize int // Largest single Tx accepted by c
}

func newSPITransport(c conn.Conn, dc gpio.PinOut, opts *Opts) *spiTransport {
	// Use the connection's limit when it advertises one.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096
	}
	return &spiTransport{
		c:         c,
		dc:        dc,
		cs:        opts.CS,
		rst:       opts.RST,
		bl:        opts.BL,
		maxTxSize: maxTxSize,
	}
}

func (s *spiTransport) Select() error {
	if s.cs == nil {
		return nil
	}
	return s.cs.Out(gpio.Low)
}

func (s *spiTransport) Deselect() error {
	if s.cs == nil {
		return nil
	}
	return s.cs.Out(gpio.High)
}

func (s *spiTransport) SetDC(data bool) error {
	return s.dc.Out(gpio.Level(data))
}

// Write splits p into transfers no larger than the connection allows.
func (s *spiTransport) Write(p []byte) error {
	for len(p) != 0 {
		chunk := p
		if len(chunk) > s.maxTxSize {
			chunk = p[:s.maxTxSize]
		}
		if err := s.c.Tx(chunk, nil); err != nil {
			return err
		}
		p = p[len(chunk):]
	}
	return nil
}

func (s *spiTransport) SetReset(high bool) error {
	if s.rst == nil {
		return nil
	}
	return s.rst.Out(gpio.Level(high))
}

func (s *spiTransport) SetBacklight(on bool) error {
	if s.bl == nil {
		return ErrUnsupported
	}
	return s.bl.Out(gpio.Level(on))
}

func (s *spiTransport) HasBacklight() bool {
	return s.bl != nil
}

func (s *spiTransport) Sleep(d time.Duration) {
	time.Sleep(d)
}
