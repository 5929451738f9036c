package st7735

import "time"

// ST7735 command opcodes.
const (
	NOP     = 0x00 // No operation
	SWRESET = 0x01 // Software reset
	RDDID   = 0x04 // Read display ID
	RDDST   = 0x09 // Read display status

	SLPIN  = 0x10 // Sleep in and booster off
	SLPOUT = 0x11 // Sleep out and booster on
	PTLON  = 0x12 // Partial mode on
	NORON  = 0x13 // Partial mode off (normal)

	INVOFF  = 0x20 // Display inversion off
	INVON   = 0x21 // Display inversion on
	GAMSET  = 0x26 // Gamma curve select
	DISPOFF = 0x28 // Display off
	DISPON  = 0x29 // Display on
	CASET   = 0x2A // Column address set
	RASET   = 0x2B // Row address set
	RAMWR   = 0x2C // Memory write
	RAMRD   = 0x2E // Memory read

	PTLAR  = 0x30 // Partial start/end address set
	MADCTL = 0x36 // Memory data access control
	COLMOD = 0x3A // Interface pixel format

	// Panel function commands.
	FRMCTR1 = 0xB1 // Frame rate control, normal mode (full colors)
	FRMCTR2 = 0xB2 // Frame rate control, idle mode (8 colors)
	FRMCTR3 = 0xB3 // Frame rate control, partial mode (full colors)
	INVCTR  = 0xB4 // Display inversion control

	PWCTR1 = 0xC0 // Power control 1
	PWCTR2 = 0xC1 // Power control 2
	PWCTR3 = 0xC2 // Power control 3, normal mode
	PWCTR4 = 0xC3 // Power control 4, idle mode
	PWCTR5 = 0xC4 // Power control 5, partial mode
	VMCTR1 = 0xC5 // VCOM control

	RDID1 = 0xDA // Read ID1
	RDID2 = 0xDB // Read ID2
	RDID3 = 0xDC // Read ID3
	RDID4 = 0xDD // Read ID4

	GMCTRP1 = 0xE0 // Gamma correction, positive polarity
	GMCTRN1 = 0xE1 // Gamma correction, negative polarity
)

// colorMode16 selects 16 bits per pixel (RGB565) in COLMOD.
const colorMode16 = 0x05

// Command is one step of a data-driven register setup: an opcode, its
// optional parameter bytes and the time to wait once both were sent.
type Command struct {
	Cmd   byte
	Data  []byte
	Delay time.Duration
}

// send writes the opcode, then its parameters as a separate data burst, then
// waits for the delay if any. Inversion commands in a setup list update the
// tracked state.
func (d *Dev) send(c Command) error {
	if err := d.SendCommand(c.Cmd); err != nil {
		return err
	}
	if len(c.Data) != 0 {
		if err := d.SendData(c.Data); err != nil {
			return err
		}
	}
	switch c.Cmd {
	case INVON:
		d.inverted = true
	case INVOFF:
		d.inverted = false
	}
	if c.Delay > 0 {
		d.t.Sleep(c.Delay)
	}
	return nil
}
