package st7735

import (
	"fmt"
	"time"
)

// Orientation selects one of the four MADCTL rotations.
type Orientation uint8

const (
	Portrait0    Orientation = 0
	Landscape90  Orientation = 1
	Portrait180  Orientation = 2
	Landscape270 Orientation = 3
)

// DefaultOrientation is the rotation applied by Init when Opts does not name
// one: landscape, mirrored.
const DefaultOrientation = Landscape270

// Landscape reports whether o puts the panel's long edge horizontally.
func (o Orientation) Landscape() bool {
	return o == Landscape90 || o == Landscape270
}

func (o Orientation) valid() bool {
	return o <= Landscape270
}

func (o Orientation) String() string {
	switch o {
	case Portrait0:
		return "Portrait0"
	case Landscape90:
		return "Landscape90"
	case Portrait180:
		return "Portrait180"
	case Landscape270:
		return "Landscape270"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Timing holds the fixed waits of the reset and init sequences. The panel has
// no ready signal on this wiring, so these are plain sleeps; the required
// values vary between panel revisions.
type Timing struct {
	ResetHold time.Duration // Hold time of each of the three reset line stages
	SoftReset time.Duration // Wait after SWRESET
	SleepOut  time.Duration // Wait after SLPOUT, covers the controller self-test
}

// withDefaults fills zero fields from def.
func (t Timing) withDefaults(def Timing) Timing {
	if t.ResetHold == 0 {
		t.ResetHold = def.ResetHold
	}
	if t.SoftReset == 0 {
		t.SoftReset = def.SoftReset
	}
	if t.SleepOut == 0 {
		t.SleepOut = def.SleepOut
	}
	return t
}

// Profile describes one physical panel model as data: glass size, the
// controller grid it sits in, margins, rotation table, gamma calibration and
// model-specific register setup.
type Profile struct {
	Name string

	// Visible glass in pixels.
	LongEdge  int
	ShortEdge int

	// Controller addressable grid, long and short axis.
	GridLong  int
	GridShort int

	// Offsets added to every window coordinate: RowMargin to y, ColMargin to x.
	RowMargin int
	ColMargin int

	// MADCTL data byte for each Orientation.
	MADCTL [4]byte

	// Gamma correction tables sent with GMCTRP1 and GMCTRN1.
	GammaPositive [16]byte
	GammaNegative [16]byte

	// Register setup sent right after SLPOUT, before the pixel format.
	Setup []Command

	Timing Timing
}

var (
	defaultMADCTL = [4]byte{0xC8, 0x68, 0x08, 0xA8}

	defaultGammaPositive = [16]byte{
		0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
		0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
	}
	defaultGammaNegative = [16]byte{
		0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
		0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
	}
)

// Generic is a 160x128 ST7735 module with no margins and no extra register
// setup. It relies on the controller's power-on register defaults.
var Generic = Profile{
	Name:          "st7735",
	LongEdge:      160,
	ShortEdge:     128,
	GridLong:      162,
	GridShort:     132,
	MADCTL:        defaultMADCTL,
	GammaPositive: defaultGammaPositive,
	GammaNegative: defaultGammaNegative,
	Timing: Timing{
		ResetHold: 500 * time.Millisecond,
		SoftReset: 20 * time.Millisecond,
		SleepOut:  255 * time.Millisecond,
	},
}

// GreenTab is the 160x128 ST7735R "green tab" module. Its glass is offset by
// one row and two columns inside the controller grid.
var GreenTab = Profile{
	Name:          "st7735r-green",
	LongEdge:      160,
	ShortEdge:     128,
	GridLong:      162,
	GridShort:     132,
	RowMargin:     1,
	ColMargin:     2,
	MADCTL:        defaultMADCTL,
	GammaPositive: defaultGammaPositive,
	GammaNegative: defaultGammaNegative,
	Setup: []Command{
		{Cmd: FRMCTR1, Data: []byte{0x01, 0x2C, 0x2D}},
		{Cmd: FRMCTR2, Data: []byte{0x01, 0x2C, 0x2D}},
		{Cmd: FRMCTR3, Data: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{Cmd: INVCTR, Data: []byte{0x07}},
		{Cmd: PWCTR1, Data: []byte{0xA2, 0x02, 0x84}},
		{Cmd: PWCTR2, Data: []byte{0xC5}},
		{Cmd: PWCTR3, Data: []byte{0x0A, 0x00}},
		{Cmd: PWCTR4, Data: []byte{0x8A, 0x2A}},
		{Cmd: PWCTR5, Data: []byte{0x8A, 0xEE}},
		{Cmd: VMCTR1, Data: []byte{0x0E}},
		{Cmd: INVOFF},
	},
	Timing: Timing{
		ResetHold: 500 * time.Millisecond,
		SoftReset: 150 * time.Millisecond,
		SleepOut:  500 * time.Millisecond,
	},
}
