package st7735

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/st7735/rgb565"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Panel model (default: &Generic)
	Profile *Profile

	// Geometry overrides; zero keeps the profile value. Use a custom Profile
	// to force a margin to zero.
	LongEdge  int // Visible long edge in pixels
	ShortEdge int // Visible short edge in pixels
	RowMargin int // Offset added to every window y
	ColMargin int // Offset added to every window x

	// Rotation applied by Init (default: DefaultOrientation)
	Orientation *Orientation

	// Reset and init waits; zero fields use the profile's timing
	Timing Timing

	// SPI only: bus speed (default: 8MHz) and optional pins.
	Frequency physic.Frequency
	CS        gpio.PinOut // Chip select, nil if driven by the SPI controller
	RST       gpio.PinOut // Reset, nil if not wired
	BL        gpio.PinOut // Backlight, nil if not wired
}

// config is Opts with defaults applied and validated.
type config struct {
	profile              Profile
	long, short          int
	rowMargin, colMargin int
	orientation          Orientation
	timing               Timing
}

func (o *Opts) resolve() (config, error) {
	if o == nil {
		o = &Opts{}
	}
	p := Generic
	if o.Profile != nil {
		p = *o.Profile
	}
	c := config{
		profile:     p,
		long:        p.LongEdge,
		short:       p.ShortEdge,
		rowMargin:   p.RowMargin,
		colMargin:   p.ColMargin,
		orientation: DefaultOrientation,
		timing:      o.Timing.withDefaults(p.Timing),
	}
	if o.LongEdge != 0 {
		c.long = o.LongEdge
	}
	if o.ShortEdge != 0 {
		c.short = o.ShortEdge
	}
	if o.RowMargin != 0 {
		c.rowMargin = o.RowMargin
	}
	if o.ColMargin != 0 {
		c.colMargin = o.ColMargin
	}
	if o.Orientation != nil {
		c.orientation = *o.Orientation
	}

	if c.long <= 0 || c.short <= 0 || c.short > c.long {
		return c, fmt.Errorf("%w: panel edges %dx%d", ErrInvalidArgument, c.long, c.short)
	}
	if c.rowMargin < 0 || c.colMargin < 0 {
		return c, fmt.Errorf("%w: negative margin", ErrInvalidArgument)
	}
	// The glass plus margins must fit the grid in both portrait and landscape.
	if c.colMargin+c.long > p.GridLong || c.rowMargin+c.long > p.GridLong ||
		c.colMargin+c.short > p.GridShort || c.rowMargin+c.short > p.GridShort {
		return c, fmt.Errorf("%w: %dx%d panel with margins %d/%d exceeds %dx%d grid",
			ErrInvalidArgument, c.long, c.short, c.rowMargin, c.colMargin, p.GridLong, p.GridShort)
	}
	if !c.orientation.valid() {
		return c, fmt.Errorf("%w: orientation %d", ErrInvalidArgument, c.orientation)
	}
	return c, nil
}

type state uint8

const (
	stateUninitialized state = iota
	stateResetting
	stateActive
)

// maxBurstPixels bounds the scratch buffer used by StreamPixels.
const maxBurstPixels = 2048

// Dev is the device handle for the ST7735 display.
//
// A Dev is not safe for concurrent use; a multi-threaded application must
// serialize all calls on one Dev.
type Dev struct {
	t Transport

	// Panel geometry, fixed at construction
	profile              Profile
	long, short          int
	rowMargin, colMargin int
	timing               Timing
	initial              Orientation

	// State
	orientation Orientation
	inverted    bool
	backlight   bool
	state       state

	// Scratch buffers
	cmd [1]byte
	win [4]byte
	pix []byte
}

// New creates a device on an arbitrary transport. The device starts
// uninitialized: call HardReset then Init before drawing.
//
// opts can be nil to use defaults (Generic 160x128 panel).
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("st7735: transport is required")
	}
	c, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	return newDev(t, c), nil
}

func newDev(t Transport, c config) *Dev {
	return &Dev{
		t:           t,
		profile:     c.profile,
		long:        c.long,
		short:       c.short,
		rowMargin:   c.rowMargin,
		colMargin:   c.colMargin,
		timing:      c.timing,
		initial:     c.orientation,
		orientation: c.orientation,
	}
}

// NewSPI creates a new ST7735 device connected via SPI, resets it and runs
// the init sequence.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers at
// opts.Frequency. The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (Generic 160x128 panel, 8MHz).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("st7735: dc pin is required")
	}
	c, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Opts{}
	}

	f := opts.Frequency
	if f == 0 {
		f = 8 * physic.MegaHertz
	}
	pc, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7735: failed to connect: %w", err)
	}

	d := newDev(newSPITransport(pc, dc, opts), c)
	if err := d.HardReset(); err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// HardReset pulses the reset line high, low, high, holding each stage for
// Timing.ResetHold. It must precede Init.
func (d *Dev) HardReset() error {
	if err := d.t.SetDC(false); err != nil {
		return d.fault("dc", err)
	}
	for _, high := range []bool{true, false, true} {
		if err := d.t.SetReset(high); err != nil {
			return d.fault("reset", err)
		}
		d.t.Sleep(d.timing.ResetHold)
	}
	d.state = stateResetting
	d.inverted = false
	Logger().Debug("st7735: hard reset done", "hold", d.timing.ResetHold)
	return nil
}

// Init runs the power-on sequence: software reset, sleep out, panel setup,
// 16-bit pixel format, initial orientation, gamma tables and display on.
//
// Init may be called again on an active panel; it re-issues the whole
// sequence. Any transport failure leaves the device uninitialized.
func (d *Dev) Init() error {
	if d.state == stateUninitialized {
		return ErrNotReset
	}
	d.state = stateResetting
	log := Logger()

	log.Debug("st7735: init", "step", "swreset")
	if err := d.send(Command{Cmd: SWRESET, Delay: d.timing.SoftReset}); err != nil {
		return err
	}
	d.inverted = false

	log.Debug("st7735: init", "step", "sleep out")
	if err := d.send(Command{Cmd: SLPOUT, Delay: d.timing.SleepOut}); err != nil {
		return err
	}

	for _, c := range d.profile.Setup {
		if err := d.send(c); err != nil {
			return err
		}
	}

	log.Debug("st7735: init", "step", "pixel format")
	if err := d.send(Command{Cmd: COLMOD, Data: []byte{colorMode16}}); err != nil {
		return err
	}
	if err := d.SetOrientation(d.initial); err != nil {
		return err
	}

	log.Debug("st7735: init", "step", "gamma")
	if err := d.send(Command{Cmd: GMCTRP1, Data: d.profile.GammaPositive[:]}); err != nil {
		return err
	}
	if err := d.send(Command{Cmd: GMCTRN1, Data: d.profile.GammaNegative[:]}); err != nil {
		return err
	}

	if err := d.SendCommand(DISPON); err != nil {
		return err
	}
	d.state = stateActive
	log.Info("st7735: initialized", "panel", d.profile.Name, "orientation", d.orientation)
	return nil
}

// burst selects command or data mode and brackets write with chip select.
// Chip select is released on every path.
func (d *Dev) burst(data bool, write func() error) (err error) {
	if dcErr := d.t.SetDC(data); dcErr != nil {
		return d.fault("dc", dcErr)
	}
	if selErr := d.t.Select(); selErr != nil {
		return d.fault("select", selErr)
	}
	defer func() {
		if desErr := d.t.Deselect(); desErr != nil && err == nil {
			err = d.fault("deselect", desErr)
		}
	}()
	if wErr := write(); wErr != nil {
		return d.fault("write", wErr)
	}
	return nil
}

// SendCommand sends a single command byte.
func (d *Dev) SendCommand(cmd byte) error {
	d.cmd[0] = cmd
	return d.burst(false, func() error {
		return d.t.Write(d.cmd[:])
	})
}

// SendData sends p as one data burst.
func (d *Dev) SendData(p []byte) error {
	return d.burst(true, func() error {
		return d.t.Write(p)
	})
}

// StreamPixels writes n copies of c into the current window as a single
// burst: 2*n bytes, big-endian. n <= 0 is a no-op.
func (d *Dev) StreamPixels(n int, c rgb565.Color) error {
	if d.state != stateActive {
		return ErrNotInitialized
	}
	if n <= 0 {
		return nil
	}

	chunk := min(n, maxBurstPixels)
	if cap(d.pix) < chunk*2 {
		d.pix = make([]byte, chunk*2)
	}
	buf := d.pix[:chunk*2]
	b := c.Bytes()
	for i := 0; i < len(buf); i += 2 {
		buf[i], buf[i+1] = b[0], b[1]
	}

	return d.burst(true, func() error {
		for left := n; left > 0; left -= chunk {
			k := min(left, chunk)
			if err := d.t.Write(buf[:k*2]); err != nil {
				return err
			}
		}
		return nil
	})
}

// WritePixels writes raw big-endian RGB565 data into the current window as a
// single burst. The length of p must be even.
func (d *Dev) WritePixels(p []byte) error {
	if d.state != stateActive {
		return ErrNotInitialized
	}
	if len(p)%2 != 0 {
		return fmt.Errorf("%w: odd pixel data length %d", ErrInvalidArgument, len(p))
	}
	if len(p) == 0 {
		return nil
	}
	return d.SendData(p)
}

// SetWindow sets the inclusive rectangle that subsequent pixel bursts fill
// and starts a memory write.
//
// Coordinates are logical; the panel margins are added before the rectangle
// is checked against the controller grid.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) error {
	if d.state != stateActive {
		return ErrNotInitialized
	}
	if x0 < 0 || y0 < 0 || x0 > x1 || y0 > y1 {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrOutOfBounds, x0, y0, x1, y1)
	}
	x0, x1 = x0+d.colMargin, x1+d.colMargin
	y0, y1 = y0+d.rowMargin, y1+d.rowMargin
	gw, gh := d.grid()
	if x1 >= gw || y1 >= gh {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d) outside %dx%d grid", ErrOutOfBounds, x0, y0, x1, y1, gw, gh)
	}

	if err := d.sendAddress(CASET, x0, x1); err != nil {
		return err
	}
	if err := d.sendAddress(RASET, y0, y1); err != nil {
		return err
	}
	return d.SendCommand(RAMWR)
}

// sendAddress sends a column or row address pair, each as 16-bit big-endian.
func (d *Dev) sendAddress(cmd byte, start, end int) error {
	if err := d.SendCommand(cmd); err != nil {
		return err
	}
	d.win = [4]byte{byte(start >> 8), byte(start), byte(end >> 8), byte(end)}
	return d.SendData(d.win[:])
}

// SetOrientation rotates the panel.
func (d *Dev) SetOrientation(o Orientation) error {
	if !o.valid() {
		return fmt.Errorf("%w: orientation %d", ErrInvalidArgument, o)
	}
	if err := d.send(Command{Cmd: MADCTL, Data: []byte{d.profile.MADCTL[o]}}); err != nil {
		return err
	}
	d.orientation = o
	return nil
}

// Orientation returns the current rotation.
func (d *Dev) Orientation() Orientation {
	return d.orientation
}

// Size returns the logical width and height for the current orientation.
func (d *Dev) Size() (w, h int) {
	if d.orientation.Landscape() {
		return d.long, d.short
	}
	return d.short, d.long
}

// grid returns the controller grid as seen through the current orientation.
func (d *Dev) grid() (w, h int) {
	if d.orientation.Landscape() {
		return d.profile.GridLong, d.profile.GridShort
	}
	return d.profile.GridShort, d.profile.GridLong
}

// SetInversion turns color inversion on or off.
func (d *Dev) SetInversion(on bool) error {
	cmd := byte(INVOFF)
	if on {
		cmd = INVON
	}
	if err := d.SendCommand(cmd); err != nil {
		return err
	}
	d.inverted = on
	return nil
}

// Inverted reports whether color inversion is on.
func (d *Dev) Inverted() bool {
	return d.inverted
}

// SetBacklight switches the backlight. It returns ErrUnsupported when no
// backlight line is wired.
func (d *Dev) SetBacklight(on bool) error {
	if !d.t.HasBacklight() {
		return ErrUnsupported
	}
	if err := d.t.SetBacklight(on); err != nil {
		return d.fault("backlight", err)
	}
	d.backlight = on
	return nil
}

// Backlight returns the backlight state; ok is false when no backlight line
// is wired.
func (d *Dev) Backlight() (on, ok bool) {
	if !d.t.HasBacklight() {
		return false, false
	}
	return d.backlight, true
}

// SetDisplay turns the panel output on or off without touching its memory.
func (d *Dev) SetDisplay(on bool) error {
	cmd := byte(DISPOFF)
	if on {
		cmd = DISPON
	}
	return d.SendCommand(cmd)
}

// SetPartial enters or leaves partial display mode.
func (d *Dev) SetPartial(on bool) error {
	cmd := byte(NORON)
	if on {
		cmd = PTLON
	}
	return d.SendCommand(cmd)
}

// Initialized reports whether Init completed and no fault happened since.
func (d *Dev) Initialized() bool {
	return d.state == stateActive
}

// Halt turns the display off.
// After calling Halt, the device must be reset and initialized again.
func (d *Dev) Halt() error {
	d.state = stateUninitialized
	return d.SendCommand(DISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.Size()
	return fmt.Sprintf("st7735.Dev{%dx%d}", w, h)
}
