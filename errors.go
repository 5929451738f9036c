package st7735

import (
	"errors"
	"fmt"
)

var (
	// ErrHardwareFault wraps every transport failure. The device drops back
	// to the uninitialized state and must be reset and initialized again.
	ErrHardwareFault = errors.New("st7735: hardware fault")

	// ErrNotInitialized is returned by pixel operations issued before Init
	// completed, or after a hardware fault or Halt.
	ErrNotInitialized = errors.New("st7735: not initialized")

	// ErrNotReset is returned by Init when HardReset was never called.
	ErrNotReset = errors.New("st7735: hard reset required before init")

	// ErrOutOfBounds is returned by SetWindow for rectangles that do not fit
	// the controller grid once margins are applied.
	ErrOutOfBounds = errors.New("st7735: window out of bounds")

	// ErrInvalidArgument is returned for orientation values outside 0..3 and
	// malformed pixel data.
	ErrInvalidArgument = errors.New("st7735: invalid argument")

	// ErrUnsupported is returned by backlight control when no backlight line
	// is wired.
	ErrUnsupported = errors.New("st7735: unsupported")
)

// fault marks the device uninitialized and wraps err as a hardware fault.
func (d *Dev) fault(op string, err error) error {
	d.state = stateUninitialized
	Logger().Warn("st7735: transport failure", "op", op, "err", err)
	return fmt.Errorf("%w: %s: %w", ErrHardwareFault, op, err)
}
