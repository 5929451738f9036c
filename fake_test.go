package st7735

import (
	"errors"
	"fmt"
	"time"
)

var errBus = errors.New("bus error")

// frame is one chip-select bracketed burst.
type frame struct {
	data bool
	b    []byte
}

func (f frame) String() string {
	if f.data {
		return fmt.Sprintf("data % X", f.b)
	}
	return fmt.Sprintf("cmd % X", f.b)
}

// fakeTransport records everything the driver does to the bus.
type fakeTransport struct {
	events []string
	frames []frame
	sleeps []time.Duration
	resets []bool

	dc       bool
	selected bool
	writes   int

	hasBacklight bool
	backlight    bool

	failWrite int   // fail the nth Write (1-based), 0 never
	blErr     error // returned by SetBacklight
}

func (f *fakeTransport) Select() error {
	f.selected = true
	f.frames = append(f.frames, frame{data: f.dc})
	f.events = append(f.events, "select")
	return nil
}

func (f *fakeTransport) Deselect() error {
	f.selected = false
	f.events = append(f.events, "deselect")
	return nil
}

func (f *fakeTransport) SetDC(data bool) error {
	f.dc = data
	f.events = append(f.events, fmt.Sprintf("dc %t", data))
	return nil
}

func (f *fakeTransport) Write(p []byte) error {
	f.writes++
	f.events = append(f.events, "write")
	if f.failWrite != 0 && f.writes == f.failWrite {
		return errBus
	}
	if !f.selected {
		return errors.New("write while deselected")
	}
	last := &f.frames[len(f.frames)-1]
	last.b = append(last.b, p...)
	return nil
}

func (f *fakeTransport) SetReset(high bool) error {
	f.resets = append(f.resets, high)
	f.events = append(f.events, fmt.Sprintf("reset %t", high))
	return nil
}

func (f *fakeTransport) SetBacklight(on bool) error {
	if !f.hasBacklight {
		return ErrUnsupported
	}
	if f.blErr != nil {
		return f.blErr
	}
	f.backlight = on
	f.events = append(f.events, fmt.Sprintf("backlight %t", on))
	return nil
}

func (f *fakeTransport) HasBacklight() bool { return f.hasBacklight }

func (f *fakeTransport) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	f.events = append(f.events, "sleep")
}

// clear drops everything recorded so far.
func (f *fakeTransport) clear() {
	f.events, f.frames, f.sleeps, f.resets = nil, nil, nil, nil
	f.writes = 0
}

func cmd(c byte) frame { return frame{b: []byte{c}} }
func data(b ...byte) frame { return frame{data: true, b: b} }
func gamma(g [16]byte) frame { return data(g[:]...) }
