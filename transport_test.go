package st7735

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

// levelPin records every level driven on a fake pin.
type levelPin struct {
	*gpiotest.Pin
	levels []gpio.Level
}

func newLevelPin(name string) *levelPin {
	return &levelPin{Pin: &gpiotest.Pin{N: name}}
}

func (p *levelPin) Out(l gpio.Level) error {
	p.levels = append(p.levels, l)
	return p.Pin.Out(l)
}

func writes(ops []conntest.IO) [][]byte {
	w := make([][]byte, len(ops))
	for i, op := range ops {
		w[i] = op.W
	}
	return w
}

func TestSPITransportChunking(t *testing.T) {
	rec := &spitest.Record{}
	s := &spiTransport{c: rec, dc: newLevelPin("DC"), maxTxSize: 4}

	if err := s.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}); err != nil {
		t.Fatal(err)
	}
	got := writes(rec.Ops)
	want := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10}}
	if len(got) != len(want) {
		t.Fatalf("got %d transfers, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("transfer[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// limitedConn advertises a transfer size limit.
type limitedConn struct {
	*spitest.Record
	max int
}

func (l *limitedConn) MaxTxSize() int { return l.max }

func TestSPITransportUsesConnLimit(t *testing.T) {
	rec := &spitest.Record{}
	s := newSPITransport(&limitedConn{Record: rec, max: 3}, newLevelPin("DC"), &Opts{})
	if s.maxTxSize != 3 {
		t.Fatalf("maxTxSize = %d, want 3", s.maxTxSize)
	}
	if err := s.Write(make([]byte, 7)); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 3 {
		t.Errorf("got %d transfers, want 3", len(rec.Ops))
	}
}

func TestSPITransportLines(t *testing.T) {
	dc, cs, rst, bl := newLevelPin("DC"), newLevelPin("CS"), newLevelPin("RST"), newLevelPin("BL")
	s := newSPITransport(&spitest.Record{}, dc, &Opts{CS: cs, RST: rst, BL: bl})

	steps := []func() error{
		func() error { return s.SetDC(true) },
		func() error { return s.SetDC(false) },
		s.Select,
		s.Deselect,
		func() error { return s.SetReset(false) },
		func() error { return s.SetReset(true) },
		func() error { return s.SetBacklight(true) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		pin  *levelPin
		want []gpio.Level
	}{
		{"dc", dc, []gpio.Level{gpio.High, gpio.Low}},
		{"cs active low", cs, []gpio.Level{gpio.Low, gpio.High}},
		{"rst", rst, []gpio.Level{gpio.Low, gpio.High}},
		{"bl", bl, []gpio.Level{gpio.High}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.pin.levels) != len(tt.want) {
				t.Fatalf("levels = %v, want %v", tt.pin.levels, tt.want)
			}
			for i := range tt.want {
				if tt.pin.levels[i] != tt.want[i] {
					t.Errorf("levels = %v, want %v", tt.pin.levels, tt.want)
				}
			}
		})
	}
	if !s.HasBacklight() {
		t.Error("HasBacklight() = false with a BL pin")
	}
}

func TestSPITransportOptionalLines(t *testing.T) {
	s := newSPITransport(&spitest.Record{}, newLevelPin("DC"), &Opts{})

	if err := s.Select(); err != nil {
		t.Errorf("Select() without CS error = %v", err)
	}
	if err := s.Deselect(); err != nil {
		t.Errorf("Deselect() without CS error = %v", err)
	}
	if err := s.SetReset(false); err != nil {
		t.Errorf("SetReset() without RST error = %v", err)
	}
	if s.HasBacklight() {
		t.Error("HasBacklight() = true without a BL pin")
	}
	if err := s.SetBacklight(true); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetBacklight() error = %v, want %v", err, ErrUnsupported)
	}
}

func TestNewSPIRequiresDC(t *testing.T) {
	if _, err := NewSPI(&spitest.Record{}, nil, nil); err == nil {
		t.Error("NewSPI without dc pin should fail")
	}
}

func TestNewSPI(t *testing.T) {
	rec := &spitest.Record{}
	dc, rst := newLevelPin("DC"), newLevelPin("RST")
	timing := Timing{ResetHold: time.Nanosecond, SoftReset: time.Nanosecond, SleepOut: time.Nanosecond}

	dev, err := NewSPI(rec, dc, &Opts{RST: rst, Timing: timing})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}
	if !dev.Initialized() {
		t.Error("NewSPI should return an initialized device")
	}

	want := [][]byte{
		{SWRESET},
		{SLPOUT},
		{COLMOD}, {0x05},
		{MADCTL}, {0xA8},
		{GMCTRP1}, defaultGammaPositive[:],
		{GMCTRN1}, defaultGammaNegative[:],
		{DISPON},
	}
	got := writes(rec.Ops)
	if len(got) != len(want) {
		t.Fatalf("got %d transfers, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("transfer[%d] = % X, want % X", i, got[i], want[i])
		}
	}

	wantReset := []gpio.Level{gpio.High, gpio.Low, gpio.High}
	if len(rst.levels) != len(wantReset) {
		t.Fatalf("reset levels = %v, want %v", rst.levels, wantReset)
	}
	for i := range wantReset {
		if rst.levels[i] != wantReset[i] {
			t.Errorf("reset levels = %v, want %v", rst.levels, wantReset)
		}
	}
	if dc.L != gpio.Low {
		t.Error("dc should be left in command mode after DISPON")
	}
}
