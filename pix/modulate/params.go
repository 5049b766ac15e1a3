package modulate

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/wave"
)

// Axis selects which pixel coordinate drives the modulation.
type Axis int

const (
	// AxisX varies the factor with the column index.
	AxisX Axis = iota
	// AxisY varies the factor with the row index.
	AxisY
)

const (
	defaultAxis     = AxisX
	defaultWaveform = wave.Sine
	defaultPeriod   = 80
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Valid reports whether a is AxisX or AxisY.
func (a Axis) Valid() bool { return a == AxisX || a == AxisY }

// ParseAxis maps "x" or "y" (any case) to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("modulate: unknown axis %q: %w", name, core.ErrInvalidParameter)
}

// Params describes one modulation.
type Params struct {
	Axis     Axis
	Waveform wave.Type
	Period   int // pixels, >= wave.MinPeriod
}

// DefaultParams returns axis x, sine, period 80.
func DefaultParams() Params {
	return Params{
		Axis:     defaultAxis,
		Waveform: defaultWaveform,
		Period:   defaultPeriod,
	}
}

// Validate checks the axis, waveform and period.
func (p Params) Validate() error {
	if !p.Axis.Valid() {
		return fmt.Errorf("modulate: unknown axis %d: %w", int(p.Axis), core.ErrInvalidParameter)
	}
	if !p.Waveform.Valid() {
		return fmt.Errorf("modulate: unknown waveform %d: %w", int(p.Waveform), core.ErrInvalidParameter)
	}
	if p.Period < wave.MinPeriod {
		return fmt.Errorf("modulate: period must be >= %d pixels: %d: %w", wave.MinPeriod, p.Period, core.ErrInvalidParameter)
	}
	return nil
}

// String formats p as "axis=x wave=sin period=80".
func (p Params) String() string {
	return fmt.Sprintf("axis=%s wave=%s period=%d", p.Axis, p.Waveform, p.Period)
}
