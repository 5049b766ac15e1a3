package modulate

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/raster"
	"github.com/cwbudde/algo-lumamod/pix/wave"
)

// Option mutates modulator construction parameters.
type Option func(*Params) error

// WithAxis sets the modulation axis.
func WithAxis(axis Axis) Option {
	return func(p *Params) error {
		p.Axis = axis
		return nil
	}
}

// WithWaveform sets the periodic function.
func WithWaveform(t wave.Type) Option {
	return func(p *Params) error {
		p.Waveform = t
		return nil
	}
}

// WithPeriod sets the period in pixels.
func WithPeriod(period int) Option {
	return func(p *Params) error {
		p.Period = period
		return nil
	}
}

// Modulator scales pixel brightness by a periodic factor along one axis.
// It holds only immutable parameters and is safe for concurrent use.
type Modulator struct {
	params Params
}

// NewModulator creates a modulator with defaults (x, sine, 80) and optional
// overrides.
func NewModulator(opts ...Option) (*Modulator, error) {
	p := DefaultParams()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&p); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Modulator{params: p}, nil
}

// Params returns the modulation parameters.
func (m *Modulator) Params() Params { return m.params }

// Process returns a modulated copy of src.
func (m *Modulator) Process(src *raster.Buffer) (*raster.Buffer, error) {
	return Modulate(src, m.params)
}

// Modulate returns a new buffer where every sample at (row, col) is
// round(src/255 * factor * 255) with factor = (wave(coord/period*2π) + 1) / 2
// and coord = col for AxisX, row for AxisY. src is never modified.
//
// The factor vector is generated once along the axis and broadcast across
// the other dimension.
func Modulate(src *raster.Buffer, p Params) (*raster.Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst := &raster.Buffer{
		Height: src.Height,
		Width:  src.Width,
		Pix:    make([]uint8, len(src.Pix)),
	}

	length := src.Width
	if p.Axis == AxisY {
		length = src.Height
	}

	factors, err := wave.Generate(p.Waveform, length, p.Period)
	if err != nil {
		return nil, err
	}

	row := make([]float64, src.Stride())

	switch p.Axis {
	case AxisX:
		gain := wave.Repeat(factors, raster.Channels)
		for y := 0; y < src.Height; y++ {
			row = core.Widen(row, src.Row(y))
			vecmath.MulBlockInPlace(row, gain)
			core.Narrow(dst.Row(y), row)
		}
	case AxisY:
		for y := 0; y < src.Height; y++ {
			row = core.Widen(row, src.Row(y))
			floats.Scale(factors[y], row)
			core.Narrow(dst.Row(y), row)
		}
	}

	return dst, nil
}
