package wave

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lumamod/pix/core"
)

// Type identifies the periodic function behind a modulation factor.
type Type int

const (
	Sine Type = iota
	Cosine
)

// MinPeriod is the shortest period, in pixels, that Generate accepts.
const MinPeriod = 2

var typeNames = map[Type]string{
	Sine:   "sin",
	Cosine: "cos",
}

// String returns the short name used on forms and command lines.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a known waveform.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Parse maps "sin", "sine", "cos" or "cosine" (any case) to a Type.
func Parse(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sin", "sine":
		return Sine, nil
	case "cos", "cosine":
		return Cosine, nil
	}
	return 0, fmt.Errorf("wave: unknown waveform %q: %w", name, core.ErrInvalidParameter)
}

// Factor returns the brightness multiplier in [0, 1] at coordinate coord:
// (wave(coord / period * 2π) + 1) / 2.
func Factor(t Type, coord, period int) float64 {
	radians := float64(coord) / float64(period) * 2 * math.Pi

	var v float64
	if t == Cosine {
		v = math.Cos(radians)
	} else {
		v = math.Sin(radians)
	}

	return (v + 1) / 2
}

// Generate returns the factors for coordinates 0..length-1.
func Generate(t Type, length, period int) ([]float64, error) {
	if err := validate(t, length, period); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = Factor(t, i, period)
	}

	return out, nil
}

// Apply multiplies buf in place by the factors for coordinates 0..len(buf)-1.
func Apply(t Type, buf []float64, period int) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Generate(t, len(buf), period)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)
	return nil
}

// Repeat expands factors so each value covers n consecutive samples, for
// multiplying interleaved channel data.
func Repeat(factors []float64, n int) []float64 {
	if n <= 1 {
		return append([]float64(nil), factors...)
	}

	out := make([]float64, len(factors)*n)
	for i, f := range factors {
		for c := 0; c < n; c++ {
			out[i*n+c] = f
		}
	}
	return out
}

func validate(t Type, length, period int) error {
	if !t.Valid() {
		return fmt.Errorf("wave: unknown waveform %d: %w", int(t), core.ErrInvalidParameter)
	}
	if period < MinPeriod {
		return fmt.Errorf("wave: period must be >= %d pixels: %d: %w", MinPeriod, period, core.ErrInvalidParameter)
	}
	if length < 0 {
		return fmt.Errorf("wave: length must be >= 0: %d: %w", length, core.ErrInvalidParameter)
	}
	return nil
}
