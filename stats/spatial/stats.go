// Package spatial measures how brightness varies along one image axis.
//
// [Profile] averages luma across the other axis; [Calculate] finds the
// dominant spatial period of that profile from its spectrum. For an image
// modulated with period P along the same axis the dominant period is P.
package spatial

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/histogram"
	"github.com/cwbudde/algo-lumamod/pix/modulate"
	"github.com/cwbudde/algo-lumamod/pix/raster"
)

// Stats describes a brightness profile.
type Stats struct {
	Length  int
	FFTSize int // profile length rounded up to a power of two

	Mean float64
	Min  float64
	Max  float64
	// ModulationDepth is the Michelson contrast of the profile,
	// (max-min)/(max+min).
	ModulationDepth float64

	// DominantBin is the strongest non-DC bin, 0 for a flat profile.
	DominantBin int
	// DominantFrequency is in cycles per pixel, refined by parabolic
	// interpolation around DominantBin.
	DominantFrequency float64
	// DominantPeriod is 1/DominantFrequency in pixels, 0 for a flat profile.
	DominantPeriod float64
	// Purity is the share of AC spectral energy in the dominant bin and its
	// two neighbours, in [0, 1].
	Purity float64
}

// Profile returns the mean luma for every coordinate along axis: one value
// per column for AxisX, one per row for AxisY.
func Profile(buf *raster.Buffer, axis modulate.Axis) ([]float64, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if !axis.Valid() {
		return nil, fmt.Errorf("spatial: unknown axis %d: %w", int(axis), core.ErrInvalidParameter)
	}

	n, across := buf.Width, buf.Height
	if axis == modulate.AxisY {
		n, across = buf.Height, buf.Width
	}

	out := make([]float64, n)
	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		for x := 0; x < buf.Width; x++ {
			p := row[x*raster.Channels:]
			v := histogram.LumaOf(p[0], p[1], p[2])
			if axis == modulate.AxisX {
				out[x] += v
			} else {
				out[y] += v
			}
		}
	}

	floats.Scale(1/float64(across), out)
	return out, nil
}

// Calculate computes profile statistics. Profiles shorter than 2 yield
// zero-valued Stats.
func Calculate(profile []float64) (Stats, error) {
	n := len(profile)
	if n < 2 {
		return Stats{Length: n}, nil
	}

	s := Stats{
		Length:  n,
		FFTSize: nextPow2(n),
		Mean:    stat.Mean(profile, nil),
		Min:     floats.Min(profile),
		Max:     floats.Max(profile),
	}
	if sum := s.Max + s.Min; sum > 0 {
		s.ModulationDepth = (s.Max - s.Min) / sum
	}

	mag, err := magnitude(profile, s.Mean, s.FFTSize)
	if err != nil {
		return Stats{}, err
	}

	half := s.FFTSize / 2
	ac := mag[1 : half+1]

	var energy float64
	for _, m := range ac {
		energy += m * m
	}
	if energy <= 1e-18*float64(n) {
		return s, nil
	}

	k := floats.MaxIdx(ac) + 1
	s.DominantBin = k

	kf := float64(k)
	if k > 1 && k < half {
		alpha, beta, gamma := mag[k-1], mag[k], mag[k+1]
		if den := alpha - 2*beta + gamma; den != 0 {
			kf += 0.5 * (alpha - gamma) / den
		}
	}
	s.DominantFrequency = kf / float64(s.FFTSize)
	s.DominantPeriod = 1 / s.DominantFrequency

	var peak float64
	for i := k - 1; i <= k+1; i++ {
		if i >= 1 && i <= half {
			peak += mag[i] * mag[i]
		}
	}
	s.Purity = math.Min(1, peak/energy)

	return s, nil
}

// FromBuffer profiles buf along axis and computes its statistics.
func FromBuffer(buf *raster.Buffer, axis modulate.Axis) (Stats, error) {
	profile, err := Profile(buf, axis)
	if err != nil {
		return Stats{}, err
	}
	return Calculate(profile)
}

// magnitude returns |X[k]| of the mean-removed, zero-padded profile.
func magnitude(profile []float64, mean float64, size int) ([]float64, error) {
	in := make([]complex128, size)
	for i, v := range profile {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spatial: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spatial: fft: %w", err)
	}

	re := make([]float64, size)
	im := make([]float64, size)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, size)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
