package histogram

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bins is the number of histogram bins.
const Bins = 256

// Histogram is a brightness density over [0, 255].
type Histogram struct {
	// Density holds bin heights; sum(Density[i] * BinWidth()) == 1 unless
	// the histogram is empty.
	Density [Bins]float64
	// Edges holds the Bins+1 equally spaced bin boundaries 0 .. 255. The
	// last bin is closed.
	Edges [Bins + 1]float64

	Pixels int
	Mean   float64
	Median float64
	Peak   float64 // largest bin height
}

// BinWidth returns the width of one bin in brightness units.
func (h *Histogram) BinWidth() float64 { return 255.0 / Bins }

// Area returns the integral of the density, 1 for non-empty histograms.
func (h *Histogram) Area() float64 {
	return floats.Sum(h.Density[:]) * h.BinWidth()
}

// Density bins luma values into a normalized histogram. luma is not modified.
func Density(luma []float64) Histogram {
	var h Histogram
	floats.Span(h.Edges[:], 0, 255)

	h.Pixels = len(luma)
	if h.Pixels == 0 {
		return h
	}

	sorted := append([]float64(nil), luma...)
	sort.Float64s(sorted)

	// stat.Histogram counts dividers[i] <= x < dividers[i+1]; nudge the
	// top divider so 255 lands in the last bin.
	dividers := append([]float64(nil), h.Edges[:]...)
	dividers[Bins] = math.Nextafter(255, math.Inf(1))
	for i, v := range sorted {
		sorted[i] = math.Max(0, math.Min(v, 255))
	}

	stat.Histogram(h.Density[:], dividers, sorted, nil)
	floats.Scale(1/(float64(h.Pixels)*h.BinWidth()), h.Density[:])

	h.Mean = stat.Mean(sorted, nil)
	h.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	h.Peak = floats.Max(h.Density[:])

	return h
}
