package luma

import (
	"math"

	"github.com/cwbudde/algo-lumamod/pix/histogram"
	"github.com/cwbudde/algo-lumamod/pix/raster"
)

// Stats holds brightness statistics of an image.
type Stats struct {
	Pixels   int
	Mean     float64
	Min      float64
	MinPos   int // row-major pixel index
	Max      float64
	MaxPos   int
	Range    float64 // max - min
	RMS      float64
	Variance float64 // population variance
	StdDev   float64 // RMS contrast
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Contrast float64 // Michelson contrast (max-min)/(max+min), 0 for black images
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the higher-order moments.
func Calculate(luma []float64) Stats {
	s := NewStreamingStats()
	s.Update(luma)
	return s.Result()
}

// FromBuffer computes the statistics of buf's luma without materializing the
// luma array.
func FromBuffer(buf *raster.Buffer) (Stats, error) {
	if err := buf.Validate(); err != nil {
		return Stats{}, err
	}

	s := NewStreamingStats()
	row := make([]float64, buf.Width)
	for y := 0; y < buf.Height; y++ {
		pix := buf.Row(y)
		for x := range row {
			p := pix[x*raster.Channels:]
			row[x] = histogram.LumaOf(p[0], p[1], p[2])
		}
		s.Update(row)
	}
	return s.Result(), nil
}

// Mean returns the average brightness using Kahan summation.
func Mean(luma []float64) float64 {
	if len(luma) == 0 {
		return 0
	}
	var sum, c float64
	for _, x := range luma {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(luma))
}

// StreamingStats accumulates statistics across blocks of luma values, such
// as one image row at a time. Results are bit-identical to [Calculate].
type StreamingStats struct {
	n       int
	mean    float64
	m2      float64
	m3      float64
	m4      float64
	sumSq   float64
	maxVal  float64
	maxPos  int
	minVal  float64
	minPos  int
	hasData bool
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of values to the running statistics.
func (s *StreamingStats) Update(luma []float64) {
	for _, x := range luma {
		s.n++
		ni := float64(s.n)

		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(s.n-1)

		// M4 must be updated before M3, and M3 before M2.
		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(s.n-1)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		s.sumSq += x * x

		if !s.hasData {
			s.maxVal, s.maxPos = x, s.n-1
			s.minVal, s.minPos = x, s.n-1
			s.hasData = true
			continue
		}
		if x > s.maxVal {
			s.maxVal, s.maxPos = x, s.n-1
		}
		if x < s.minVal {
			s.minVal, s.minPos = x, s.n-1
		}
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	var contrast float64
	if sum := s.maxVal + s.minVal; sum > 0 {
		contrast = (s.maxVal - s.minVal) / sum
	}

	return Stats{
		Pixels:   s.n,
		Mean:     s.mean,
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Range:    s.maxVal - s.minVal,
		RMS:      math.Sqrt(s.sumSq / nf),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
		Contrast: contrast,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
