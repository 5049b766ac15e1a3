package luma

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lumamod/internal/testutil"
	"github.com/cwbudde/algo-lumamod/pix/core"
	"github.com/cwbudde/algo-lumamod/pix/histogram"
	"github.com/cwbudde/algo-lumamod/pix/raster"
)

const tolerance = 1e-9

func TestCalculateConstant(t *testing.T) {
	s := Calculate([]float64{128, 128, 128, 128})

	if s.Pixels != 4 {
		t.Errorf("Pixels: got %d, want 4", s.Pixels)
	}
	if math.Abs(s.Mean-128) > tolerance {
		t.Errorf("Mean: got %g, want 128", s.Mean)
	}
	if s.Variance != 0 || s.StdDev != 0 || s.Skewness != 0 || s.Kurtosis != 0 {
		t.Errorf("moments of constant input: %+v", s)
	}
	if s.Range != 0 || s.Contrast != 0 {
		t.Errorf("Range/Contrast: got %g/%g, want 0", s.Range, s.Contrast)
	}
}

func TestCalculateTwoLevels(t *testing.T) {
	s := Calculate([]float64{0, 255, 0, 255})

	if math.Abs(s.Mean-127.5) > tolerance {
		t.Errorf("Mean: got %g, want 127.5", s.Mean)
	}
	if math.Abs(s.StdDev-127.5) > tolerance {
		t.Errorf("StdDev: got %g, want 127.5", s.StdDev)
	}
	if math.Abs(s.Kurtosis+2) > tolerance {
		t.Errorf("Kurtosis: got %g, want -2", s.Kurtosis)
	}
	if s.Min != 0 || s.MinPos != 0 || s.Max != 255 || s.MaxPos != 1 {
		t.Errorf("extrema: %+v", s)
	}
	if s.Contrast != 1 {
		t.Errorf("Contrast: got %g, want 1", s.Contrast)
	}
	if math.Abs(s.RMS-math.Sqrt(255*255/2.0)) > tolerance {
		t.Errorf("RMS: got %g", s.RMS)
	}
}

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("empty stats = %+v", s)
	}
}

func TestStreamingMatchesCalculate(t *testing.T) {
	buf := testutil.DeterministicNoise(9, 13, 21)
	l, err := histogram.Luma(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := Calculate(l)

	s := NewStreamingStats()
	for i := 0; i < len(l); i += 17 {
		end := i + 17
		if end > len(l) {
			end = len(l)
		}
		s.Update(l[i:end])
	}
	if got := s.Result(); got != want {
		t.Fatalf("streaming = %+v\nwant %+v", got, want)
	}

	s.Reset()
	if s.Result() != (Stats{}) {
		t.Fatal("Reset did not clear state")
	}
}

func TestFromBuffer(t *testing.T) {
	buf := testutil.Gradient(9, 11, 40)
	l, _ := histogram.Luma(buf)

	got, err := FromBuffer(buf)
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	if want := Calculate(l); got != want {
		t.Fatalf("FromBuffer = %+v\nwant %+v", got, want)
	}

	if _, err := FromBuffer(&raster.Buffer{Height: 1, Width: 1}); !errors.Is(err, core.ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
}

func TestMean(t *testing.T) {
	if Mean(nil) != 0 {
		t.Fatal("Mean(nil) != 0")
	}
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
}
