package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-lumamod/pix/histogram"
	"github.com/cwbudde/algo-lumamod/pix/modulate"
	"github.com/cwbudde/algo-lumamod/pix/pipeline"
	lumastats "github.com/cwbudde/algo-lumamod/stats/luma"
	"github.com/cwbudde/algo-lumamod/stats/spatial"
)

func printComparison(w io.Writer, res *pipeline.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Image\tSize\tMean\tMedian\tStdDev\tMin\tMax\tContrast\n")
	fmt.Fprintf(tw, "-----\t----\t----\t------\t------\t---\t---\t--------\n")

	rows := []struct {
		label string
		s     lumastats.Stats
		h     *histogram.Histogram
	}{
		{"original", res.OriginalStats, &res.Histogram.Original},
		{"modulated", res.ModulatedStats, &res.Histogram.Modulated},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%dx%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.4f\n",
			r.label, res.Original.Width, res.Original.Height,
			r.s.Mean, r.h.Median, r.s.StdDev, r.s.Min, r.s.Max, r.s.Contrast)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s: dominant period %.2f px, depth %.4f\n",
		res.Params, res.Profile.DominantPeriod, res.Profile.ModulationDepth)
	return err
}

func printHistograms(w io.Writer, orig, mod *histogram.Histogram) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Image\tPixels\tMean\tMedian\tPeak density\n")
	fmt.Fprintf(tw, "-----\t------\t----\t------\t------------\n")
	fmt.Fprintf(tw, "original\t%d\t%.2f\t%.2f\t%.5f\n", orig.Pixels, orig.Mean, orig.Median, orig.Peak)
	fmt.Fprintf(tw, "modulated\t%d\t%.2f\t%.2f\t%.5f\n", mod.Pixels, mod.Mean, mod.Median, mod.Peak)
	return tw.Flush()
}

func printStats(w io.Writer, axis modulate.Axis, ls lumastats.Stats, ps spatial.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pixels\t%d\n", ls.Pixels)
	fmt.Fprintf(tw, "Mean\t%.4f\n", ls.Mean)
	fmt.Fprintf(tw, "Min\t%.4f\n", ls.Min)
	fmt.Fprintf(tw, "Max\t%.4f\n", ls.Max)
	fmt.Fprintf(tw, "StdDev\t%.4f\n", ls.StdDev)
	fmt.Fprintf(tw, "Skewness\t%.4f\n", ls.Skewness)
	fmt.Fprintf(tw, "Kurtosis\t%.4f\n", ls.Kurtosis)
	fmt.Fprintf(tw, "Contrast\t%.4f\n", ls.Contrast)
	fmt.Fprintf(tw, "Profile axis\t%s (%d samples, FFT %d)\n", axis, ps.Length, ps.FFTSize)
	if ps.DominantBin > 0 {
		fmt.Fprintf(tw, "Dominant period\t%.2f px (bin %d, purity %.3f)\n", ps.DominantPeriod, ps.DominantBin, ps.Purity)
	} else {
		fmt.Fprintf(tw, "Dominant period\tnone\n")
	}
	fmt.Fprintf(tw, "Modulation depth\t%.4f\n", ps.ModulationDepth)
	return tw.Flush()
}
