package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lumamod/pix/pipeline"
)

var modulateFlags struct {
	Input     string
	Axis      string
	Function  string
	Period    int
	Output    string
	Histogram string
	Original  string
	MaxBytes  int64
	Orient    bool
}

var modulateCmd = &cobra.Command{
	Use:   "modulate",
	Short: "Apply a sine or cosine brightness modulation to an image",
	Long: `Reads an image, multiplies every pixel by (wave(coord/period*2π)+1)/2 along the
chosen axis and writes the modulated image together with a histogram comparison.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(modulateFlags.Input)
		if err != nil {
			return err
		}
		defer f.Close()

		opts := []pipeline.Option{
			pipeline.WithLogger(log.Logger),
			pipeline.WithMaxUploadBytes(modulateFlags.MaxBytes),
		}
		if modulateFlags.Orient {
			opts = append(opts, pipeline.WithAutoOrientation())
		}

		res, err := pipeline.New(opts...).Process(cmd.Context(), pipeline.Request{
			Filename: filepath.Base(modulateFlags.Input),
			Body:     f,
			Form: pipeline.Form{
				pipeline.FieldAxis:     modulateFlags.Axis,
				pipeline.FieldFunction: modulateFlags.Function,
				pipeline.FieldPeriod:   strconv.Itoa(modulateFlags.Period),
			},
		})
		if err != nil {
			return err
		}

		if err := writeFile(modulateFlags.Output, res.ModulatedPNG); err != nil {
			return err
		}
		if modulateFlags.Histogram != "" {
			if err := writeFile(modulateFlags.Histogram, res.Histogram.PNG); err != nil {
				return err
			}
		}
		if modulateFlags.Original != "" {
			if err := writeFile(modulateFlags.Original, res.OriginalPNG); err != nil {
				return err
			}
		}

		return printComparison(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(modulateCmd)

	modulateCmd.Flags().StringVarP(&modulateFlags.Input, "input", "i", "", "Path to the input image (required)")
	modulateCmd.MarkFlagRequired("input")
	modulateCmd.Flags().StringVarP(&modulateFlags.Axis, "axis", "a", "x", "Modulation axis: x (columns) or y (rows)")
	modulateCmd.Flags().StringVarP(&modulateFlags.Function, "function", "f", "sin", "Waveform: sin or cos")
	modulateCmd.Flags().IntVarP(&modulateFlags.Period, "period", "p", 80, "Period in pixels (>= 2)")
	modulateCmd.Flags().StringVarP(&modulateFlags.Output, "output", "o", "modulated.png", "Output path for the modulated image")
	modulateCmd.Flags().StringVar(&modulateFlags.Histogram, "histogram", "histogram.png", "Output path for the histogram comparison (empty to skip)")
	modulateCmd.Flags().StringVar(&modulateFlags.Original, "original", "", "Also write the decoded original as PNG")
	modulateCmd.Flags().Int64Var(&modulateFlags.MaxBytes, "max-bytes", pipeline.DefaultMaxUploadBytes, "Maximum input file size in bytes")
	modulateCmd.Flags().BoolVar(&modulateFlags.Orient, "auto-orient", false, "Apply the EXIF orientation of JPEG input")
}
