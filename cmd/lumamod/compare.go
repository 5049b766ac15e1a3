package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lumamod/pix/histogram"
)

var compareFlags struct {
	Original  string
	Modulated string
	Output    string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Render brightness histograms of two images side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		orig, err := loadImage(compareFlags.Original)
		if err != nil {
			return err
		}
		mod, err := loadImage(compareFlags.Modulated)
		if err != nil {
			return err
		}

		res, err := histogram.Compare(orig, mod)
		if err != nil {
			return err
		}
		if err := writeFile(compareFlags.Output, res.PNG); err != nil {
			return err
		}

		return printHistograms(cmd.OutOrStdout(), &res.Original, &res.Modulated)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareFlags.Original, "original", "", "Path to the original image (required)")
	compareCmd.MarkFlagRequired("original")
	compareCmd.Flags().StringVar(&compareFlags.Modulated, "modulated", "", "Path to the modulated image (required)")
	compareCmd.MarkFlagRequired("modulated")
	compareCmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "histogram.png", "Output path for the histogram image")
}
