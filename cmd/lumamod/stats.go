package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lumamod/pix/modulate"
	lumastats "github.com/cwbudde/algo-lumamod/stats/luma"
	"github.com/cwbudde/algo-lumamod/stats/spatial"
)

var statsFlags struct {
	Input string
	Axis  string
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print brightness statistics and the dominant period along an axis",
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, err := modulate.ParseAxis(statsFlags.Axis)
		if err != nil {
			return err
		}

		buf, err := loadImage(statsFlags.Input)
		if err != nil {
			return err
		}

		ls, err := lumastats.FromBuffer(buf)
		if err != nil {
			return err
		}
		ps, err := spatial.FromBuffer(buf, axis)
		if err != nil {
			return err
		}

		return printStats(cmd.OutOrStdout(), axis, ls, ps)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFlags.Input, "input", "i", "", "Path to the image (required)")
	statsCmd.MarkFlagRequired("input")
	statsCmd.Flags().StringVarP(&statsFlags.Axis, "axis", "a", "x", "Profile axis: x or y")
}
