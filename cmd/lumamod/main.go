// Command lumamod applies a periodic brightness modulation to images and
// compares brightness histograms.
//
// Usage:
//
//	lumamod modulate -i photo.jpg [-a x|y] [-f sin|cos] [-p 80] [-o modulated.png] [--histogram histogram.png]
//	lumamod compare --original a.png --modulated b.png [-o histogram.png]
//	lumamod stats -i photo.png [-a x|y]
//
// Examples:
//
//	lumamod modulate -i photo.jpg -a y -f cos -p 40
//	lumamod stats -i modulated.png -a y
//	lumamod --json-log --log-level debug modulate -i photo.png
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("lumamod failed")
		os.Exit(1)
	}
}
