package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lumamod/pix/raster"
)

var rootFlags struct {
	LogLevel string
	JSONLog  bool
}

var rootCmd = &cobra.Command{
	Use:           "lumamod",
	Short:         "Modulate image brightness along an axis and compare histograms",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.ErrOrStderr(), rootFlags.LogLevel, rootFlags.JSONLog)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.JSONLog, "json-log", false, "Write logs as JSON instead of console text")
}

func setupLogging(w io.Writer, level string, jsonLog bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if jsonLog {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	}
	return nil
}

func loadImage(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := raster.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("bytes", len(data)).Msg("wrote file")
	return nil
}
