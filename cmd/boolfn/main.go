// Command boolfn analyzes Boolean functions, extends 5-variable functions to
// 9 variables on a ring of cells, and scans ranges of function numbers.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      = zerolog.Nop()

	rootCmd = &cobra.Command{
		Use:   "boolfn",
		Short: "Cryptographic property tests for Boolean functions",
		Long: `boolfn computes degree, balance, avalanche and propagation criteria,
correlation immunity, Walsh and autocorrelation spectra and linearity of
Boolean functions given as truth-table numbers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
				Level(lvl).
				With().Timestamp().Logger()
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(analyzeCmd, extendCmd, searchCmd, chartCmd, proveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
