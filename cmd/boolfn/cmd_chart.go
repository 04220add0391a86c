package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/report"
	"github.com/Han-16/boolext/internal/word"
)

var (
	chartOut string

	chartCmd = &cobra.Command{
		Use:   "chart [function]",
		Short: "Write an HTML chart of the spectra of a 5-variable function",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
)

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "spectra.html", "output file")
}

func runChart(cmd *cobra.Command, args []string) error {
	f, err := word.ParseU32(args[0])
	if err != nil {
		return err
	}
	t := boolfn.MustNew[word.U32](5, 0)

	out, err := os.Create(chartOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := report.SpectrumChart(out, f.String(), t.WalshSpectrum(f), t.AutocorrelationSpectrum(f)); err != nil {
		return err
	}
	log.Info().Str("file", chartOut).Msg("chart written")
	return out.Close()
}
