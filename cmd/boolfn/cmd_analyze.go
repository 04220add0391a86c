package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/report"
	"github.com/Han-16/boolext/internal/word"
)

var (
	analyzeVars    int
	analyzeSpectra bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze [function...]",
		Short: "Print the properties of one or more functions",
		Long: `Functions are decimal or 0x-prefixed truth-table numbers. Up to 5
variables they are read as 32-bit words, up to 9 as 512-bit words and beyond
that as arbitrary-width bit vectors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}
)

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeVars, "vars", "n", 5, "number of input variables")
	analyzeCmd.Flags().BoolVarP(&analyzeSpectra, "spectra", "s", false, "also print Walsh and autocorrelation spectra")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	switch {
	case analyzeVars <= 5:
		t, err := boolfn.New[word.U32](analyzeVars, 0)
		if err != nil {
			return err
		}
		return analyzeWith(args, t, word.ParseU32)
	case analyzeVars <= 9:
		t, err := boolfn.New(analyzeVars, word.U512{})
		if err != nil {
			return err
		}
		return analyzeWith(args, t, word.ParseU512)
	default:
		width := 1 << analyzeVars
		t, err := boolfn.New(analyzeVars, word.NewWide(width))
		if err != nil {
			return err
		}
		return analyzeWith(args, t, func(s string) (word.Wide, error) {
			return word.ParseWide(s, width)
		})
	}
}

func analyzeWith[W word.Word[W]](args []string, t *boolfn.Tester[W], parse func(string) (W, error)) error {
	rows := make([]boolfn.Properties, 0, len(args))
	fs := make([]W, 0, len(args))
	for _, a := range args {
		f, err := parse(a)
		if err != nil {
			return err
		}
		log.Debug().Str("function", f.String()).Int("vars", t.Vars()).Msg("analyzing")
		fs = append(fs, f)
		rows = append(rows, boolfn.Analyze(t, f))
	}
	report.Properties(os.Stdout, rows)
	if analyzeSpectra {
		for _, f := range fs {
			fmt.Printf("\n%s\n", f)
			report.Spectra(os.Stdout, t.WalshSpectrum(f), t.AutocorrelationSpectrum(f))
		}
	}
	return nil
}
