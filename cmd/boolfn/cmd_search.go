package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Han-16/boolext/internal/classes"
	"github.com/Han-16/boolext/internal/report"
	"github.com/Han-16/boolext/internal/ring"
	"github.com/Han-16/boolext/internal/search"
)

var (
	searchFrom    uint64
	searchTo      uint64
	searchWorkers int
	searchChunk   uint64
	classesFile   string

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Scan ranges of 5-variable function numbers",
	}
	searchDegreeCmd = &cobra.Command{
		Use:   "degree",
		Short: "List functions whose 9-variable ring extension keeps their degree",
		Args:  cobra.NoArgs,
		RunE:  runSearchDegree,
	}
	searchClassifyCmd = &cobra.Command{
		Use:   "classify",
		Short: "Match functions to equivalence classes by their spectra",
		Long: `Every function is matched against the class representatives by its
absolute Walsh and autocorrelation spectra. Functions matching zero or
several classes are printed; per-class counts are printed at the end.`,
		Args: cobra.NoArgs,
		RunE: runSearchClassify,
	}
	searchSurveyCmd = &cobra.Command{
		Use:   "survey",
		Short: "Count cryptographic properties over a range",
		Args:  cobra.NoArgs,
		RunE:  runSearchSurvey,
	}
)

func init() {
	pf := searchCmd.PersistentFlags()
	pf.Uint64Var(&searchFrom, "from", 0, "first function number")
	pf.Uint64Var(&searchTo, "to", search.MaxFunction, "one past the last function number")
	pf.IntVarP(&searchWorkers, "workers", "w", 0, "parallel workers (0: GOMAXPROCS)")
	pf.Uint64Var(&searchChunk, "chunk", 1<<16, "functions per task")
	searchClassifyCmd.Flags().StringVar(&classesFile, "classes", "", "YAML class table (default: built-in affine classes)")
	searchCmd.AddCommand(searchDegreeCmd, searchClassifyCmd, searchSurveyCmd)
}

func searchSetup() (context.Context, context.CancelFunc, search.Range, search.Options) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	opts := search.Options{
		Workers: searchWorkers,
		Chunk:   searchChunk,
		Logger:  log,
	}
	return ctx, cancel, search.Range{Lo: searchFrom, Hi: searchTo}, opts
}

func runSearchDegree(cmd *cobra.Command, args []string) error {
	ctx, cancel, r, opts := searchSetup()
	defer cancel()

	n, err := search.DegreePreserving(ctx, r, ring.NewExtend5to9(), opts, func(h search.Hit) {
		fmt.Printf("%d -> %s (degree = %d)\n", uint32(h.Function), h.Extended, h.Degree)
	})
	log.Info().Uint64("hits", n).Msg("degree search done")
	return err
}

func runSearchClassify(cmd *cobra.Command, args []string) error {
	table := classes.Default()
	if classesFile != "" {
		var err error
		if table, err = classes.Load(classesFile); err != nil {
			return err
		}
	}
	ctx, cancel, r, opts := searchSetup()
	defer cancel()

	counts, err := search.Classify(ctx, r, table, opts, func(a search.Anomaly) {
		fmt.Printf("%d -> %d\n", uint32(a.Function), len(a.Matches))
	})
	if err != nil {
		return err
	}
	report.Classes(os.Stdout, table, counts)
	return nil
}

func runSearchSurvey(cmd *cobra.Command, args []string) error {
	ctx, cancel, r, opts := searchSetup()
	defer cancel()

	s, err := search.RunSurvey(ctx, r, opts)
	if err != nil {
		return err
	}
	report.Survey(os.Stdout, s)
	return nil
}
