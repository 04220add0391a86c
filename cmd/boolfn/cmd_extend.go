package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/report"
	"github.com/Han-16/boolext/internal/ring"
	"github.com/Han-16/boolext/internal/word"
)

var (
	extendRounds int
	extendCell   int

	extendCmd = &cobra.Command{
		Use:   "extend [function...]",
		Short: "Extend 5-variable functions to 9 variables on a ring of cells",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtend,
	}
)

func init() {
	extendCmd.Flags().IntVar(&extendRounds, "rounds", 2, "synchronous update rounds")
	extendCmd.Flags().IntVar(&extendCell, "cell", 4, "ring cell read after the last round")
}

func runExtend(cmd *cobra.Command, args []string) error {
	t5 := boolfn.MustNew[word.U32](5, 0)
	t9 := boolfn.MustNew(9, word.U512{})
	e, err := ring.NewExtender(t5, t9, ring.WithRounds(extendRounds), ring.WithCell(extendCell))
	if err != nil {
		return err
	}
	var rows []boolfn.Properties
	for _, a := range args {
		f, err := word.ParseU32(a)
		if err != nil {
			return err
		}
		g := e.Extend(f)
		fmt.Printf("%s -> %s\n", f, g)
		rows = append(rows, boolfn.Analyze(t5, f), boolfn.Analyze(t9, g))
	}
	fmt.Println()
	report.Properties(os.Stdout, rows)
	return nil
}
