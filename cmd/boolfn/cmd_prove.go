package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Han-16/boolext/internal/attest"
	"github.com/Han-16/boolext/internal/word"
)

var (
	proveFrequency uint32

	proveCmd = &cobra.Command{
		Use:   "prove [function]",
		Short: "Prove a Walsh coefficient and the balance of a private 5-variable function",
		Args:  cobra.ExactArgs(1),
		RunE:  runProve,
	}
)

func init() {
	proveCmd.Flags().Uint32VarP(&proveFrequency, "frequency", "w", 0, "Walsh frequency in [0, 32)")
}

func runProve(cmd *cobra.Command, args []string) error {
	f, err := word.ParseU32(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := attest.Setup()
	if err != nil {
		return err
	}
	log.Info().Int("constraints", p.Constraints()).Dur("elapsed", time.Since(start)).Msg("setup done")

	start = time.Now()
	a, err := p.Prove(f, proveFrequency)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("proof generated")

	if err := p.Verify(a); err != nil {
		return err
	}
	fmt.Printf("verified: W(f, %d) = %d, balanced = %t\n", a.W, a.Walsh, a.Balanced)
	return nil
}
