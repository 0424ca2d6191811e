package main

import (
	"fmt"
	"os"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/core"
	"github.com/crillab/sudokuvariants/warnings"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <board.json>",
	Short: "run the feasibility gate and warning evaluator against a board's givens",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "opening board file")
	}
	defer f.Close()

	b, err := core.LoadBoard(f)
	if err != nil {
		return errors.Wrap(err, "loading board")
	}

	opts := core.SolveOptions{Log: log}
	if msg := core.CantAttempt(b, opts); msg != "" {
		fmt.Printf("cannot attempt: %s\n", msg)
	} else {
		fmt.Println("feasibility gate: ok")
	}

	digits, err := currentDigits(b)
	if err != nil {
		return errors.Wrap(err, "reading givens")
	}
	flags, err := core.EvaluateWarnings(b, digits, opts)
	if err != nil {
		return errors.Wrap(err, "evaluating warnings")
	}
	if len(flags) == 0 {
		fmt.Println("no warnings")
		return nil
	}
	fmt.Printf("%d cell(s) flagged:\n", len(flags))
	for cellIdx := range flags {
		fmt.Printf("  cell %d\n", cellIdx)
	}
	return nil
}

func currentDigits(b board.Board) (warnings.Digits, error) {
	digits := warnings.Digits{}
	for _, kind := range []board.Kind{board.KindGivens, board.KindFilled} {
		for _, e := range b.ElementsOfType(kind) {
			m, err := e.DigitMap()
			if err != nil {
				return nil, err
			}
			for k, v := range m {
				digits[k] = v
			}
		}
	}
	return digits, nil
}
