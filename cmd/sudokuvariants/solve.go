package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/crillab/sudokuvariants/core"
	"github.com/crillab/sudokuvariants/solve"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <board.json>",
	Short: "enumerate up to --max-solutions solutions of a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&maxSolutions, "max-solutions", 2, "stop after this many solutions (0 = unbounded)")
	solveCmd.Flags().Bool("allow-partial", false, "proceed even if some constraint kinds have no SAT encoding")
}

func runSolve(cmd *cobra.Command, args []string) error {
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

	allowPartial, _ := cmd.Flags().GetBool("allow-partial")
	opts := core.SolveOptions{
		MaxSolutions:         maxSolutions,
		AllowPartialEncoding: allowPartial,
		Log:                  log,
	}

	if msg := core.CantAttempt(b, opts); msg != "" {
		return fmt.Errorf("cannot attempt this board: %s", msg)
	}

	cancel := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		close(cancel)
	}()

	count := 0
	completed, err := core.Solve(b, opts, func(sol solve.Solution, ok bool) {
		if !ok {
			return
		}
		count++
		fmt.Printf("solution %d: %s\n", count, formatSolution(sol))
	}, cancel)
	if err != nil {
		return errors.Wrap(err, "solving")
	}
	if !completed {
		fmt.Println("cancelled")
		return nil
	}
	fmt.Printf("%d solution(s) found\n", count)
	return nil
}

func formatSolution(sol solve.Solution) string {
	keys := make([]int, 0, len(sol))
	for k := range sol {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	s := ""
	for _, k := range keys {
		s += fmt.Sprintf("%d", sol[k])
	}
	return s
}
