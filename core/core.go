// Package core exposes the three operations spec.md §6.3 names as the
// library's surface: cantAttempt (here CantAttempt), solve (Solve), and
// evaluateWarnings (EvaluateWarnings). It wires board, feasibility,
// constraints/solve, and warnings together; callers needing only one of
// those concerns can use the subpackages directly.
package core

import (
	"io"
	"time"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/feasibility"
	"github.com/crillab/sudokuvariants/solve"
	"github.com/crillab/sudokuvariants/warnings"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SolveOptions configures Solve and, via AllowPartialEncoding, the
// preflight check CantAttempt runs first.
type SolveOptions struct {
	MaxSolutions         int
	TimeSlice            time.Duration
	AllowPartialEncoding bool
	LockoutDelta         int
	Log                  logrus.FieldLogger
}

// LoadBoard decodes a board snapshot from r, per §6.4's JSON format.
func LoadBoard(r io.Reader) (board.Board, error) {
	return board.Load(r)
}

// CantAttempt returns a human-readable rejection message if b cannot be
// compiled at all, or "" if it can. This is the feasibility gate of
// spec.md §4.4, with the AllowPartialEncoding override from the REDESIGN
// FLAGS section.
func CantAttempt(b board.Board, opts SolveOptions) string {
	return feasibility.Gate(b, feasibility.Options{AllowPartialEncoding: opts.AllowPartialEncoding})
}

// Solve enumerates up to opts.MaxSolutions solutions of b, calling cb for
// each and once more with ok=false on normal completion. Callers must
// check CantAttempt(b, opts) == "" before calling Solve; Solve does not
// call the gate itself, so that one feasibility check covers both a
// caller's UI advisory and the actual solve.
func Solve(b board.Board, opts SolveOptions, cb solve.OnSolution, cancel <-chan struct{}) (completed bool, err error) {
	completed, err = solve.Run(b, solve.Options{
		MaxSolutions: opts.MaxSolutions,
		TimeSlice:    opts.TimeSlice,
		Log:          opts.Log,
	}, cb, cancel)
	if err != nil {
		return completed, errors.Wrap(err, "core.Solve")
	}
	return completed, nil
}

// EvaluateWarnings runs the local warning rules of spec.md §4.6 over the
// current digit map and returns the flagged cell set.
func EvaluateWarnings(b board.Board, digits warnings.Digits, opts SolveOptions) (warnings.Flags, error) {
	return warnings.Evaluate(b, digits, warnings.Options{LockoutDelta: opts.LockoutDelta})
}
