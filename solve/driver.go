// Package solve implements the solver driver state machine of spec.md
// §4.5: it owns the solver handle's lifetime, ingests the clause buffer
// produced by package constraints, runs time-sliced solve calls
// cooperatively, decodes models, emits blocking clauses, and reports
// each solution through a callback.
package solve

import (
	"fmt"
	"time"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/cnf"
	"github.com/crillab/sudokuvariants/constraints"
	"github.com/crillab/sudokuvariants/litenc"
	"github.com/crillab/sudokuvariants/solveradapter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultSlice is the per-call soft time budget handed to the solver
// before it either returns a verdict or control is yielded back to the
// caller so a cancellation check can happen.
const DefaultSlice = 100 * time.Millisecond

// Options configures one Run. MaxSolutions <= 0 means unbounded (subject
// to the solver eventually reporting Unsat). TimeSlice <= 0 uses
// DefaultSlice.
type Options struct {
	MaxSolutions int
	TimeSlice    time.Duration
	Log          logrus.FieldLogger
}

// Solution is a single satisfying assignment, cellIdx -> digit (1..N).
type Solution map[int]int

// OnSolution is called once per solution found, in discovery order, and
// once more with ok=false after the loop ends normally (the completion
// sentinel of spec.md §4.5 step 4). It is never called after cancellation.
type OnSolution func(sol Solution, ok bool)

// Run executes the full state machine against b: encode, ingest, solve
// in a loop emitting blocking clauses, decode models, and call cb.
// cancel is polled at the two suspension points named in spec.md §5: once
// before encoding begins and once at every solver time-slice boundary.
// Run returns true iff the loop completed normally (including the
// zero-solutions Unsat case); it returns false on cancellation. The
// solver handle is released on every exit path.
func Run(b board.Board, opts Options, cb OnSolution, cancel <-chan struct{}) (completed bool, err error) {
	if isCancelled(cancel) {
		return false, nil
	}

	n := b.N()
	alloc := litenc.NewAlloc(n)
	var buf cnf.Buffer
	nextVar, err := constraints.Encode(b, alloc, &buf, alloc.FirstAux(), opts.Log, cancel)
	if err != nil {
		if err == constraints.ErrCancelled {
			return false, nil
		}
		return false, errors.Wrap(err, "encoding board")
	}

	adapter := solveradapter.New()
	defer adapter.Free()

	adapter.DeclareVars(nextVar - 1)
	for _, c := range buf.Clauses {
		adapter.AddClause(c)
	}
	buf.Clauses = nil // release the clause buffer per spec.md §4.5 step 2

	slice := opts.TimeSlice
	if slice <= 0 {
		slice = DefaultSlice
	}

	found := 0
	for opts.MaxSolutions <= 0 || found < opts.MaxSolutions {
		if isCancelled(cancel) {
			return false, nil
		}

		adapter.SetMaxTime(slice)
		status := adapter.Solve()
		for status == solveradapter.Undef {
			if isCancelled(cancel) {
				return false, nil
			}
			adapter.SetMaxTime(slice)
			status = adapter.Solve()
		}

		if status == solveradapter.Unsat {
			break
		}

		sol, blocking, err := decodeModel(alloc, adapter)
		if err != nil {
			return false, errors.Wrap(err, "decoding model")
		}
		found++
		cb(sol, true)
		adapter.AddClause(blocking)
	}

	cb(nil, false)
	return true, nil
}

// decodeModel reads the current model and returns both the decoded
// cellIdx->digit solution and the blocking clause that excludes this
// exact assignment from future solves.
func decodeModel(alloc litenc.Alloc, adapter *solveradapter.Adapter) (Solution, []int, error) {
	n := alloc.N
	sol := make(Solution, n*n)
	blocking := make([]int, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			assigned := -1
			for v := 0; v < n; v++ {
				lit := alloc.Lit(r, c, v)
				if adapter.GetModel(lit) {
					if assigned != -1 {
						return nil, nil, fmt.Errorf("cell (%d,%d) has both digits %d and %d true", r, c, assigned+1, v+1)
					}
					assigned = v
					blocking = append(blocking, -lit)
				}
			}
			if assigned == -1 {
				return nil, nil, fmt.Errorf("cell (%d,%d) has no digit assigned true", r, c)
			}
			sol[board.CellIdx(r, c, n)] = assigned + 1
		}
	}
	return sol, blocking, nil
}

func isCancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}
