// Package solveradapter wraps gini's incremental SAT interface behind the
// narrow surface the driver in package solve needs: New, DeclareVars,
// AddClause, SetMaxTime, Solve, GetModel, Free. No SAT algorithm lives
// here; this is the "black box" of spec.md §6.1.
package solveradapter

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

// Status mirrors gini's own Solve()/Try() result codes: 1 is satisfiable,
// -1 is unsatisfiable, 0 is undetermined (time budget exhausted).
type Status int

const (
	Undef Status = 0
	Sat   Status = 1
	Unsat Status = -1
)

// Adapter owns one gini solver instance for the lifetime of one solve
// invocation. It is not safe for concurrent use.
type Adapter struct {
	g       *gini.Gini
	maxTime time.Duration
	handle  inter.Solve // non-nil while a GoSolve is in flight
}

// New constructs an adapter with no variables declared yet.
func New() *Adapter {
	return &Adapter{g: gini.New()}
}

// DeclareVars ensures the solver knows about every variable up to and
// including n, by touching its literal once; gini grows its internal
// storage lazily, so this just forces that growth ahead of AddClause.
func (a *Adapter) DeclareVars(n int) {
	if n <= 0 {
		return
	}
	lit := z.Var(n).Pos()
	a.g.Add(lit)
	a.g.Add(lit.Not())
	a.g.Add(0) // tautology, added only to force storage for var n
}

// AddClause adds one clause, given as CNF literals in this module's own
// convention (1-indexed variable, sign carries polarity); AddClause does
// the translation to gini's z.Lit representation itself.
func (a *Adapter) AddClause(lits []int) {
	for _, l := range lits {
		v := l
		neg := false
		if v < 0 {
			v, neg = -v, true
		}
		lit := z.Var(v).Pos()
		if neg {
			lit = lit.Not()
		}
		a.g.Add(lit)
	}
	a.g.Add(0)
	// Any in-flight solve handle is for the problem before this clause;
	// the next Solve call must start a fresh one to see it.
	a.handle = nil
}

// SetMaxTime sets the soft time budget for the next call to Solve.
func (a *Adapter) SetMaxTime(d time.Duration) {
	a.maxTime = d
}

// Solve runs the solver for up to the time budget set by the most recent
// SetMaxTime call and returns Sat, Unsat, or Undef. Each call starts a
// background solve via GoSolve and waits on it with Try; Try either
// returns the finished verdict or stops the solve when the budget runs
// out, so the handle is spent either way and is dropped before returning.
// After an Undef, the next call starts a fresh solve over the same clauses.
func (a *Adapter) Solve() Status {
	if a.handle == nil {
		a.handle = a.g.GoSolve()
	}
	d := a.maxTime
	if d <= 0 {
		d = 100 * time.Millisecond
	}
	status := Status(a.handle.Try(d))
	a.handle = nil
	return status
}

// GetModel decodes the current model: lit is a CNF literal (1-indexed,
// sign convention as in package cnf); it reports that literal's truth
// value under the last satisfying assignment.
func (a *Adapter) GetModel(lit int) bool {
	v := lit
	neg := false
	if v < 0 {
		v, neg = -v, true
	}
	val := a.g.Value(z.Var(v).Pos())
	if neg {
		return !val
	}
	return val
}

// Free releases the solver handle. gini runs GoSolve's background solve
// in its own goroutine; if one is in flight, Stop tells it to wind down
// before the adapter drops its references, so cancelling a solve never
// leaks that goroutine. Every exit path in the driver calls Free
// regardless of outcome, per spec.md §5's exclusive-ownership requirement.
func (a *Adapter) Free() {
	if a.handle != nil {
		a.handle.Stop()
	}
	a.handle = nil
	a.g = nil
}
