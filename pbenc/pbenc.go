// Package pbenc implements the pseudo-Boolean encoder: given weights,
// literals, and bounds, it appends CNF clauses that are satisfiable iff
// the weighted sum of true literals falls within the bounds, allocating
// fresh auxiliary variables as needed.
//
// The encoding is a sequential weighted counter (SWC), the same family
// gophersat's solver/pb.go documents for its native PB support, adapted
// here to emit plain CNF instead of relying on solver-level PB handling:
// the driver in package solve only ever talks to the solver adapter in
// terms of ordinary clauses.
package pbenc

import "github.com/crillab/sudokuvariants/cnf"

// EncodeBoth appends clauses to buf enforcing lo <= sum(weights[i]*lits[i]) <= hi,
// and returns the updated next-free-variable counter. weights must all be
// positive; len(weights) must equal len(lits). nextVar is the caller's
// monotonically increasing high-water mark; any aux vars this call
// allocates are fresh and start at nextVar.
func EncodeBoth(weights, lits []int, lo, hi int, buf *cnf.Buffer, nextVar int) int {
	if len(weights) != len(lits) {
		panic("pbenc: weights and lits must have the same length")
	}
	total := 0
	for _, w := range weights {
		if w <= 0 {
			panic("pbenc: weights must be positive")
		}
		total += w
	}
	if hi < total {
		nextVar = atMost(weights, lits, hi, buf, nextVar)
	}
	if lo > 0 {
		negLits := make([]int, len(lits))
		for i, l := range lits {
			negLits[i] = -l
		}
		nextVar = atMost(weights, negLits, total-lo, buf, nextVar)
	}
	return nextVar
}

// EncodeBothGuarded appends clauses enforcing guard -> (lo <=
// sum(weights[i]*lits[i]) <= hi): the constraint only applies when guard
// is true. Used by encoders that need a PB equality conditioned on a
// single-valued choice, such as arrow's per-head-digit equality, where
// building N separate guarded constraints (one per head digit) is
// simpler than reifying the head's value into its own weighted terms.
func EncodeBothGuarded(guard int, weights, lits []int, lo, hi int, buf *cnf.Buffer, nextVar int) int {
	var local cnf.Buffer
	nextVar = EncodeBoth(weights, lits, lo, hi, &local, nextVar)
	for _, c := range local.Clauses {
		guarded := make(cnf.Clause, len(c)+1)
		copy(guarded, c)
		guarded[len(c)] = -guard
		buf.AddClause(guarded)
	}
	return nextVar
}

// atMost appends clauses enforcing sum(weights[i]*lits[i]) <= bound,
// returning the updated next-free-variable counter. bound < 0 means the
// constraint is unsatisfiable (even with every lit false the sum is 0);
// that is expressed by one fresh var forced both true and false rather
// than by registers.
func atMost(weights, lits []int, bound int, buf *cnf.Buffer, nextVar int) int {
	n := len(lits)
	if bound < 0 {
		buf.Add(nextVar)
		buf.Add(-nextVar)
		return nextVar + 1
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if bound >= total {
		return nextVar // constraint is vacuously true
	}
	overflow := bound + 1 // registers track "reached >= j" for j in 1..overflow; overflow itself is forbidden

	prevReg := make([]int, overflow+1) // registers after the previous item; 0 = "not yet reached"
	for i := 0; i < n; i++ {
		w := weights[i]
		lit := lits[i]

		if w > bound {
			// lit alone would already exceed bound: it must be false.
			buf.Add(-lit)
			continue
		}

		curReg := make([]int, overflow+1)
		for j := 1; j <= overflow; j++ {
			curReg[j] = nextVar
			nextVar++
		}

		// lit alone reaches level w.
		buf.Add(-lit, curReg[w])
		// carry forward: whatever was reached before is still reached.
		for j := 1; j <= overflow; j++ {
			if prevReg[j] != 0 {
				buf.Add(-prevReg[j], curReg[j])
			}
		}
		// lit plus a prior level j reaches level j+w, capped at overflow.
		for j := 1; j <= overflow; j++ {
			if prevReg[j] != 0 {
				target := j + w
				if target > overflow {
					target = overflow
				}
				buf.Add(-lit, -prevReg[j], curReg[target])
			}
		}
		prevReg = curReg
	}
	// Forbid ever reaching the overflow level.
	if prevReg[overflow] != 0 {
		buf.Add(-prevReg[overflow])
	}
	return nextVar
}
