package pbenc

import (
	"testing"

	"github.com/crillab/sudokuvariants/cnf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// satisfiable reports whether assignment (a 1-indexed bool slice, index 0
// unused) satisfies every clause in buf.
func satisfiable(buf *cnf.Buffer, assign []bool) bool {
	for _, c := range buf.Clauses {
		ok := false
		for _, lit := range c {
			v := lit
			want := true
			if v < 0 {
				v, want = -v, false
			}
			if assign[v] == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// existsSatisfyingAux reports whether some assignment of the auxiliary
// variables in [firstAux, nextVar), combined with the fixed base
// assignment, satisfies buf. It searches with unit propagation and
// backtracking rather than enumerating every aux assignment, so it stays
// exact for encodings with many more aux vars than enumeration could cover.
func existsSatisfyingAux(buf *cnf.Buffer, base []bool, firstAux, nextVar int) bool {
	assign := make([]int8, nextVar) // 1 true, -1 false, 0 unassigned
	for v := 1; v < firstAux; v++ {
		assign[v] = -1
		if base[v] {
			assign[v] = 1
		}
	}
	return search(buf, assign)
}

// search extends the partial assignment to one that satisfies every clause
// of buf, and reports whether such an extension exists.
func search(buf *cnf.Buffer, assign []int8) bool {
	for changed := true; changed; {
		changed = false
		for _, c := range buf.Clauses {
			open, last := 0, 0
			sat := false
			for _, lit := range c {
				v, s := lit, int8(1)
				if v < 0 {
					v, s = -v, -1
				}
				if assign[v] == s {
					sat = true
					break
				}
				if assign[v] == 0 {
					open, last = open+1, lit
				}
			}
			if sat {
				continue
			}
			if open == 0 {
				return false
			}
			if open == 1 {
				if last > 0 {
					assign[last] = 1
				} else {
					assign[-last] = -1
				}
				changed = true
			}
		}
	}
	for v := 1; v < len(assign); v++ {
		if assign[v] == 0 {
			for _, s := range []int8{-1, 1} {
				next := append([]int8(nil), assign...)
				next[v] = s
				if search(buf, next) {
					return true
				}
			}
			return false
		}
	}
	full := make([]bool, len(assign))
	for v := range assign {
		full[v] = assign[v] == 1
	}
	return satisfiable(buf, full)
}

func weightedSum(weights []int, base []bool, lits []int) int {
	sum := 0
	for i, lit := range lits {
		v := lit
		want := true
		if v < 0 {
			v, want = -v, false
		}
		if base[v] == want {
			sum += weights[i]
		}
	}
	return sum
}

func TestEncodeBothEquisatisfiable(t *testing.T) {
	weights := []int{1, 2, 3, 2}
	lits := []int{1, 2, 3, 4}
	firstAux := 5

	for _, bounds := range []struct{ lo, hi int }{
		{0, 8}, {0, 0}, {1, 1}, {2, 4}, {3, 3}, {5, 8}, {0, 100}, {8, 8},
	} {
		t.Run("", func(t *testing.T) {
			var buf cnf.Buffer
			nextVar := EncodeBoth(weights, lits, bounds.lo, bounds.hi, &buf, firstAux)
			require.GreaterOrEqual(t, nextVar, firstAux)

			for mask := 0; mask < 16; mask++ {
				base := make([]bool, firstAux)
				for i := 0; i < 4; i++ {
					base[lits[i]] = mask&(1<<i) != 0
				}
				sum := weightedSum(weights, base, lits)
				want := sum >= bounds.lo && sum <= bounds.hi
				got := existsSatisfyingAux(&buf, base, firstAux, nextVar)
				assert.Equalf(t, want, got, "sum=%d lo=%d hi=%d base=%v", sum, bounds.lo, bounds.hi, base)
			}
		})
	}
}

func TestEncodeBothFreshAuxVars(t *testing.T) {
	var buf cnf.Buffer
	nextVar := EncodeBoth([]int{1, 1, 1}, []int{1, 2, 3}, 1, 1, &buf, 4)
	for _, c := range buf.Clauses {
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			assert.Less(t, v, nextVar)
		}
	}
}

func TestEncodeBothVacuous(t *testing.T) {
	var buf cnf.Buffer
	nextVar := EncodeBoth([]int{1, 2, 3}, []int{1, 2, 3}, 0, 6, &buf, 4)
	assert.Equal(t, 4, nextVar)
	assert.Empty(t, buf.Clauses)
}
