package constraints

import (
	"fmt"

	"github.com/crillab/sudokuvariants/board"
)

// encodeClone appends, for each clone pair, cell-wise digit equality
// between the two sequences: no aux vars needed, since equating two
// single-valued cells is a direct biconditional over their N literals.
func encodeClone(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	clones, err := e.CloneMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for id, cl := range clones {
		if len(cl.A) != len(cl.B) {
			return nextVar, fmt.Errorf("clone %q: sequences have different lengths (%d vs %d)", id, len(cl.A), len(cl.B))
		}
		for i := range cl.A {
			rowA, colA := board.RowCol(cl.A[i], b.N)
			rowB, colB := board.RowCol(cl.B[i], b.N)
			for v := 0; v < b.N; v++ {
				litA := a.Lit(rowA, colA, v)
				litB := a.Lit(rowB, colB, v)
				ctx.Buf.Add(-litA, litB)
				ctx.Buf.Add(-litB, litA)
			}
		}
	}
	return nextVar, nil
}
