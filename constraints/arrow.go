package constraints

import (
	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/pbenc"
)

// encodeArrow appends, for each arrow, one guarded PB equality per
// possible head digit: if the head cell holds digit headVal+1, the tail
// cells' digits must sum to exactly headVal+1. Since the PB encoder only
// takes positive weights, this case-split avoids needing to reify the
// head's own value into a signed weighted term the way littleKiller
// reifies a fixed sum.
func encodeArrow(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	arrows, err := e.ArrowMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for _, ar := range arrows {
		headRow, headCol := board.RowCol(ar.Head, b.N)
		var weights, lits []int
		for _, cellIdx := range ar.Tail {
			row, col := board.RowCol(cellIdx, b.N)
			for v := 0; v < b.N; v++ {
				weights = append(weights, v+1)
				lits = append(lits, a.Lit(row, col, v))
			}
		}
		for headVal := 0; headVal < b.N; headVal++ {
			headLit := a.Lit(headRow, headCol, headVal)
			target := headVal + 1
			nextVar = pbenc.EncodeBothGuarded(headLit, weights, lits, target, target, ctx.Buf, nextVar)
		}
	}
	return nextVar, nil
}
