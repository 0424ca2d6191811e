package constraints

import (
	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/pbenc"
)

// encodeKiller appends, for each cage, a PB equality forcing the cage's
// digits to sum to its target, plus (unless the cage explicitly allows
// repeats) an at-most-one per digit across the cage's cells.
func encodeKiller(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	cages, err := e.KillerMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for _, cage := range cages {
		var weights, lits []int
		for _, cellIdx := range cage.Cage {
			row, col := board.RowCol(cellIdx, b.N)
			for v := 0; v < b.N; v++ {
				weights = append(weights, v+1)
				lits = append(lits, a.Lit(row, col, v))
			}
		}
		nextVar = pbenc.EncodeBoth(weights, lits, cage.Sum, cage.Sum, ctx.Buf, nextVar)

		if !cage.Repeats() {
			for v := 0; v < b.N; v++ {
				digitLits := make([]int, len(cage.Cage))
				for i, cellIdx := range cage.Cage {
					row, col := board.RowCol(cellIdx, b.N)
					digitLits[i] = a.Lit(row, col, v)
				}
				ctx.Buf.AtMostOne(digitLits)
			}
		}
	}
	return nextVar, nil
}
