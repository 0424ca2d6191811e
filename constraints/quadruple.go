package constraints

import (
	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/pbenc"
)

// encodeQuadruple appends, for each required digit, an at-least-k clause
// family over the block's cells: k is the digit's multiplicity in the
// required list, capped at the block's size. A plain clause covers k=1;
// higher multiplicities (e.g. "two 3s among these four cells") go through
// the PB encoder as an unweighted at-least-k cardinality constraint.
func encodeQuadruple(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	quads, err := e.QuadrupleMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for _, q := range quads {
		counts := map[int]int{}
		for _, digit := range q.Digits {
			counts[digit]++
		}
		for digit, k := range counts {
			if k > len(q.Cells) {
				k = len(q.Cells)
			}
			lits := make([]int, len(q.Cells))
			weights := make([]int, len(q.Cells))
			for i, cellIdx := range q.Cells {
				row, col := board.RowCol(cellIdx, b.N)
				lits[i] = a.Lit(row, col, digit-1)
				weights[i] = 1
			}
			if k <= 1 {
				ctx.Buf.Add(lits...)
				continue
			}
			nextVar = pbenc.EncodeBoth(weights, lits, k, len(q.Cells), ctx.Buf, nextVar)
		}
	}
	return nextVar, nil
}
