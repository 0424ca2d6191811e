package constraints

import (
	"fmt"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/pbenc"
)

// diagonalCells resolves an opaque little-killer diagonal index to its
// ordered sequence of (row, col) cells, per the "Diagonal index" glossary
// entry in spec.md: diagIdx is "row,col,dr,dc", the starting cell and
// step direction (each of dr, dc in {-1,0,1}, not both zero); the
// diagonal runs from that cell to the grid edge.
func diagonalCells(diagIdx string, n int) ([]struct{ row, col int }, error) {
	var row, col, dr, dc int
	if _, err := fmt.Sscanf(diagIdx, "%d,%d,%d,%d", &row, &col, &dr, &dc); err != nil {
		return nil, fmt.Errorf("malformed diagonal index %q: %w", diagIdx, err)
	}
	if dr == 0 && dc == 0 {
		return nil, fmt.Errorf("malformed diagonal index %q: zero direction", diagIdx)
	}
	var cells []struct{ row, col int }
	for row >= 0 && row < n && col >= 0 && col < n {
		cells = append(cells, struct{ row, col int }{row, col})
		row += dr
		col += dc
	}
	return cells, nil
}

// encodeLittleKiller appends, for each (diagIdx -> sum) pair with a
// numeric sum, a PB equality over the diagonal's cells: the weighted sum
// of digit(v+1) literals across the diagonal must equal sum. Non-numeric
// payloads are already dropped by SumMap.
func encodeLittleKiller(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	sums, err := e.SumMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for diagIdx, sum := range sums {
		cells, err := diagonalCells(diagIdx, b.N)
		if err != nil {
			return nextVar, err
		}
		var weights, lits []int
		for _, c := range cells {
			for v := 0; v < b.N; v++ {
				weights = append(weights, v+1)
				lits = append(lits, a.Lit(c.row, c.col, v))
			}
		}
		nextVar = pbenc.EncodeBoth(weights, lits, sum, sum, ctx.Buf, nextVar)
	}
	return nextVar, nil
}
