package constraints

import (
	"fmt"

	"github.com/crillab/sudokuvariants/board"
)

// boxDims returns (bw, bh) such that bw*bh == n and the two factors are
// as close to sqrt(n) as possible, so that N=9 yields the classic 3x3
// boxes. Returns ok=false if n has no nontrivial factorization (e.g. a
// prime), in which case box/disjointGroups cannot be encoded — this is
// the parameterization called for by the box-arithmetic REDESIGN FLAG.
func boxDims(n int) (bw, bh int, ok bool) {
	for bh = intSqrt(n); bh >= 2; bh-- {
		if n%bh == 0 && n/bh >= 2 {
			return n / bh, bh, true
		}
	}
	return 0, 0, false
}

func intSqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// boxCells returns the n cell (row, col) pairs of box index bx, using
// box dimensions (bw, bh): each box is bw columns wide and bh rows tall,
// tiled across the grid, and contains bw*bh == n cells.
func boxCells(bx, bw, bh, n int) []struct{ row, col int } {
	boxesPerRow := n / bw
	boxRow := bx / boxesPerRow
	boxCol := bx % boxesPerRow
	cells := make([]struct{ row, col int }, 0, n)
	for pos := 0; pos < n; pos++ {
		row := boxRow*bh + pos/bw
		col := boxCol*bw + pos%bw
		cells = append(cells, struct{ row, col int }{row, col})
	}
	return cells
}

// encodeBox appends, for each digit and each box, an exactly-one
// constraint over that box's N cells holding that digit. Box geometry is
// parameterized per boxDims rather than hard-coded to 3x3, per the
// REDESIGN FLAGS section of SPEC_FULL.md.
func encodeBox(nextVar int, _ board.Element, b Board, ctx Context) (int, error) {
	bw, bh, ok := boxDims(b.N)
	if !ok {
		return nextVar, fmt.Errorf("grid size %d has no box factorization", b.N)
	}
	a := ctx.Alloc
	for val := 0; val < b.N; val++ {
		for bx := 0; bx < b.N; bx++ {
			lits := make([]int, 0, b.N)
			for _, rc := range boxCells(bx, bw, bh, b.N) {
				lits = append(lits, a.Lit(rc.row, rc.col, val))
			}
			ctx.Buf.ExactlyOne(lits)
		}
	}
	return nextVar, nil
}

// encodeDisjointGroups is active iff the element's boolean payload is
// true. For each digit and each position within a box, the set of cells
// sharing that position across all boxes must contain the digit exactly
// once. Uses the same box geometry as encodeBox.
func encodeDisjointGroups(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	active, err := e.Bool()
	if err != nil {
		return nextVar, err
	}
	if !active {
		return nextVar, nil
	}
	bw, bh, ok := boxDims(b.N)
	if !ok {
		return nextVar, fmt.Errorf("grid size %d has no box factorization", b.N)
	}
	nBoxes := b.N
	a := ctx.Alloc
	for val := 0; val < b.N; val++ {
		for pos := 0; pos < b.N; pos++ {
			lits := make([]int, 0, nBoxes)
			for bx := 0; bx < nBoxes; bx++ {
				cells := boxCells(bx, bw, bh, b.N)
				rc := cells[pos]
				lits = append(lits, a.Lit(rc.row, rc.col, val))
			}
			ctx.Buf.ExactlyOne(lits)
		}
	}
	return nextVar, nil
}
