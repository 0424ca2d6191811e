package constraints

import "github.com/crillab/sudokuvariants/board"

// encodeGrid appends the three exactly-one families from spec.md §4.3:
// each cell holds exactly one digit, each row has each digit exactly
// once, each column has each digit exactly once. No aux vars needed —
// these are plain exactly-one constraints over N literals each.
func encodeGrid(nextVar int, _ board.Element, b Board, ctx Context) (int, error) {
	n := b.N
	a := ctx.Alloc
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			cell := make([]int, n)
			row := make([]int, n)
			col := make([]int, n)
			for v := 0; v < n; v++ {
				cell[v] = a.Lit(x, y, v)
				row[v] = a.Lit(x, v, y)
				col[v] = a.Lit(v, x, y)
			}
			ctx.Buf.ExactlyOne(cell)
			ctx.Buf.ExactlyOne(row)
			ctx.Buf.ExactlyOne(col)
		}
	}
	return nextVar, nil
}
