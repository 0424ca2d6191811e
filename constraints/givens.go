package constraints

import "github.com/crillab/sudokuvariants/board"

// encodeGivens appends one unit clause per (cellIdx -> digit) pair: the
// cell must hold that digit. filled is treated identically to givens,
// per spec.md §4.3 — the distinction between the two kinds is editor-level
// only and carries no encoding difference.
func encodeGivens(nextVar int, e board.Element, b Board, ctx Context) (int, error) {
	digits, err := e.DigitMap()
	if err != nil {
		return nextVar, err
	}
	a := ctx.Alloc
	for cellIdx, digit := range digits {
		row, col := board.RowCol(cellIdx, b.N)
		ctx.Buf.Add(a.Lit(row, col, digit-1))
	}
	return nextVar, nil
}
