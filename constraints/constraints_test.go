package constraints

import (
	"encoding/json"
	"testing"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/cnf"
	"github.com/crillab/sudokuvariants/litenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(n int) (Context, litenc.Alloc) {
	a := litenc.NewAlloc(n)
	return Context{Alloc: a, Buf: &cnf.Buffer{}}, a
}

func TestEncodeGridClauseShape(t *testing.T) {
	ctx, _ := newCtx(4)
	nextVar, err := encodeGrid(litenc.NewAlloc(4).FirstAux(), board.Element{}, Board{N: 4}, ctx)
	require.NoError(t, err)
	assert.Equal(t, litenc.NewAlloc(4).FirstAux(), nextVar) // grid needs no aux vars
	// 16 (row,col) pairs * 3 families * (1 at-least-one + C(4,2) at-most) clauses
	wantPerFamily := 1 + 4*3/2
	assert.Equal(t, 16*3*wantPerFamily, ctx.Buf.Len())
}

func TestEncodeGivensUnitClauses(t *testing.T) {
	ctx, a := newCtx(9)
	val, _ := json.Marshal(map[int]int{0: 5, 10: 1})
	e := board.Element{ID: "g", Type: board.KindGivens, Value: val}
	nextVar, err := encodeGivens(100, e, Board{N: 9}, ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, nextVar)
	require.Len(t, ctx.Buf.Clauses, 2)
	for _, c := range ctx.Buf.Clauses {
		require.Len(t, c, 1)
	}
	want := map[int]bool{a.Lit(0, 0, 4): true, a.Lit(1, 1, 0): true}
	for _, c := range ctx.Buf.Clauses {
		assert.True(t, want[c[0]], "unexpected literal %d", c[0])
	}
}

func TestEncodeBoxRejectsPrimeSize(t *testing.T) {
	ctx, _ := newCtx(7)
	_, err := encodeBox(litenc.NewAlloc(7).FirstAux(), board.Element{}, Board{N: 7}, ctx)
	assert.Error(t, err)
}

func TestEncodeLittleKillerDiagonal(t *testing.T) {
	ctx, a := newCtx(9)
	val, _ := json.Marshal(map[string]int{"0,0,1,1": 6})
	e := board.Element{ID: "lk", Type: board.KindLittleKiller, Value: val}
	nextVar, err := encodeLittleKiller(litenc.NewAlloc(9).FirstAux(), e, Board{N: 9}, ctx)
	require.NoError(t, err)
	assert.Greater(t, nextVar, litenc.NewAlloc(9).FirstAux())
	assert.NotEmpty(t, ctx.Buf.Clauses)
	_ = a
}

func TestEncodeQuadrupleSingleDigitIsPlainClause(t *testing.T) {
	ctx, a := newCtx(4)
	val, _ := json.Marshal(map[string]board.Quadruple{
		"q": {Cells: board.Line{0, 1, 4, 5}, Digits: []int{3}},
	})
	e := board.Element{ID: "q", Type: board.KindQuadruple, Value: val}
	nextVar, err := encodeQuadruple(300, e, Board{N: 4}, ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, nextVar) // single-multiplicity digit needs no aux vars
	require.Len(t, ctx.Buf.Clauses, 1)
	want := cnf.Clause{a.Lit(0, 0, 2), a.Lit(0, 1, 2), a.Lit(1, 0, 2), a.Lit(1, 1, 2)}
	assert.ElementsMatch(t, want, ctx.Buf.Clauses[0])
}

func TestEncodeQuadrupleRepeatedDigitUsesPBAtLeast(t *testing.T) {
	ctx, _ := newCtx(4)
	val, _ := json.Marshal(map[string]board.Quadruple{
		"q": {Cells: board.Line{0, 1, 4, 5}, Digits: []int{3, 3}},
	})
	e := board.Element{ID: "q", Type: board.KindQuadruple, Value: val}
	nextVar, err := encodeQuadruple(300, e, Board{N: 4}, ctx)
	require.NoError(t, err)
	assert.Greater(t, nextVar, 300) // k=2 at-least goes through the PB encoder
	assert.NotEmpty(t, ctx.Buf.Clauses)
}

func TestEncodeCloneMirroredClauses(t *testing.T) {
	ctx, a := newCtx(4)
	val, _ := json.Marshal(map[string]board.Clone{
		"c": {A: board.Line{0}, B: board.Line{1}},
	})
	e := board.Element{ID: "c", Type: board.KindClone, Value: val}
	nextVar, err := encodeClone(200, e, Board{N: 4}, ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, nextVar)
	assert.Len(t, ctx.Buf.Clauses, 4*2)
	assert.Contains(t, ctx.Buf.Clauses, cnf.Clause{-a.Lit(0, 0, 0), a.Lit(0, 1, 0)})
}
