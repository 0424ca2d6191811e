package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowColCellIdxRoundTrip(t *testing.T) {
	for n := 2; n <= 9; n++ {
		for cell := 0; cell < n*n; cell++ {
			r, c := RowCol(cell, n)
			assert.Equal(t, cell, CellIdx(r, c, n))
		}
	}
}

func TestDigitMapDecodesCellIdxKeys(t *testing.T) {
	val, _ := json.Marshal(map[int]int{5: 3, 10: 7})
	e := Element{ID: "g", Value: val}
	m, err := e.DigitMap()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 3, 10: 7}, m)
}

func TestSumMapIgnoresNonNumericPayloads(t *testing.T) {
	val := []byte(`{"a": 6, "b": "not a number"}`)
	e := Element{ID: "lk", Value: val}
	m, err := e.SumMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 6}, m)
}

func TestBoolDefaultsFalseWhenAbsent(t *testing.T) {
	e := Element{ID: "dg"}
	v, err := e.Bool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestKillerRepeatsDefaultsToForbidden(t *testing.T) {
	k := Killer{Cage: Line{0, 1}, Sum: 5}
	assert.False(t, k.Repeats())

	noRepeat := true
	k.NoRepeat = &noRepeat
	assert.False(t, k.Repeats())

	allowRepeat := false
	k.NoRepeat = &allowRepeat
	assert.True(t, k.Repeats())
}

func TestIsKnownRecognizesAllDeclaredKinds(t *testing.T) {
	for k := range knownKinds {
		assert.True(t, IsKnown(k))
	}
	assert.False(t, IsKnown(Kind("madeUpKind")))
}
