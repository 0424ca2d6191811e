package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolverLitEncoding(t *testing.T) {
	assert.Equal(t, 0, SolverLit(1))
	assert.Equal(t, 1, SolverLit(-1))
	assert.Equal(t, 2, SolverLit(2))
	assert.Equal(t, 3, SolverLit(-2))
}

func TestExactlyOneClauseShape(t *testing.T) {
	var buf Buffer
	buf.ExactlyOne([]int{1, 2, 3})
	// 1 at-least-one clause + C(3,2) = 3 at-most pairs
	assert.Len(t, buf.Clauses, 4)
	assert.Equal(t, Clause{1, 2, 3}, buf.Clauses[0])
}

func TestAtMostOneHasNoAtLeastOneClause(t *testing.T) {
	var buf Buffer
	buf.AtMostOne([]int{1, 2, 3})
	assert.Len(t, buf.Clauses, 3)
	for _, c := range buf.Clauses {
		assert.Len(t, c, 2)
	}
}
