package solveradapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdapterSatisfiable(t *testing.T) {
	a := New()
	a.DeclareVars(2)
	a.AddClause([]int{1, 2})
	a.AddClause([]int{-1, 2})
	a.SetMaxTime(time.Second)
	status := a.Solve()
	assert.Equal(t, Sat, status)
	assert.True(t, a.GetModel(2))
	a.Free()
}

func TestAdapterUnsatisfiable(t *testing.T) {
	a := New()
	a.DeclareVars(1)
	a.AddClause([]int{1})
	a.AddClause([]int{-1})
	a.SetMaxTime(time.Second)
	status := a.Solve()
	assert.Equal(t, Unsat, status)
	a.Free()
}

func TestAdapterSeesClausesAddedAfterFirstSolve(t *testing.T) {
	a := New()
	a.DeclareVars(1)
	a.AddClause([]int{1})
	a.SetMaxTime(time.Second)
	status := a.Solve()
	assert.Equal(t, Sat, status)
	assert.True(t, a.GetModel(1))

	a.AddClause([]int{-1})
	a.SetMaxTime(time.Second)
	status = a.Solve()
	assert.Equal(t, Unsat, status)
	a.Free()
}
