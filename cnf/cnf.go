// Package cnf defines the clause buffer shared by the PB encoder and the
// constraint encoders, and the literal convention used throughout the
// compiler: a CNF literal is a signed nonzero integer, positive meaning
// the variable is true, negative meaning it is false.
package cnf

// Clause is a disjunction of literals.
type Clause []int

// Buffer is an ordered sequence of clauses. Order of insertion does not
// affect satisfiability but is preserved for reproducibility, per
// spec.md §3.
type Buffer struct {
	Clauses []Clause
}

// Add appends a clause built from lits. Add takes ownership of lits; do
// not mutate it afterwards.
func (b *Buffer) Add(lits ...int) {
	b.Clauses = append(b.Clauses, Clause(lits))
}

// AddClause appends c as-is.
func (b *Buffer) AddClause(c Clause) {
	b.Clauses = append(b.Clauses, c)
}

// Len returns the number of clauses currently buffered.
func (b *Buffer) Len() int {
	return len(b.Clauses)
}

// SolverLit translates a CNF literal to the solver's own representation,
// per spec.md §4.5: solverLit(L) = 2*(|L|-1) + (L<0 ? 1 : 0).
func SolverLit(l int) int {
	v := l
	neg := 0
	if v < 0 {
		v = -v
		neg = 1
	}
	return 2*(v-1) + neg
}

// ExactlyOne appends a clause requiring at least one of lits to be true,
// plus pairwise clauses requiring at most one. This is the propositional
// (non-PB) form used by the grid and box encoders, which never need
// weights or aux variables since all weights are implicitly 1 and the
// cardinality is exactly 1.
func (b *Buffer) ExactlyOne(lits []int) {
	b.Add(lits...)
	b.AtMostOne(lits)
}

// AtMostOne appends the pairwise clauses forbidding two of lits from
// being true together, without requiring any of them to be true. Used by
// killer cages for the no-repeat-per-digit rule, where the digit may
// legitimately be absent from the cage entirely.
func (b *Buffer) AtMostOne(lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			b.Add(-lits[i], -lits[j])
		}
	}
}
