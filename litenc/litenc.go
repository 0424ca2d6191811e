// Package litenc implements the deterministic bijection between
// (row, col, digit) triples and base CNF variables, and hands out
// auxiliary variable ids above the base range.
package litenc

// Alloc is the variable allocator for a single compile of an N x N board.
// It holds only N; the next-free-variable high-water mark is an int that
// callers (the PB encoder, mostly) thread through and advance as they
// introduce aux vars, starting from FirstAux.
type Alloc struct {
	N int
}

// NewAlloc returns an allocator for an N x N board. The base variable
// space spans [1, N^3]; aux vars start at N^3+1.
func NewAlloc(n int) Alloc {
	return Alloc{N: n}
}

// BaseVars is the size of the base variable space, N^3.
func (a Alloc) BaseVars() int {
	return a.N * a.N * a.N
}

// FirstAux is the first variable id available for auxiliary variables,
// i.e. N^3+1.
func (a Alloc) FirstAux() int {
	return a.BaseVars() + 1
}

// Lit returns the base variable for "cell (r,c) holds digit v+1", per
// lit(r,c,v) = 1 + r*N^2 + c*N + v. 0 <= r,c,v < N.
func (a Alloc) Lit(r, c, v int) int {
	n := a.N
	return 1 + r*n*n + c*n + v
}

// Inverse is the mutual inverse of Lit: given a base variable in
// [1, N^3], it returns the (r, c, v) triple it encodes.
func (a Alloc) Inverse(lit int) (r, c, v int) {
	n := a.N
	x := lit - 1
	r = x / (n * n)
	x -= r * n * n
	c = x / n
	v = x % n
	return
}
