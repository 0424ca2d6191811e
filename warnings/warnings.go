// Package warnings implements the warning evaluator of spec.md §4.6: a
// set of local, partial-information rules run over the current digit map
// independently of the SAT path, used to flag offending cells live as a
// board is edited.
package warnings

import "github.com/crillab/sudokuvariants/board"

// Digits is a cellIdx -> digit (1..N) map, possibly partial.
type Digits map[int]int

// Flags is the set of cellIdx currently violating some rule.
type Flags map[int]bool

func (f Flags) flag(cellIdx int) {
	f[cellIdx] = true
}

func (f Flags) flagAll(cells board.Line) {
	for _, c := range cells {
		f[c] = true
	}
}

// Options carries the one configurable rule parameter: lockout's minimum
// circle delta, per the REDESIGN FLAGS note in spec.md §9 ("lockout delta
// hardcoded... treat as config input"). Zero means use the spec.md
// default, ((N+1)>>1)-1.
type Options struct {
	LockoutDelta int
}

func (o Options) lockoutDelta(n int) int {
	if o.LockoutDelta > 0 {
		return o.LockoutDelta
	}
	return ((n + 1) >> 1) - 1
}

// evaluators maps each kind with a warning rule to its rule function.
// Kinds absent here are either SAT-only (grid, box, disjointGroups,
// givens, filled, littleKiller) or pure annotations (corner, center, colors); both
// contribute no warnings.
var evaluators = map[board.Kind]func(board.Element, board.Board, Digits, Options, Flags) error{
	board.KindThermo:       evalThermo(false),
	board.KindSlowThermo:   evalThermo(true),
	board.KindBetween:      evalBetween,
	board.KindDoubleArrow:  evalDoubleArrow,
	board.KindLockout:      evalLockout,
	board.KindPalindrome:   evalPalindrome,
	board.KindWhisper:      evalWhisper(false),
	board.KindDutchWhisper: evalWhisper(true),
	board.KindRenban:       evalRenban,
	board.KindArrow:        evalArrow,
	board.KindKiller:       evalKiller,
	board.KindClone:        evalClone,
	board.KindQuadruple:    evalQuadruple,
}

// Evaluate runs every applicable rule over b given the current digits and
// returns the flagged cell set. It overwrites rather than accumulates, per
// spec.md §4.6's "called after every board mutation... no accumulation".
func Evaluate(b board.Board, digits Digits, opts Options) (Flags, error) {
	flags := Flags{}
	for _, e := range b.Elements {
		fn, ok := evaluators[e.Type]
		if !ok {
			continue
		}
		if err := fn(e, b, digits, opts, flags); err != nil {
			return nil, err
		}
	}
	return flags, nil
}
