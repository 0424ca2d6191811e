// Package board defines the data model consumed by the compiler: a
// finalized grid and an unordered collection of constraint elements.
package board

import (
	"encoding/json"
	"fmt"
)

// Grid is the rectangular extent of a board. The compiler only accepts
// square grids (Width == Height); see feasibility.Gate.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Kind tags the payload shape of an Element. These are the canonical tags
// from spec.md §3, plus the supplemented variant kinds from SPEC_FULL.md §3.
type Kind string

const (
	KindGrid           Kind = "grid"
	KindBox            Kind = "box"
	KindDisjointGroups Kind = "disjointGroups"
	KindGivens         Kind = "givens"
	KindFilled         Kind = "filled"
	KindLittleKiller   Kind = "littleKiller"
	KindThermo         Kind = "thermo"
	KindSlowThermo     Kind = "slowThermo"
	KindBetween        Kind = "between"
	KindDoubleArrow    Kind = "doubleArrow"
	KindLockout        Kind = "lockout"
	KindPalindrome     Kind = "palindrome"
	KindWhisper        Kind = "whisper"
	KindDutchWhisper   Kind = "dutchWhisper"
	KindRenban         Kind = "renban"
	KindArrow          Kind = "arrow"
	KindKiller         Kind = "killer"
	KindClone          Kind = "clone"
	KindQuadruple      Kind = "quadruple"
	KindCorner         Kind = "corner"
	KindCenter         Kind = "center"
	KindColors         Kind = "colors"
)

// knownKinds is the set of tags the feasibility gate recognizes. Being
// known does not imply having a SAT encoder: see constraints.EncodedKinds
// and the evaluators table in package warnings.
var knownKinds = map[Kind]bool{
	KindGrid: true, KindBox: true, KindDisjointGroups: true,
	KindGivens: true, KindFilled: true, KindLittleKiller: true,
	KindThermo: true, KindSlowThermo: true, KindBetween: true,
	KindDoubleArrow: true, KindLockout: true, KindPalindrome: true,
	KindWhisper: true, KindDutchWhisper: true, KindRenban: true,
	KindArrow: true, KindKiller: true, KindClone: true, KindQuadruple: true,
	KindCorner: true, KindCenter: true, KindColors: true,
}

// IsKnown reports whether k is a tag the compiler recognizes at all
// (whether or not it has a SAT encoding).
func IsKnown(k Kind) bool {
	return knownKinds[k]
}

// Line is an ordered sequence of cell indices, used by thermo, between,
// whisper, renban, killer cages, clone pairs, and similar line/group
// constraints.
type Line []int

// Element is one constraint in a board snapshot. Value holds the
// kind-specific payload, deferred as raw JSON until an encoder or warning
// rule asks for a typed view of it.
type Element struct {
	ID    string          `json:"id"`
	Type  Kind            `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Board is an immutable snapshot: a grid plus an unordered map of
// elements keyed by opaque id. Order among elements is not observable.
type Board struct {
	Grid     Grid               `json:"grid"`
	Elements map[string]Element `json:"elements"`
}

// N returns the grid's side length. Callers should only call this after
// confirming Width == Height (feasibility.Gate does this).
func (b Board) N() int {
	return b.Grid.Width
}

// ElementsOfType returns every element whose Type matches k, in no
// particular order.
func (b Board) ElementsOfType(k Kind) []Element {
	var out []Element
	for _, e := range b.Elements {
		if e.Type == k {
			out = append(out, e)
		}
	}
	return out
}

// HasType reports whether any element of kind k is present.
func (b Board) HasType(k Kind) bool {
	for _, e := range b.Elements {
		if e.Type == k {
			return true
		}
	}
	return false
}

// DigitMap decodes a cellIdx -> digit payload, used by givens and filled.
func (e Element) DigitMap() (map[int]int, error) {
	var m map[int]int
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding digit map: %w", e.ID, err)
	}
	return m, nil
}

// SumMap decodes a diagonalIdx -> sum payload, used by littleKiller.
// diagonalIdx is opaque (see the "Diagonal index" glossary entry) and
// kept as a string key; non-numeric sum payloads are dropped, matching
// spec.md §4.3's "non-numeric payloads are ignored".
func (e Element) SumMap() (map[string]int, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(e.Value, &raw); err != nil {
		return nil, fmt.Errorf("element %q: decoding sum map: %w", e.ID, err)
	}
	out := make(map[string]int, len(raw))
	for k, v := range raw {
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			continue // non-numeric payload: ignored, not an error
		}
		out[k] = n
	}
	return out, nil
}

// LineMap decodes a lineId -> ordered cell sequence payload, used by
// thermo, between, whisper, renban, and the other line-shaped kinds.
func (e Element) LineMap() (map[string]Line, error) {
	var m map[string]Line
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding line map: %w", e.ID, err)
	}
	return m, nil
}

// Bool decodes a boolean payload, used by disjointGroups.
func (e Element) Bool() (bool, error) {
	var b bool
	if len(e.Value) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(e.Value, &b); err != nil {
		return false, fmt.Errorf("element %q: decoding bool: %w", e.ID, err)
	}
	return b, nil
}

// Arrow is one arrow-element entry: the head cell's digit must equal the
// sum of the tail cells' digits.
type Arrow struct {
	Head int  `json:"head"`
	Tail Line `json:"tail"`
}

// ArrowMap decodes an arrowId -> Arrow payload, used by the arrow kind.
func (e Element) ArrowMap() (map[string]Arrow, error) {
	var m map[string]Arrow
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding arrow map: %w", e.ID, err)
	}
	return m, nil
}

// Killer is one killer-cage entry: the cage's digits must sum to Sum, and
// (unless NoRepeat is explicitly false) no digit may repeat in the cage.
type Killer struct {
	Cage     Line  `json:"cage"`
	Sum      int   `json:"sum"`
	NoRepeat *bool `json:"noRepeat,omitempty"`
}

// Repeats reports whether the cage allows repeated digits; killer cages
// forbid repeats by default.
func (k Killer) Repeats() bool {
	return k.NoRepeat != nil && !*k.NoRepeat
}

// KillerMap decodes a cageId -> Killer payload, used by the killer kind.
func (e Element) KillerMap() (map[string]Killer, error) {
	var m map[string]Killer
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding killer map: %w", e.ID, err)
	}
	return m, nil
}

// Clone is one clone-pair entry: sequences A and B of equal length must
// agree digit-for-digit at corresponding positions.
type Clone struct {
	A Line `json:"a"`
	B Line `json:"b"`
}

// CloneMap decodes a cloneId -> Clone payload, used by the clone kind.
func (e Element) CloneMap() (map[string]Clone, error) {
	var m map[string]Clone
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding clone map: %w", e.ID, err)
	}
	return m, nil
}

// Quadruple is one quadruple entry: every digit listed in Digits must
// appear somewhere among Cells (normally the four cells of a 2x2 block).
type Quadruple struct {
	Cells  Line  `json:"cells"`
	Digits []int `json:"digits"`
}

// QuadrupleMap decodes a quadId -> Quadruple payload, used by the
// quadruple kind.
func (e Element) QuadrupleMap() (map[string]Quadruple, error) {
	var m map[string]Quadruple
	if err := json.Unmarshal(e.Value, &m); err != nil {
		return nil, fmt.Errorf("element %q: decoding quadruple map: %w", e.ID, err)
	}
	return m, nil
}

// RowCol splits a cellIdx into (row, col) for a board of side n.
func RowCol(cellIdx, n int) (row, col int) {
	return cellIdx / n, cellIdx % n
}

// CellIdx is the inverse of RowCol.
func CellIdx(row, col, n int) int {
	return row*n + col
}
