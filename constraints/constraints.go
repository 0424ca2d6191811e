// Package constraints holds the per-constraint-kind CNF encoders. Each
// encoder is a pure function (nextVar, element, context) -> nextVar' that
// appends clauses to the shared buffer; encoders never communicate with
// each other except through the variable high-water mark they thread
// through.
package constraints

import (
	"errors"
	"fmt"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/cnf"
	"github.com/crillab/sudokuvariants/litenc"
	"github.com/sirupsen/logrus"
)

// ErrCancelled is returned by Encode when cancel fires before every
// element has been encoded, per spec.md §4.5's requirement that the
// cancel token be checked before each constraint is encoded.
var ErrCancelled = errors.New("constraints: encoding cancelled")

// Context carries the shared state an encoder needs: the variable
// allocator for the board's N, and the clause buffer to append to.
type Context struct {
	Alloc litenc.Alloc
	Buf   *cnf.Buffer
	Log   logrus.FieldLogger
}

// encoded is the set of kinds this package knows how to turn into CNF.
// Kinds known to board.IsKnown but absent here are encoding no-ops: they
// are either pure annotations (corner, center, colors) or warning-only
// variant kinds (thermo, whisper, renban, ...).
var encoded = map[board.Kind]func(int, board.Element, Board, Context) (int, error){
	board.KindGrid:           encodeGrid,
	board.KindBox:            encodeBox,
	board.KindDisjointGroups: encodeDisjointGroups,
	board.KindGivens:         encodeGivens,
	board.KindFilled:         encodeGivens,
	board.KindLittleKiller:   encodeLittleKiller,
	board.KindArrow:          encodeArrow,
	board.KindKiller:         encodeKiller,
	board.KindClone:          encodeClone,
	board.KindQuadruple:      encodeQuadruple,
}

// EncodedKinds reports whether k has a SAT encoding in this package.
func EncodedKinds(k board.Kind) bool {
	_, ok := encoded[k]
	return ok
}

// Board is the minimal view of a board.Board an encoder needs: its side
// length only. Encoders read their element's payload from the
// board.Element they are handed, not from this view.
type Board struct {
	N int
}

// Encode appends clauses for every element of b whose kind has an
// encoder, in ascending order of element id (see sortedElements):
// iteration order does not affect satisfiability, but fixing it keeps
// variable allocation reproducible.
// Elements whose kind is known but has no encoder are skipped and logged
// at Warn; this is the "encoder no-op" error kind of spec.md §7. cancel is
// checked once per element, before that element is encoded, so a
// cancellation issued partway through a board with many elements is
// honored without waiting for the whole board to finish encoding; Encode
// returns ErrCancelled in that case.
func Encode(b board.Board, alloc litenc.Alloc, buf *cnf.Buffer, nextVar int, log logrus.FieldLogger, cancel <-chan struct{}) (int, error) {
	ctx := Context{Alloc: alloc, Buf: buf, Log: log}
	bb := Board{N: b.N()}

	// grid/box/disjointGroups are board-wide, not keyed to a specific
	// element payload beyond presence, but still iterate over the
	// elements map so multiple grid/box elements (unusual but not
	// forbidden) each contribute their clauses.
	for _, e := range sortedElements(b) {
		if isCancelled(cancel) {
			return nextVar, ErrCancelled
		}
		fn, ok := encoded[e.Type]
		if !ok {
			if !board.IsKnown(e.Type) {
				continue // feasibility.Gate should have already rejected this board
			}
			if log != nil {
				log.WithField("kind", e.Type).Warn("constraint kind has no SAT encoder; skipped during encoding")
			}
			continue
		}
		var err error
		nextVar, err = fn(nextVar, e, bb, ctx)
		if err != nil {
			return nextVar, fmt.Errorf("encoding element %q (%s): %w", e.ID, e.Type, err)
		}
	}
	return nextVar, nil
}

// isCancelled reports whether cancel has fired; a nil channel never
// cancels.
func isCancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// sortedElements returns b's elements ordered by id, so that encoding
// (and therefore variable allocation) is reproducible across runs of the
// same board, even though the board's Elements map has no intrinsic
// order.
func sortedElements(b board.Board) []board.Element {
	ids := make([]string, 0, len(b.Elements))
	for id := range b.Elements {
		ids = append(ids, id)
	}
	// Simple insertion sort: element counts per board are small (tens,
	// not thousands), and avoids pulling in sort for one call site.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	out := make([]board.Element, len(ids))
	for i, id := range ids {
		out[i] = b.Elements[id]
	}
	return out
}
