// Package feasibility implements the gate that rejects a board before any
// encoding work begins, per spec.md §4.4.
package feasibility

import (
	"fmt"

	"github.com/crillab/sudokuvariants/board"
	"github.com/crillab/sudokuvariants/constraints"
)

// Options controls the advisory behavior added by the REDESIGN FLAGS
// section: by default a board containing a warning-only kind (thermo,
// whisper, renban, ...) is refused, since the solver would silently
// ignore that constraint. AllowPartialEncoding overrides this, for
// callers that only want the warning evaluator's view of such kinds.
type Options struct {
	AllowPartialEncoding bool
}

// Gate inspects b and returns a human-readable rejection message, or ""
// if b can be handed to the encoder. It never mutates b and does no
// encoding work itself.
func Gate(b board.Board, opts Options) string {
	if b.Grid.Width != b.Grid.Height {
		return "Grid is not square."
	}
	n := b.Grid.Width
	if n <= 0 {
		return "Grid must have positive size."
	}

	var unencoded []board.Kind
	seenUnencoded := map[board.Kind]bool{}
	for _, e := range b.Elements {
		if !board.IsKnown(e.Type) {
			return fmt.Sprintf("Unknown element kind %q.", e.Type)
		}
		if !constraints.EncodedKinds(e.Type) && !pureAnnotation(e.Type) && !seenUnencoded[e.Type] {
			seenUnencoded[e.Type] = true
			unencoded = append(unencoded, e.Type)
		}
	}

	if (b.HasType(board.KindBox) || b.HasType(board.KindDisjointGroups)) && !hasBoxFactorization(n) {
		return fmt.Sprintf("Grid size %d has no valid box factorization.", n)
	}

	if len(unencoded) > 0 && !opts.AllowPartialEncoding {
		return fmt.Sprintf("Board contains kinds with no SAT encoding: %v; pass AllowPartialEncoding to proceed anyway.", unencoded)
	}

	return ""
}

// pureAnnotation reports whether k contributes nothing to either the SAT
// encoding or the warning evaluator: corner/center/colors are editor-only
// markup, per spec.md §3.
func pureAnnotation(k board.Kind) bool {
	switch k {
	case board.KindCorner, board.KindCenter, board.KindColors:
		return true
	default:
		return false
	}
}

func hasBoxFactorization(n int) bool {
	for bh := 2; bh*bh <= n; bh++ {
		if n%bh == 0 && n/bh >= 2 {
			return true
		}
	}
	return false
}
