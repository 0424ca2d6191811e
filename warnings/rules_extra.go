package warnings

import "github.com/crillab/sudokuvariants/board"

// evalArrow flags the head and every tail cell when all of them are filled
// and the tail sum differs from the head digit. With the head empty, it
// flags the tail cells once their partial sum exceeds N. A partial tail sum
// that already exceeds a filled head digit is not flagged.
func evalArrow(e board.Element, b board.Board, digits Digits, _ Options, flags Flags) error {
	arrows, err := e.ArrowMap()
	if err != nil {
		return err
	}
	n := b.N()
	for _, ar := range arrows {
		headVal, okHead := digits[ar.Head]
		sum := 0
		complete := true
		for _, cell := range ar.Tail {
			d, ok := digits[cell]
			if !ok {
				complete = false
				continue
			}
			sum += d
		}
		if okHead && complete && sum != headVal {
			flags.flag(ar.Head)
			flags.flagAll(ar.Tail)
			continue
		}
		if !okHead && sum > n {
			// Even without the head filled, an already-too-large partial
			// tail sum can never be matched by any single digit 1..N.
			flags.flagAll(ar.Tail)
		}
	}
	return nil
}

// evalKiller flags the whole cage on a wrong completed sum, and flags any
// repeated digit pair within the cage regardless of completeness.
func evalKiller(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	cages, err := e.KillerMap()
	if err != nil {
		return err
	}
	for _, cage := range cages {
		sum := 0
		complete := true
		seen := map[int]int{} // digit -> first cell seen with it
		for _, cell := range cage.Cage {
			d, ok := digits[cell]
			if !ok {
				complete = false
				continue
			}
			sum += d
			if !cage.Repeats() {
				if other, dup := seen[d]; dup {
					flags.flag(other)
					flags.flag(cell)
				} else {
					seen[d] = cell
				}
			}
		}
		if complete && sum != cage.Sum {
			flags.flagAll(cage.Cage)
		}
	}
	return nil
}

// evalClone flags paired cells whose filled digits disagree.
func evalClone(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	clones, err := e.CloneMap()
	if err != nil {
		return err
	}
	for _, cl := range clones {
		n := len(cl.A)
		if len(cl.B) < n {
			n = len(cl.B)
		}
		for i := 0; i < n; i++ {
			a, okA := digits[cl.A[i]]
			b, okB := digits[cl.B[i]]
			if okA && okB && a != b {
				flags.flag(cl.A[i])
				flags.flag(cl.B[i])
			}
		}
	}
	return nil
}

// evalQuadruple flags the whole block once complete if the required
// digit multiset isn't a sub-multiset of the filled digits.
func evalQuadruple(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	quads, err := e.QuadrupleMap()
	if err != nil {
		return err
	}
	for _, q := range quads {
		counts := map[int]int{}
		complete := true
		for _, cell := range q.Cells {
			d, ok := digits[cell]
			if !ok {
				complete = false
				break
			}
			counts[d]++
		}
		if !complete {
			continue
		}
		need := map[int]int{}
		for _, d := range q.Digits {
			need[d]++
		}
		ok := true
		for d, n := range need {
			if counts[d] < n {
				ok = false
				break
			}
		}
		if !ok {
			flags.flagAll(q.Cells)
		}
	}
	return nil
}
