package warnings

import "github.com/crillab/sudokuvariants/board"

// evalThermo returns the thermo rule; slow allows equal steps along the
// bulb->tip walk instead of requiring strict increase. The running max/min
// persists across cells with no digit yet: a later digit can already be
// provably impossible relative to an earlier one regardless of what ends
// up filling the gap (e.g. [9, _, 1] on a strict thermo is already
// unsatisfiable), so a missing digit is skipped without resetting the
// tracked extremum.
func evalThermo(slow bool) func(board.Element, board.Board, Digits, Options, Flags) error {
	return func(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
		lines, err := e.LineMap()
		if err != nil {
			return err
		}
		for _, line := range lines {
			runningMax := 0
			haveMax := false
			for _, cell := range line {
				d, ok := digits[cell]
				if !ok {
					continue
				}
				bad := haveMax && (d < runningMax || (!slow && d == runningMax))
				if bad {
					flags.flag(cell)
				}
				if !haveMax || d > runningMax {
					runningMax = d
					haveMax = true
				}
			}
			runningMin := 0
			haveMin := false
			for i := len(line) - 1; i >= 0; i-- {
				cell := line[i]
				d, ok := digits[cell]
				if !ok {
					continue
				}
				bad := haveMin && (d > runningMin || (!slow && d == runningMin))
				if bad {
					flags.flag(cell)
				}
				if !haveMin || d < runningMin {
					runningMin = d
					haveMin = true
				}
			}
		}
		return nil
	}
}

// evalBetween flags interior digits outside the open interval bounded by
// the head and tail digits, when both are present.
func evalBetween(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	lines, err := e.LineMap()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		head, tail := line[0], line[len(line)-1]
		hd, ok1 := digits[head]
		td, ok2 := digits[tail]
		if !ok1 || !ok2 {
			continue
		}
		lo, hi := hd, td
		if lo > hi {
			lo, hi = hi, lo
		}
		violated := false
		for _, cell := range line[1 : len(line)-1] {
			d, ok := digits[cell]
			if !ok {
				continue
			}
			if d <= lo || d >= hi {
				flags.flag(cell)
				violated = true
			}
		}
		if violated {
			flags.flag(head)
			flags.flag(tail)
		}
	}
	return nil
}

// evalDoubleArrow flags the whole line when the interior digit sum
// exceeds the head+tail target, or (once the interior is complete)
// disagrees with it.
func evalDoubleArrow(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	lines, err := e.LineMap()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		head, tail := line[0], line[len(line)-1]
		hd, ok1 := digits[head]
		td, ok2 := digits[tail]
		if !ok1 || !ok2 {
			continue
		}
		target := hd + td
		interior := line[1 : len(line)-1]
		sum := 0
		complete := true
		for _, cell := range interior {
			d, ok := digits[cell]
			if !ok {
				complete = false
				continue
			}
			sum += d
		}
		if sum > target || (complete && sum != target) {
			flags.flagAll(line)
		}
	}
	return nil
}

// evalLockout flags circles closer together than the configured delta,
// and any interior digit within [min(circles), max(circles)].
func evalLockout(e board.Element, b board.Board, digits Digits, opts Options, flags Flags) error {
	lines, err := e.LineMap()
	if err != nil {
		return err
	}
	delta := opts.lockoutDelta(b.N())
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		head, tail := line[0], line[len(line)-1]
		hd, ok1 := digits[head]
		td, ok2 := digits[tail]
		if !ok1 || !ok2 {
			continue
		}
		lo, hi := hd, td
		if lo > hi {
			lo, hi = hi, lo
		}
		tooClose := hi-lo < delta
		violated := tooClose
		for _, cell := range line[1 : len(line)-1] {
			d, ok := digits[cell]
			if !ok {
				continue
			}
			if d >= lo && d <= hi {
				flags.flag(cell)
				violated = true
			}
		}
		if violated {
			flags.flag(head)
			flags.flag(tail)
		}
	}
	return nil
}

// evalPalindrome flags positions whose digit disagrees with its mirror.
func evalPalindrome(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	lines, err := e.LineMap()
	if err != nil {
		return err
	}
	for _, line := range lines {
		n := len(line)
		for i := 0; i < n/2; i++ {
			j := n - 1 - i
			a, okA := digits[line[i]]
			b, okB := digits[line[j]]
			if !okA || !okB {
				continue
			}
			if a != b {
				flags.flag(line[i])
				flags.flag(line[j])
			}
		}
	}
	return nil
}

// evalWhisper flags adjacent pairs whose digits differ by less than
// delta; dutch selects the Dutch-whisper delta instead of the German one.
func evalWhisper(dutch bool) func(board.Element, board.Board, Digits, Options, Flags) error {
	return func(e board.Element, b board.Board, digits Digits, _ Options, flags Flags) error {
		lines, err := e.LineMap()
		if err != nil {
			return err
		}
		n := b.N()
		delta := (n + 1) >> 1
		if dutch {
			delta--
		}
		for _, line := range lines {
			for i := 0; i+1 < len(line); i++ {
				a, okA := digits[line[i]]
				b, okB := digits[line[i+1]]
				if !okA || !okB {
					continue
				}
				diff := a - b
				if diff < 0 {
					diff = -diff
				}
				if diff < delta {
					flags.flag(line[i])
					flags.flag(line[i+1])
				}
			}
		}
		return nil
	}
}

// evalRenban only evaluates once every cell on the line is filled; it
// then requires the digits, sorted, to be a consecutive run.
func evalRenban(e board.Element, _ board.Board, digits Digits, _ Options, flags Flags) error {
	lines, err := e.LineMap()
	if err != nil {
		return err
	}
	for _, line := range lines {
		vals := make([]int, len(line))
		complete := true
		for i, cell := range line {
			d, ok := digits[cell]
			if !ok {
				complete = false
				break
			}
			vals[i] = d
		}
		if !complete {
			continue
		}
		sorted := append([]int(nil), vals...)
		insertionSort(sorted)
		for i := 0; i+1 < len(sorted); i++ {
			if sorted[i+1]-sorted[i] != 1 {
				flags.flagAll(line)
				break
			}
		}
	}
	return nil
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
