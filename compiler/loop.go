package compiler

import "github.com/KrokodileGlue/bfi/vm"

// cellDelta records the net change a multiplication loop applies to
// the cell at offset, relative to the loop's starting position.
type cellDelta struct {
	offset int
	data   int
}

// tryMultiplicationLoop attempts to classify a flat loop body (containing
// only '+', '-', '<', '>') as a multiplication/copy loop: pointer movement
// must net to zero, and the loop's own cell (offset 0) must be decremented
// by exactly one per iteration. On success it emits a MUL instruction for
// every other touched offset followed by a CLEAR, and reports true.
func (c *compiler) tryMultiplicationLoop(body []byte) bool {
	if !balanced(body) {
		return false
	}

	cells := analyzeLoop(body)

	zero := -1
	for i, cell := range cells {
		if cell.offset == 0 {
			zero = i
			break
		}
	}
	if zero == -1 || cells[zero].data != -1 {
		return false
	}

	for i, cell := range cells {
		if i == zero {
			continue
		}
		c.code = append(c.code, vm.Instruction{Op: vm.MUL, Data: cell.data, Offset: cell.offset})
	}
	c.code = append(c.code, vm.Instruction{Op: vm.CLEAR, Offset: vm.NoOffset})
	return true
}

// balanced reports whether a body's '<'/'>' counts cancel out.
func balanced(body []byte) bool {
	offset := 0
	for _, b := range body {
		switch b {
		case '<':
			offset--
		case '>':
			offset++
		}
	}
	return offset == 0
}

// analyzeLoop walks a flat loop body alternating movement runs with
// arithmetic runs, accumulating the net delta applied at each distinct
// offset reached, in first-encountered order. Every resting offset -
// including the loop's own cell at offset 0, reached at the end of the
// scan when the body is balanced - gets an entry, even if its delta is
// zero.
func analyzeLoop(body []byte) []cellDelta {
	var cells []cellDelta
	index := make(map[int]int)

	offset := 0
	i := 0
	for i < len(body) {
		for i < len(body) && (body[i] == '<' || body[i] == '>') {
			if body[i] == '<' {
				offset--
			} else {
				offset++
			}
			i++
		}

		amount := 0
		for i < len(body) && (body[i] == '+' || body[i] == '-') {
			if body[i] == '+' {
				amount++
			} else {
				amount--
			}
			i++
		}

		if idx, ok := index[offset]; ok {
			cells[idx].data += amount
		} else {
			index[offset] = len(cells)
			cells = append(cells, cellDelta{offset: offset, data: amount})
		}
	}

	return cells
}
