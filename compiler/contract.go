package compiler

import "github.com/KrokodileGlue/bfi/vm"

func isContractible(b byte) bool {
	switch b {
	case '+', '-', '<', '>', ',', '.':
		return true
	default:
		return false
	}
}

// contract fuses a maximal run of '+ - < > , .' into as few
// instructions as possible. Pointer movement accumulates into a
// running offset that is never reset mid-run, only flushed into the
// offset field of the next ADD/GETCH/PUTCH group or, at the run's
// end, into a trailing ADDPTR.
func (c *compiler) contract() {
	offset := 0

	for c.pos < len(c.src) && isContractible(c.src[c.pos]) {
		for c.pos < len(c.src) && (c.src[c.pos] == '<' || c.src[c.pos] == '>') {
			if c.src[c.pos] == '<' {
				offset--
			} else {
				offset++
			}
			c.pos++
		}

		switch {
		case c.pos < len(c.src) && (c.src[c.pos] == '+' || c.src[c.pos] == '-'):
			data := 0
			for c.pos < len(c.src) && (c.src[c.pos] == '+' || c.src[c.pos] == '-') {
				if c.src[c.pos] == '+' {
					data++
				} else {
					data--
				}
				c.pos++
			}
			c.code = append(c.code, vm.Instruction{Op: vm.ADD, Data: data, Offset: offset})
		case c.pos < len(c.src) && c.src[c.pos] == ',':
			data := 0
			for c.pos < len(c.src) && c.src[c.pos] == ',' {
				data++
				c.pos++
			}
			c.code = append(c.code, vm.Instruction{Op: vm.GETCH, Data: data, Offset: offset})
		case c.pos < len(c.src) && c.src[c.pos] == '.':
			data := 0
			for c.pos < len(c.src) && c.src[c.pos] == '.' {
				data++
				c.pos++
			}
			c.code = append(c.code, vm.Instruction{Op: vm.PUTCH, Data: data, Offset: offset})
		}
	}

	if offset != 0 {
		c.code = append(c.code, vm.Instruction{Op: vm.ADDPTR, Data: offset, Offset: vm.NoOffset})
	}
}
