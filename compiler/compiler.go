// Package compiler turns a normalized command stream into a compact
// vm.Instruction program: runs of arithmetic and movement are fused
// with deferred pointer offsets, loop idioms are recognized and
// replaced with dedicated CLEAR, DCLEAR, and MUL instructions, and
// brackets are linked into jump targets.
//
// Compile expects its input to already be normalized (see the token
// package); it does not itself strip comment bytes.
package compiler

import (
	"bytes"

	"github.com/KrokodileGlue/bfi/vm"
)

// maxBracketDepth bounds loop nesting during compilation.
const maxBracketDepth = 4096

type compiler struct {
	src   []byte
	pos   int
	code  []vm.Instruction
	stack []int
}

// Compile produces a runnable instruction stream from a normalized
// command string, or an error if brackets are unbalanced or nested
// too deeply.
func Compile(src []byte) ([]vm.Instruction, error) {
	c := &compiler{src: src}

	for c.pos < len(c.src) {
		switch c.src[c.pos] {
		case '[':
			if err := c.compileBracket(); err != nil {
				return nil, err
			}
		case ']':
			if err := c.closeBracket(); err != nil {
				return nil, err
			}
		default:
			if isContractible(c.src[c.pos]) {
				c.contract()
			} else {
				c.pos++
			}
		}
	}

	if len(c.stack) > 0 {
		return nil, ErrUnmatchedOpen
	}

	c.code = append(c.code, vm.Instruction{Op: vm.END, Offset: vm.NoOffset})
	return c.code, nil
}

// compileBracket handles '[': it tries clear-loop, multiplication-loop,
// and dangerous-clear classification in that order before falling back
// to a literal bracket.
func (c *compiler) compileBracket() error {
	if bytes.HasPrefix(c.src[c.pos:], []byte("[-]")) || bytes.HasPrefix(c.src[c.pos:], []byte("[+]")) {
		c.code = append(c.code, vm.Instruction{Op: vm.CLEAR, Offset: vm.NoOffset})
		c.pos += 3
		return nil
	}

	if body, end, ok := c.flatLoopBody(); ok {
		if c.tryMultiplicationLoop(body) {
			c.pos = end + 1
			return nil
		}
		if len(body) > 0 && !bytes.ContainsAny(body, "<>") {
			c.code = append(c.code, vm.Instruction{Op: vm.DCLEAR, Data: len(body), Offset: vm.NoOffset})
			c.pos = end + 1
			return nil
		}
	}

	if len(c.stack) >= maxBracketDepth {
		return ErrBracketOverflow
	}
	c.stack = append(c.stack, len(c.code))
	c.code = append(c.code, vm.Instruction{Op: vm.CJUMP, Data: -1, Offset: vm.NoOffset})
	c.pos++
	return nil
}

// flatLoopBody scans from the '[' at c.pos to its matching ']', returning
// the body between them. It reports ok=false if a nested bracket or a
// '.'/',' appears before the close, or if the bracket never closes.
func (c *compiler) flatLoopBody() (body []byte, end int, ok bool) {
	i := c.pos + 1
	for i < len(c.src) && c.src[i] != ']' {
		switch c.src[i] {
		case '+', '-', '<', '>':
			i++
		default:
			return nil, 0, false
		}
	}
	if i >= len(c.src) {
		return nil, 0, false
	}
	return c.src[c.pos+1 : i], i, true
}

// closeBracket links a literal ']' to its matching '[' (recorded on
// the bracket stack as a CJUMP instruction index).
func (c *compiler) closeBracket() error {
	if len(c.stack) == 0 {
		return ErrUnmatchedClose
	}
	open := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	closeIdx := len(c.code)
	c.code = append(c.code, vm.Instruction{Op: vm.JUMP, Data: open, Offset: vm.NoOffset})
	c.code[open].Data = closeIdx

	c.pos++
	return nil
}
