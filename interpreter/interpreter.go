// Package interpreter wires the token normalizer, compiler, and vm
// executor together into a single entry point, the way the teacher's
// assembler/disassembler packages expose one top-level function over
// their own internal pipelines.
package interpreter

import (
	"fmt"
	"io"

	"github.com/KrokodileGlue/bfi/compiler"
	"github.com/KrokodileGlue/bfi/token"
	"github.com/KrokodileGlue/bfi/vm"
)

// Run normalizes, compiles, and executes source, writing '.' output
// to stdout and reading ',' input from stdin.
func Run(source []byte, stdin io.Reader, stdout io.Writer) error {
	code, err := Compile(source)
	if err != nil {
		return err
	}

	m := vm.New(code, stdin, stdout)
	if err := m.Run(); err != nil {
		return fmt.Errorf("interpreter: execute: %w", err)
	}
	return nil
}

// Compile normalizes and compiles source without executing it, for
// callers that only want a program listing.
func Compile(source []byte) ([]vm.Instruction, error) {
	normalized := token.Normalize(source)
	code, err := compiler.Compile(normalized)
	if err != nil {
		return nil, fmt.Errorf("interpreter: compile: %w", err)
	}
	return code, nil
}

// Listing renders a compiled program one instruction per line, for
// debug output.
func Listing(code []vm.Instruction) string {
	var out []byte
	for i, in := range code {
		out = append(out, []byte(fmt.Sprintf("%4d: %s\n", i, in))...)
	}
	return string(out)
}
