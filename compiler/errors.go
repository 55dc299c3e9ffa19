package compiler

import "errors"

var (
	// ErrUnmatchedClose is returned when a ']' has no corresponding open bracket.
	ErrUnmatchedClose = errors.New("compiler: unmatched ]")
	// ErrUnmatchedOpen is returned when source ends with open brackets still pending.
	ErrUnmatchedOpen = errors.New("compiler: unmatched [")
	// ErrBracketOverflow is returned when loop nesting exceeds maxBracketDepth.
	ErrBracketOverflow = errors.New("compiler: bracket nesting too deep")
)
