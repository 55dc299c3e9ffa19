package vm

import "errors"

// ErrNonTerminatingLoop is returned when a DCLEAR instruction's parity
// check fails to guarantee termination.
var ErrNonTerminatingLoop = errors.New("vm: program has entered a non-terminating loop")
