package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation reports an automaton that breaks a guarantee an earlier stage should have
	// established. It indicates a bug, not bad input.
	ErrInvariantViolation = errors.New("automaton invariant violated")

	// ErrTooComplexToDeterminize is returned when subset construction would exceed its work limit.
	ErrTooComplexToDeterminize = errors.New("too complex to determinize")
)

// SyntaxError describes a malformed regular expression.
type SyntaxError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error: %s at position %d in %q", e.Msg, e.Pos, e.Pattern)
}
