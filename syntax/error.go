package syntax

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. Parse wraps these in a *ParseError; test with
// errors.Is.
var (
	// ErrMalformedPattern indicates no recognized token at the scan position
	// (an unterminated bracket class, a reversed range, or an alternation
	// bar outside any group).
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrUnclosedGroup indicates a ( with no matching ) by end of pattern.
	ErrUnclosedGroup = errors.New("unclosed group")

	// ErrStrayGroupClose indicates a ) with no open group.
	ErrStrayGroupClose = errors.New("unexpected )")

	// ErrDoubleAlternation indicates more than one | inside the same group.
	ErrDoubleAlternation = errors.New("double alternation in group")

	// ErrInvalidBackreference indicates a backreference to a group that has
	// not been closed yet at that point in the pattern.
	ErrInvalidBackreference = errors.New("invalid backreference")

	// ErrDanglingQuantifier indicates a + or ? with no preceding node.
	ErrDanglingQuantifier = errors.New("quantifier with nothing to repeat")
)

// ParseError wraps a sentinel parse error with the pattern and the byte
// offset where scanning stopped.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
