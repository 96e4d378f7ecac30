package bitkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned by the text codec for bases other than
	// 2, 4, 8, 16 or 32 (optionally offset by the lowercase convention).
	ErrInvalidBase = errors.New("bitkit: invalid base")

	// ErrInvalidDigit is the sentinel wrapped by DigitError, for callers
	// that only care about the class of failure.
	ErrInvalidDigit = errors.New("bitkit: invalid digit")
)

// DigitError indicates an invalid digit encountered while loading a
// numeral string. The target array has already been resized and partially
// written when it is returned: treat the content as discarded, not as
// unchanged.
type DigitError struct {
	Pos   int  // byte offset within the trimmed input
	Digit byte // the offending character
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("bitkit: invalid digit %q at position %d", e.Digit, e.Pos)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}
