package numeric

import "errors"

var (
	// ErrInvalidDigit indicates a byte outside 0-9, A-F, a-f.
	ErrInvalidDigit = errors.New("numeric: invalid hex digit")

	// ErrInvalidBinary indicates a string that does not parse as a base-2 int64.
	ErrInvalidBinary = errors.New("numeric: invalid binary string")
)
