package numeric

import (
	"fmt"
	"strconv"
)

// HexToByte returns the value of a single hexadecimal digit, accepting both
// letter cases, or -1 when c is not a hex digit.
func HexToByte(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// ParseHexDigit is the strict form of HexToByte.
func ParseHexDigit(c byte) (byte, error) {
	v := HexToByte(c)
	if v < 0 {
		return 0, fmt.Errorf("numeric: ParseHexDigit(%q): %w", c, ErrInvalidDigit)
	}

	return byte(v), nil
}

// BinaryStringToInt parses s as a base-2 signed 64-bit integer.
func BinaryStringToInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("numeric: BinaryStringToInt(%q): %w: %w", s, ErrInvalidBinary, err)
	}

	return v, nil
}
