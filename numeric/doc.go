// Package numeric collects the small integer and floating-point helpers that
// puzzle solutions keep reaching for.
//
// What:
//
//   - GCD / LCM over any signed integer type (golang.org/x/exp/constraints).
//   - Quadratic: both real roots of ax²+bx+c, NaN when none exist.
//   - CeilToBoundary: round up to the next multiple of a boundary.
//   - HexToByte / ParseHexDigit: single hex digit decoding.
//   - BinaryStringToInt: base-2 string parsing.
//
// Errors:
//
//   - ErrInvalidDigit   byte is not a hexadecimal digit.
//   - ErrInvalidBinary  string is not a valid base-2 int64.
package numeric
