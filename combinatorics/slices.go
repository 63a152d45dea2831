// SPDX-License-Identifier: MIT
// Package: aocutil/combinatorics
//
// slices.go — pool helpers: index lists and non-mutating excision.

package combinatorics

import "math"

// IndexList returns the integers [0, n) in ascending order.
// n <= 0 yields an empty, non-nil slice.
func IndexList(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// RangeWidth returns the number of integers in [minInclusive, maxInclusive].
// An inverted range has width 0. ok is false when the width exceeds
// math.MaxInt, e.g. [-1, math.MaxInt].
func RangeWidth(minInclusive, maxInclusive int) (width int, ok bool) {
	if maxInclusive < minInclusive {
		return 0, true
	}

	diff := uint64(maxInclusive) - uint64(minInclusive) // exact for max >= min
	if diff >= math.MaxInt {
		return 0, false
	}

	return int(diff) + 1, true
}

// IndexRange returns the integers [minInclusive, maxInclusive] in ascending
// order. An inverted range, or one wider than math.MaxInt, yields an empty,
// non-nil slice.
func IndexRange(minInclusive, maxInclusive int) []int {
	width, ok := RangeWidth(minInclusive, maxInclusive)
	if !ok {
		width = 0
	}
	out := IndexList(width)
	for i := range out {
		out[i] += minInclusive // shift [0, count) onto [min, max]
	}

	return out
}

// RemoveAt returns a copy of s with count elements excised starting at idx.
//
// count is clamped to [0, len(s)-idx], so asking for more elements than
// remain removes exactly the tail. An idx outside [0, len(s)] removes
// nothing. s itself is never modified.
//
// Complexity: O(len(s)) time and space.
func RemoveAt[S ~[]E, E any](s S, idx, count int) S {
	if idx < 0 || idx > len(s) {
		idx, count = 0, 0
	}
	count = min(max(count, 0), len(s)-idx)

	out := make(S, len(s)-count)
	copy(out, s[:idx])
	copy(out[idx:], s[idx+count:])

	return out
}
