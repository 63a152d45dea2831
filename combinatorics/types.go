// SPDX-License-Identifier: MIT
// Package: aocutil/combinatorics
//
// types.go — shared value types and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • The generators themselves never fail: malformed sizes produce empty
//     results. Strict validation lives in CountPermutations.

package combinatorics

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates a set size below zero where strict validation
// is requested (CountPermutations).
var ErrNegativeSize = errors.New("combinatorics: negative set size")

// ErrCountOverflow indicates the requested count does not fit in uint64.
var ErrCountOverflow = errors.New("combinatorics: count overflows uint64")

// Pair binds one "from" slot to one "to" index in a matching.
type Pair struct {
	From int // source slot, 0..N-1 in block order
	To   int // partner index drawn from the pool
}

// String renders the pair as "from->to".
func (p Pair) String() string {
	return fmt.Sprintf("%d->%d", p.From, p.To)
}
