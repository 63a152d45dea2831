// SPDX-License-Identifier: MIT
// Package: aocutil/combinatorics
//
// pairings.go — enumeration of every way to wire N inputs to N outputs.
//
// Layout:
//   - The flat result is N! consecutive blocks, each exactly N pairs long.
//   - Within a block, From runs 0..N-1; To is the partner chosen for it.
//   - Blocks appear in the same order as PermutationsOf(N).

package combinatorics

import "iter"

// Pairings returns every assignment of a distinct partner from [0, setSize)
// to each slot 0..setSize-1, flattened into one slice of setSize! blocks of
// setSize pairs. Callers split the result with SplitMatchings.
//
// setSize <= 0 returns nil.
//
// Complexity: O(N·N!) time and memory.
func Pairings(setSize int) []Pair {
	if setSize <= 0 {
		return nil
	}

	return pairUp(0, IndexList(setSize))
}

// pairUp binds slot v0 to each candidate of pool in order and prefixes that
// pair to every block solved for the reduced pool at slot v0+1.
func pairUp(v0 int, pool []int) []Pair {
	// 1. Terminal: a single candidate is forced
	if len(pool) == 1 {
		return []Pair{{From: v0, To: pool[0]}}
	}

	var out []Pair
	block := len(pool) - 1 // length of every sub-solution block
	for i, v1 := range pool {
		// 2. Solve the remainder without v1
		rest := pairUp(v0+1, RemoveAt(pool, i, 1))

		// 3. Emit (v0, v1) ahead of each sub-block
		for j := 0; j < len(rest); j += block {
			out = append(out, Pair{From: v0, To: v1})
			out = append(out, rest[j:j+block]...)
		}
	}

	return out
}

// Matchings lazily yields the blocks of Pairings(setSize) one at a time,
// each a fresh slice of setSize pairs. setSize <= 0 yields nothing.
func Matchings(setSize int) iter.Seq[[]Pair] {
	if setSize <= 0 {
		return empty[[]Pair]
	}

	return func(yield func([]Pair) bool) {
		for perm := range PermutationsOf(setSize) {
			block := make([]Pair, setSize)
			for from, to := range perm {
				block[from] = Pair{From: from, To: to}
			}
			if !yield(block) {
				return
			}
		}
	}
}

// SplitMatchings chunks a flat Pairings result into blocks of setSize pairs.
// The blocks alias pairs. A short trailing block is dropped; setSize <= 0
// returns nil.
func SplitMatchings(pairs []Pair, setSize int) [][]Pair {
	if setSize <= 0 {
		return nil
	}

	out := make([][]Pair, 0, len(pairs)/setSize)
	for j := 0; j+setSize <= len(pairs); j += setSize {
		out = append(out, pairs[j:j+setSize:j+setSize])
	}

	return out
}
