// SPDX-License-Identifier: MIT
// Package: aocutil/combinatorics
//
// permutations.go — lazy permutation enumeration by recursive selection.
//
// Contract:
//   - The caller's slice is copied once into a private working pool; it is
//     never observed mutated.
//   - Every yielded slice is freshly allocated and owned by the caller.
//   - Each range over the returned iter.Seq restarts from the first ordering.

package combinatorics

import "iter"

// permuter holds the per-iteration working state. A new permuter is created
// on every range over the sequence, so iterations never share state.
type permuter[T any] struct {
	pool  []T            // remaining candidates, mutated with backtracking
	perm  []T            // partially built permutation, perm[:depth] fixed
	yield func([]T) bool // consumer; false stops the enumeration
}

// Permutations returns a lazy sequence of every ordering of set.
//
// Element i is selected as the head, the remaining elements are permuted
// recursively and the selected element is restored to its slot before the
// next position is tried. The sequence therefore lists orderings
// lexicographically by input position. An empty set yields one empty
// permutation.
//
// Complexity: O(N·N!) time, O(N) working memory per iteration.
func Permutations[T any](set []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(set)
		p := &permuter[T]{
			pool:  append(make([]T, 0, n), set...),
			perm:  make([]T, n),
			yield: yield,
		}
		p.walk(0)
	}
}

// PermutationsOf returns the permutations of the integers [0, n).
// n == 0 yields one empty permutation; n < 0 yields nothing.
func PermutationsOf(n int) iter.Seq[[]int] {
	if n < 0 {
		return empty[[]int]
	}

	return Permutations(IndexList(n))
}

// PermutationsInRange returns the permutations of the integers
// [minInclusive, maxInclusive]. An inverted range, or one too wide to count
// in an int, yields nothing.
func PermutationsInRange(minInclusive, maxInclusive int) iter.Seq[[]int] {
	if width, ok := RangeWidth(minInclusive, maxInclusive); !ok || width == 0 {
		return empty[[]int]
	}

	return Permutations(IndexRange(minInclusive, maxInclusive))
}

// walk fixes perm[depth] to each remaining candidate in turn and recurses.
// It reports false once the consumer has asked to stop.
func (p *permuter[T]) walk(depth int) bool {
	// 1. Pool exhausted: perm is complete, hand out a copy
	if len(p.pool) == 0 {
		out := make([]T, len(p.perm))
		copy(out, p.perm)

		return p.yield(out)
	}

	// 2. Select each candidate left to right
	n := len(p.pool)
	for i := 0; i < n; i++ {
		item := p.pool[i]
		p.perm[depth] = item

		// 2a. Remove pool[i] in place
		copy(p.pool[i:], p.pool[i+1:])
		p.pool = p.pool[:n-1]

		if !p.walk(depth + 1) {
			return false
		}

		// 2b. Reinsert at the same slot so later selections see the original order
		p.pool = p.pool[:n]
		copy(p.pool[i+1:], p.pool[i:n-1])
		p.pool[i] = item
	}

	return true
}

// empty is a sequence that yields nothing.
func empty[V any](func(V) bool) {}
