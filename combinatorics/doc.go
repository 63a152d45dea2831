// Package combinatorics enumerates orderings and index matchings of small
// finite sets.
//
// What:
//
//   - Permutations: lazy iter.Seq over all N! orderings of a slice, produced by
//     recursive selection (pick the head, permute the rest, restore the pool).
//   - PermutationsOf / PermutationsInRange: the same over [0, n) and [min, max].
//   - Pairings: every bijection of the index set [0, n) onto itself, flattened
//     into N! blocks of N (From, To) pairs.
//   - Matchings / SplitMatchings: block-wise views of the same enumeration.
//   - RemoveAt, IndexList, IndexRange: pool helpers the generators build on.
//   - CountPermutations: n! with explicit overflow and negative-size errors.
//
// Ordering:
//
//	Removal positions are iterated left to right and the recursion is depth
//	first, so results are lexicographic by ORIGINAL input position, never by
//	element value:
//
//	  Permutations([]int{0, 1, 2}) → [0 1 2] [0 2 1] [1 0 2] [1 2 0] [2 0 1] [2 1 0]
//	  Pairings(2)                  → (0,0) (1,1) | (0,1) (1,0)
//
// Edge cases:
//
//   - Permutations of an empty slice yields exactly one empty permutation.
//   - PermutationsOf(n<0) and PermutationsInRange(min>max) yield nothing.
//   - Pairings(n<=0) returns nil and Matchings(n<=0) yields nothing.
//
// Complexity:
//
//   - Permutations: Time O(N·N!), Memory O(N) working state per sequence
//     plus one fresh N-slice per yielded permutation.
//   - Pairings:     Time O(N·N!), Memory O(N·N!) (eager result).
//
// Costs grow factorially: sets above 10–12 elements are impractical. Use
// CountPermutations to guard input sizes before iterating.
//
// Errors:
//
//   - ErrNegativeSize   a set size below zero was passed to CountPermutations.
//   - ErrCountOverflow  n! does not fit in uint64 (n > 20).
package combinatorics
