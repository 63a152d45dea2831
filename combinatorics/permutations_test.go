package combinatorics_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocutil/combinatorics"
)

func TestPermutations_DepthFirstOrder(t *testing.T) {
	got := slices.Collect(combinatorics.Permutations([]int{0, 1, 2}))
	want := [][]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}
	assert.Equal(t, want, got)
}

func TestPermutations_OrderFollowsInputPosition(t *testing.T) {
	// values are deliberately unsorted; order must track positions, not values
	got := slices.Collect(combinatorics.Permutations([]string{"c", "a", "b"}))
	want := [][]string{
		{"c", "a", "b"}, {"c", "b", "a"},
		{"a", "c", "b"}, {"a", "b", "c"},
		{"b", "c", "a"}, {"b", "a", "c"},
	}
	assert.Equal(t, want, got)
}

func TestPermutations_CountsAndDistinct(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			set := combinatorics.IndexList(n)
			want, err := combinatorics.CountPermutations(n)
			require.NoError(t, err)

			seen := make(map[string]struct{})
			var total uint64
			for perm := range combinatorics.Permutations(set) {
				total++
				require.Len(t, perm, n)

				sorted := slices.Clone(perm)
				slices.Sort(sorted)
				assert.Equal(t, set, sorted, "not a permutation: %v", perm)

				key := fmt.Sprint(perm)
				_, dup := seen[key]
				assert.False(t, dup, "duplicate permutation %v", perm)
				seen[key] = struct{}{}
			}
			assert.Equal(t, want, total)
		})
	}
}

func TestPermutations_EmptyAndSingle(t *testing.T) {
	empty := slices.Collect(combinatorics.Permutations([]int{}))
	require.Len(t, empty, 1)
	assert.Empty(t, empty[0])

	single := slices.Collect(combinatorics.Permutations([]string{"x"}))
	assert.Equal(t, [][]string{{"x"}}, single)

	nilSet := slices.Collect(combinatorics.Permutations[int](nil))
	require.Len(t, nilSet, 1)
	assert.Empty(t, nilSet[0])
}

func TestPermutations_InputNotMutated(t *testing.T) {
	set := []int{4, 2, 9, 7}
	orig := slices.Clone(set)
	for range combinatorics.Permutations(set) {
		assert.Equal(t, orig, set)
	}
	assert.Equal(t, orig, set)
}

func TestPermutations_YieldedSlicesAreIndependent(t *testing.T) {
	var kept [][]int
	for perm := range combinatorics.Permutations([]int{1, 2, 3}) {
		kept = append(kept, perm)
	}
	kept[0][0] = 99
	assert.Equal(t, []int{1, 3, 2}, kept[1], "mutating one result must not leak into another")
}

func TestPermutations_Restartable(t *testing.T) {
	seq := combinatorics.Permutations([]rune("abcd"))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 24)
}

func TestPermutations_EarlyBreak(t *testing.T) {
	seq := combinatorics.PermutationsOf(5)

	var got [][]int
	for perm := range seq {
		got = append(got, perm)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {0, 1, 2, 4, 3}, {0, 1, 3, 2, 4}}, got)

	// a broken iteration leaves nothing behind for the next one
	next := slices.Collect(seq)
	assert.Len(t, next, 120)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, next[0])
}

func TestPermutationsOf(t *testing.T) {
	assert.Equal(t, [][]int{{}}, slices.Collect(combinatorics.PermutationsOf(0)))
	assert.Equal(t, [][]int{{0}}, slices.Collect(combinatorics.PermutationsOf(1)))
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, slices.Collect(combinatorics.PermutationsOf(2)))
	assert.Empty(t, slices.Collect(combinatorics.PermutationsOf(-3)))
}

func TestPermutationsInRange_ShiftedIndices(t *testing.T) {
	base := slices.Collect(combinatorics.PermutationsOf(3))
	got := slices.Collect(combinatorics.PermutationsInRange(5, 7))
	require.Len(t, got, len(base))

	for i, perm := range base {
		shifted := make([]int, len(perm))
		for j, v := range perm {
			shifted[j] = v + 5
		}
		assert.Equal(t, shifted, got[i])
	}
}

func TestPermutationsInRange_Degenerate(t *testing.T) {
	assert.Equal(t, [][]int{{-2}}, slices.Collect(combinatorics.PermutationsInRange(-2, -2)))
	assert.Empty(t, slices.Collect(combinatorics.PermutationsInRange(5, 4)))
	assert.Equal(t, [][]int{{-1, 0}, {0, -1}}, slices.Collect(combinatorics.PermutationsInRange(-1, 0)))
}

func TestCountPermutations(t *testing.T) {
	cases := []struct {
		n    int
		want uint64
	}{
		{0, 1}, {1, 1}, {2, 2}, {5, 120}, {10, 3628800}, {20, 2432902008176640000},
	}
	for _, tc := range cases {
		got, err := combinatorics.CountPermutations(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}

	_, err := combinatorics.CountPermutations(-1)
	assert.ErrorIs(t, err, combinatorics.ErrNegativeSize)

	_, err = combinatorics.CountPermutations(21)
	assert.ErrorIs(t, err, combinatorics.ErrCountOverflow)
}

func TestPermutationsInRange_WidthOverflow(t *testing.T) {
	// a range too wide to count is malformed, not the empty set
	assert.Empty(t, slices.Collect(combinatorics.PermutationsInRange(-1, math.MaxInt)))
	assert.Empty(t, slices.Collect(combinatorics.PermutationsInRange(math.MinInt, math.MaxInt)))

	assert.Equal(t, [][]int{{math.MinInt}}, slices.Collect(combinatorics.PermutationsInRange(math.MinInt, math.MinInt)))
	assert.Equal(t,
		[][]int{{math.MaxInt - 1, math.MaxInt}, {math.MaxInt, math.MaxInt - 1}},
		slices.Collect(combinatorics.PermutationsInRange(math.MaxInt-1, math.MaxInt)))
}
