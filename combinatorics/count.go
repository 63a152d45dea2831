package combinatorics

import "fmt"

// maxFactorialInput is the largest n whose factorial fits in uint64.
const maxFactorialInput = 20

// CountPermutations returns n!, the number of orderings Permutations yields
// for an n-element set. It is the strict entry point for size validation:
// ErrNegativeSize for n < 0 and ErrCountOverflow for n > 20.
func CountPermutations(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("combinatorics: CountPermutations(%d): %w", n, ErrNegativeSize)
	}
	if n > maxFactorialInput {
		return 0, fmt.Errorf("combinatorics: CountPermutations(%d): %w", n, ErrCountOverflow)
	}

	var total uint64 = 1
	for i := 2; i <= n; i++ {
		total *= uint64(i)
	}

	return total, nil
}
