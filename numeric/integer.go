package numeric

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(x, 0) == |x| and GCD(0, 0) == 0.
//
// The result is non-negative except when it would be |min(T)|, which T
// cannot represent: GCD(math.MinInt64, 0) returns math.MinInt64.
//
// Complexity: O(log min(|a|, |b|)).
func GCD[T constraints.Signed](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b // Euclid step
	}

	// abs(min(T)) stays negative and can leave a negative remainder behind
	return abs(a)
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either is 0.
// The result may overflow T for large inputs.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a / GCD(a, b) * b)
}

// CeilToBoundary returns the smallest multiple of boundary that is >= val.
// A non-positive boundary leaves val unchanged.
func CeilToBoundary[T constraints.Integer](val, boundary T) T {
	if boundary <= 0 {
		return val
	}

	rem := val % boundary
	switch {
	case rem == 0:
		return val
	case rem < 0:
		// truncated remainder of a negative val; the multiple above is val-rem
		return val - rem
	default:
		return val + (boundary - rem)
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
