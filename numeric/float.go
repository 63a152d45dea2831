package numeric

import "math"

// Quadratic returns the roots of a·x² + b·x + c = 0 in the order
// (-b - √d) / 2a, (-b + √d) / 2a where d = b² - 4ac.
// Both results are NaN when d < 0 or a == 0.
func Quadratic(a, b, c float64) (float64, float64) {
	d := b*b - 4*a*c
	if d < 0 || a == 0 {
		return math.NaN(), math.NaN()
	}

	d = math.Sqrt(d)

	return (-b - d) / (2 * a), (-b + d) / (2 * a)
}
