package hash

import "math"

// goldenRatio - Knuth's multiplicative constant A = (sqrt(5) - 1) / 2
var goldenRatio = (math.Sqrt(5.0) - 1.0) / 2.0

// Multiplicative - Maps key onto a bucket in [0, tableSize) using Knuth's multiplicative method,
// bucket = floor(tableSize * frac(key * A)).
// The fractional part is computed in double precision. A rounding result of exactly tableSize (or a negative
// fraction for negative keys) is folded back into range.
func Multiplicative(key, tableSize int64) int64 {
	_, frac := math.Modf(float64(key) * goldenRatio)
	if frac < 0 {
		frac += 1.0
	}

	bucket := int64(math.Floor(float64(tableSize) * frac))
	if bucket < 0 || bucket >= tableSize {
		bucket %= tableSize
		if bucket < 0 {
			bucket += tableSize
		}
	}

	return bucket
}
