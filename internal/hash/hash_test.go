//go:build unit

package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"math"
	"math/rand"
	"testing"
)

func TestMultiplicative(t *testing.T) {
	t.Run("computes Knuth buckets for small keys", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(0), Multiplicative(0, 10), "key zero in bucket zero")
		assert.Equal(t, int64(6), Multiplicative(1, 10), "frac(0.618) -> 6")
		assert.Equal(t, int64(2), Multiplicative(2, 10), "frac(1.236) -> 2")
		assert.Equal(t, int64(8), Multiplicative(3, 10), "frac(1.854) -> 8")
	})

	t.Run("stays within table for random keys and sizes", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		sizes := []int64{1, 2, 3, 7, 10, 1000, 10007, 150000, 15000000}

		// Execute and Check
		for _, m := range sizes {
			for i := 0; i < 10000; i++ {
				key := 100000000 + rnd.Int63n(900000000)
				bucket := Multiplicative(key, m)
				if bucket < 0 || bucket >= m {
					assert.Failf(t, "bucket out of range", "key %d gave bucket %d for size %d", key, bucket, m)
					return
				}
			}
		}
	})

	t.Run("folds negative and extreme keys into table", func(t *testing.T) {
		// Prepare
		keys := []int64{-1, -123456789, math.MinInt64, math.MaxInt64, math.MaxInt32}

		// Execute and Check
		for _, key := range keys {
			bucket := Multiplicative(key, 97)
			assert.GreaterOrEqualf(t, bucket, int64(0), "bucket not negative for key %d", key)
			assert.Lessf(t, bucket, int64(97), "bucket less than table size for key %d", key)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, Multiplicative(987654321, 1500), Multiplicative(987654321, 1500), "same input same bucket")
	})
}

func TestGetPrimary(t *testing.T) {
	t.Run("returns multiplicative for empty name", func(t *testing.T) {
		// Execute
		primary, err := GetPrimary("")

		// Check
		assert.NoError(t, err, "empty name is valid")
		assert.Equal(t, Multiplicative(12345, 100), primary(12345, 100), "multiplicative is default")
	})

	t.Run("returns error for unknown name", func(t *testing.T) {
		// Execute
		_, err := GetPrimary("sha1")

		// Check
		assert.Error(t, err, "unknown primary rejected")
	})

	t.Run("all primaries stay within table", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(7))

		for _, name := range []string{MultiplicativeName, Murmur3Name, XXHashName, XXH3Name} {
			t.Run(fmt.Sprintf("primary %s", name), func(t *testing.T) {
				primary, err := GetPrimary(name)
				assert.NoError(t, err, "primary registered")

				// Execute and Check
				for i := 0; i < 5000; i++ {
					key := rnd.Int63() - rnd.Int63()
					bucket := primary(key, 1009)
					if bucket < 0 || bucket >= 1009 {
						assert.Failf(t, "bucket out of range", "key %d gave bucket %d", key, bucket)
						return
					}
				}
			})
		}
	})
}
