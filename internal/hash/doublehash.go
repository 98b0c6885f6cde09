package hash

// DoubleHashAlgorithm - The internally used bucket selection algorithm for double hashing.
// HashFunc1 gives the home slot from the primary hash and HashFunc2 a key derived step in [1, tableSize - 1]
// which is added for every collision.
type DoubleHashAlgorithm struct {
	tableSize int64
	primary   Primary
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64, primary Primary) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{primary: orDefault(primary)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The size is used as is, a table size that shares factors with the step gives probe sequences
// that do not cover the whole table.
//   - tableSize is the number of slots the table will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key int64) int64 {
	return D.primary(key, D.tableSize)
}

// HashFunc2 - Given key it generates the probing step, 1 + (|key| mod (tableSize - 1)), or 1 for tables
// of size 2 or less. The step is never zero.
func (D *DoubleHashAlgorithm) HashFunc2(key int64) int64 {
	modBase := int64(1)
	if D.tableSize > 2 {
		modBase = D.tableSize - 1
	}

	// |key| mod b equals |key mod b| with truncated division, and avoids negating math.MinInt64
	k := key % modBase
	if k < 0 {
		k = -k
	}

	return 1 + k
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns the slot for a given iteration, (hf1Value + iteration*hf2Value) mod tableSize.
// This is the closed form of repeatedly adding the step to the previous slot.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	offset := (iteration % D.tableSize) * (hf2Value % D.tableSize) % D.tableSize
	return (hf1Value + offset) % D.tableSize
}
