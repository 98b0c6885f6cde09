package hash

// LinearProbingHashAlgorithm - The internally used bucket selection algorithm for linear probing.
// The home slot comes from the primary hash and every collision moves one slot further, wrapping around.
type LinearProbingHashAlgorithm struct {
	tableSize int64
	primary   Primary
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm(tableSize int64, primary Primary) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{primary: orDefault(primary)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return L.primary(key, L.tableSize)
}

// HashFunc2 - Not used in linear probing collision resolution techniques, returns a dummy value
func (L *LinearProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	probe := hf1Value + iteration%L.tableSize
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
