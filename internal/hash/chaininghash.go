package hash

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm for separate chaining.
// The bucket is selected by the primary hash alone, multiplicative unless another primary was given.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
	primary   Primary
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64, primary Primary) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{primary: orDefault(primary)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (O *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	O.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm) HashFunc1(key int64) int64 {
	return O.primary(key, O.tableSize)
}

// HashFunc2 - Not used in separate chaining collision resolution techniques, returns a dummy value
func (O *SeparateChainingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (O *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns a dummy value
func (O *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return 0
}
