package hash

// QuadraticC1 - Linear coefficient of the quadratic probe sequence
const QuadraticC1 int64 = 1

// QuadraticC2 - Quadratic coefficient of the quadratic probe sequence
const QuadraticC2 int64 = 3

// QuadraticProbingHashAlgorithm - The internally used bucket selection algorithm for quadratic probing.
// Iteration i probes (h0 + c1*i + c2*i*i) mod tableSize where h0 comes from the primary hash.
// The sequence is not guaranteed to visit every slot for an arbitrary table size, so a record can be dropped
// while free slots remain.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
	c1        int64
	c2        int64
	primary   Primary
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(tableSize int64, primary Primary) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{c1: QuadraticC1, c2: QuadraticC2, primary: orDefault(primary)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return Q.primary(key, Q.tableSize)
}

// HashFunc2 - Not used in quadratic probing collision resolution techniques, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	i := iteration % Q.tableSize
	square := i * i % Q.tableSize

	probe := (hf1Value + Q.c1*i%Q.tableSize + Q.c2*square%Q.tableSize) % Q.tableSize
	if probe < 0 {
		probe += Q.tableSize
	}

	return probe
}
