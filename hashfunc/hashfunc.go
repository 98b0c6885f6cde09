package hashfunc

// HashAlgorithm - Interface that permits a caller of NewHashTable to supply a custom bucket
// selection algorithm, for instance to study a particular distribution of keys or to pin every key to one bucket.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the hash table is created and the size given is always the requested capacity.
	//   - tableSize is the number of buckets (or slots) the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in the record being dropped.
	HashFunc1(key int64) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from
	// HashFunc1 in a call to ProbeIteration. The function is only used for the Double Hashing Collision Resolution Technique.
	HashFunc2(key int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// The hash table uses this value as its capacity, so it must report the actual number of addressable buckets.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to try in a given iteration given values from HashFunc1 and HashFunc2.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than using the actual key as input.
	// A slot outside the table size (0 -> table size - 1) ends the probe and the record is dropped.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
