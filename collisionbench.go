package collisionbench

import (
	"fmt"
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/hashfunc"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/model"
	"github.com/gostonefire/collisionbench/internal/storage/openaddressing"
	"github.com/gostonefire/collisionbench/internal/storage/separatechaining"
)

// Record - One stored element, identified and ordered by its code
type Record = model.Record

// Names of the primary hash functions available to the internal hash algorithms
const (
	PrimaryMultiplicative = hash.MultiplicativeName
	PrimaryMurmur3        = hash.Murmur3Name
	PrimaryXXHash         = hash.XXHashName
	PrimaryXXH3           = hash.XXH3Name
)

// Storage - Interface for any table implementation
type Storage interface {
	Put(record model.Record) (err error)
	Insert(record model.Record)
	Search(code int64) (found bool)
	Collisions() uint64
	Dropped() uint64
	Occupied() int64
	GapStatistics() (stats model.GapStats)
	GetStorageParameters() (params model.StorageParameters)
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - CollisionResolutionTechnique is the technique used, one of the crt constants
//   - Capacity is the fixed number of buckets (or slots) in the table
//   - InternalAlgorithm is true if no custom hash algorithm was supplied
type HashTableInfo struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	InternalAlgorithm            bool
}

// HashTableStat - Statistics on the overall usage and structure of the table
//   - Records is the number of records stored
//   - Collisions is the running collision counter
//   - Dropped is the number of records that could not be stored
//   - GapMin, GapMax and GapAvg describe the runs of empty slots between occupied slots
//   - LongestChain is the longest bucket chain, always 0 for open addressing techniques
type HashTableStat struct {
	Records      int64
	Collisions   uint64
	Dropped      uint64
	GapMin       int64
	GapMax       int64
	GapAvg       int64
	LongestChain int64
}

// HashTable - The main implementation struct
type HashTable struct {
	storage  Storage
	chaining *separatechaining.SCTable
	crt      int
}

// NewHashTable - Returns a new fixed capacity hash table using the given collision resolution technique.
//   - collisionResolutionTechnique is one of crt.SeparateChaining, crt.LinearProbing, crt.QuadraticProbing or crt.DoubleHashing
//   - capacity is the number of buckets (or slots), it never changes
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(
	collisionResolutionTechnique int,
	capacity int64,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	return newHashTable(model.CRTConf{
		Capacity:                     capacity,
		CollisionResolutionTechnique: collisionResolutionTechnique,
		HashAlgorithm:                hashAlgorithm,
	})
}

// NewHashTableWithPrimary - Returns a new fixed capacity hash table whose internal hash algorithm uses the named
// primary hash function (one of the Primary constants) instead of the multiplicative one.
func NewHashTableWithPrimary(collisionResolutionTechnique int, capacity int64, primary string) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	return newHashTable(model.CRTConf{
		Capacity:                     capacity,
		CollisionResolutionTechnique: collisionResolutionTechnique,
		Primary:                      primary,
	})
}

// newHashTable - Creates the storage matching the requested technique
func newHashTable(crtConf model.CRTConf) (hashTable *HashTable, hashTableInfo HashTableInfo, err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	hashTable = &HashTable{crt: crtConf.CollisionResolutionTechnique}

	switch {
	case crtConf.CollisionResolutionTechnique == crt.SeparateChaining:
		var scTable *separatechaining.SCTable
		scTable, err = separatechaining.NewSCTable(crtConf)
		if err != nil {
			hashTable = nil
			return
		}
		hashTable.storage = scTable
		hashTable.chaining = scTable

	case crt.IsOpenAddressing(crtConf.CollisionResolutionTechnique):
		hashTable.storage, err = openaddressing.NewOATable(crtConf)
		if err != nil {
			hashTable = nil
			return
		}

	default:
		hashTable = nil
		err = fmt.Errorf("unknown collision resolution technique %d", crtConf.CollisionResolutionTechnique)
		return
	}

	sp := hashTable.storage.GetStorageParameters()

	hashTableInfo = HashTableInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		Capacity:                     sp.Capacity,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

// Insert - Adds a record. A record that can't be stored (table full, probing exhausted) is silently dropped.
func (H *HashTable) Insert(record Record) {
	H.storage.Insert(record)
}

// Put - Adds a record and reports why it was dropped, if it was.
// It returns:
//   - err is nil if stored, otherwise one of crt.TableFull, crt.ProbingExhausted or crt.BucketOutOfRange
func (H *HashTable) Put(record Record) (err error) {
	return H.storage.Put(record)
}

// Search - Returns true if a record with the given code is stored
func (H *HashTable) Search(code int64) bool {
	return H.storage.Search(code)
}

// Collisions - Returns the running collision counter.
// For separate chaining a collision is counted when a bucket already holds records plus one per record
// passed on the way to the ordered insertion point. For open addressing one is counted per occupied slot probed.
func (H *HashTable) Collisions() uint64 {
	return H.storage.Collisions()
}

// Dropped - Returns the number of records that could not be stored
func (H *HashTable) Dropped() uint64 {
	return H.storage.Dropped()
}

// Occupied - Returns the number of records stored
func (H *HashTable) Occupied() int64 {
	return H.storage.Occupied()
}

// GapStatistics - Returns min, max and truncated average length of the runs of empty buckets (or slots)
// lying between two occupied ones. All three are zero if there are no such runs.
func (H *HashTable) GapStatistics() (minGap, maxGap, avgGap int64) {
	stats := H.storage.GapStatistics()
	return stats.Min, stats.Max, stats.Avg
}

// LongestChain - Returns the number of records in the longest bucket chain, or 0 for open addressing tables
func (H *HashTable) LongestChain() int64 {
	if H.chaining == nil {
		return 0
	}
	return H.chaining.LongestChain()
}

// CollisionResolutionTechnique - Returns the technique in use, one of the crt constants
func (H *HashTable) CollisionResolutionTechnique() int {
	return H.crt
}

// Stat - Returns statistics over the table in its current state
func (H *HashTable) Stat() (stat HashTableStat) {
	sp := H.storage.GetStorageParameters()
	minGap, maxGap, avgGap := H.GapStatistics()

	stat = HashTableStat{
		Records:      sp.Occupied,
		Collisions:   sp.Collisions,
		Dropped:      sp.Dropped,
		GapMin:       minGap,
		GapMax:       maxGap,
		GapAvg:       avgGap,
		LongestChain: H.LongestChain(),
	}

	return
}
