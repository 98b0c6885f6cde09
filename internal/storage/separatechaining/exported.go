package separatechaining

import (
	"fmt"
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/hashfunc"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/model"
	"github.com/gostonefire/collisionbench/internal/storage"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It keeps one directly addressable head per bucket, and each bucket is a singly linked list kept in ascending
// order of record code. All list nodes live in one arena slice and are linked by their address in that slice,
// address 0 being reserved to mean "no node".
type SCTable struct {
	buckets           []int64
	nodes             []chainNode
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	collisions        uint64
	dropped           uint64
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(crtConf model.CRTConf) (scTable *SCTable, err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		var primary hash.Primary
		primary, err = hash.GetPrimary(crtConf.Primary)
		if err != nil {
			return
		}
		crtConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm(crtConf.Capacity, primary)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.Capacity)
	}

	tableSize := crtConf.HashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", tableSize)
		return
	}

	scTable = &SCTable{
		buckets:           make([]int64, tableSize),
		nodes:             make([]chainNode, 1),
		tableSize:         tableSize,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters and counters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		Capacity:                     S.tableSize,
		Occupied:                     S.Occupied(),
		Collisions:                   S.collisions,
		Dropped:                      S.dropped,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// Put - Adds the record to the chain of its bucket, keeping the chain ordered by code.
// Records with equal codes are not deduplicated, a new record is placed in front of existing equal ones.
// One collision is counted when the bucket already holds records, and one more for every node passed
// while walking to the insertion point.
//   - record is the record to add
//
// It returns:
//   - err is of type crt.BucketOutOfRange if the hash algorithm produced a bucket outside the table
func (S *SCTable) Put(record model.Record) (err error) {
	bucketNo := S.hashAlgorithm.HashFunc1(record.Code)
	if bucketNo < 0 || bucketNo >= S.tableSize {
		S.dropped++
		err = crt.NewBucketOutOfRange(bucketNo, S.tableSize)
		return
	}

	S.insertOrdered(bucketNo, record)

	return
}

// Insert - Adds the record like Put but silently drops it if it can't be stored
func (S *SCTable) Insert(record model.Record) {
	_ = S.Put(record)
}

// Search - Returns true if a record with the given code is stored. The collision counter is not affected.
func (S *SCTable) Search(code int64) (found bool) {
	bucketNo := S.hashAlgorithm.HashFunc1(code)
	if bucketNo < 0 || bucketNo >= S.tableSize {
		return
	}

	for address := S.buckets[bucketNo]; address != noNode; address = S.nodes[address].next {
		if S.nodes[address].record.Code == code {
			found = true
			return
		}
	}

	return
}

// GetBucket - Returns an iterator over the records of a bucket in ascending code order
//   - bucketNo is the identifier of a bucket, 0 -> table size - 1
//
// It returns:
//   - chainRecords is a pointer to a ChainRecords iterator
//   - err is of type crt.BucketOutOfRange if the bucket does not exist
func (S *SCTable) GetBucket(bucketNo int64) (chainRecords *ChainRecords, err error) {
	if bucketNo < 0 || bucketNo >= S.tableSize {
		err = crt.NewBucketOutOfRange(bucketNo, S.tableSize)
		return
	}

	chainRecords = NewChainRecords(S.getNode, S.buckets[bucketNo])

	return
}

// LongestChain - Returns the number of records in the longest bucket chain
func (S *SCTable) LongestChain() (longest int64) {
	for _, head := range S.buckets {
		var length int64
		for address := head; address != noNode; address = S.nodes[address].next {
			length++
		}
		if length > longest {
			longest = length
		}
	}

	return
}

// Collisions - Returns the running collision counter
func (S *SCTable) Collisions() uint64 {
	return S.collisions
}

// Dropped - Returns the number of records that could not be stored
func (S *SCTable) Dropped() uint64 {
	return S.dropped
}

// Occupied - Returns the number of records stored
func (S *SCTable) Occupied() int64 {
	return int64(len(S.nodes) - 1)
}

// GapStatistics - Returns statistics over interior runs of empty buckets
func (S *SCTable) GapStatistics() (stats model.GapStats) {
	return storage.Gaps(S.tableSize, func(bucketNo int64) bool { return S.buckets[bucketNo] != noNode })
}
