package openaddressing

import (
	"fmt"
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/hashfunc"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/model"
	"github.com/gostonefire/collisionbench/internal/storage"
)

// OATable - Represents an in memory implementation of the Open Addressing Collision Resolution Techniques.
// It uses one flat array of slots where each slot holds at most one record. In case of a collision, it probes
// through the table using the hash algorithm's ProbeIteration, looking for an empty slot.
// Once all slots are occupied the table will accept no more records. Records are never deleted, so an empty
// slot always ends the probe sequence of a key.
type OATable struct {
	slots                        []model.Slot
	tableSize                    int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nOccupied                    int64
	collisions                   uint64
	dropped                      uint64
}

// NewOATable - Returns a pointer to a new instance of the Open Addressing table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	if !crt.IsOpenAddressing(crtConf.CollisionResolutionTechnique) {
		err = fmt.Errorf("collision resolution technique %d is not an open addressing technique", crtConf.CollisionResolutionTechnique)
		return
	}
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
		switch crtConf.CollisionResolutionTechnique {
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.Capacity, primary)
		case crt.QuadraticProbing:
			crtConf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm(crtConf.Capacity, primary)
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm(crtConf.Capacity, primary)
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.Capacity)
	}

	tableSize := crtConf.HashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", tableSize)
		return
	}

	oaTable = &OATable{
		slots:                        make([]model.Slot, tableSize),
		tableSize:                    tableSize,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters and counters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		Capacity:                     Q.tableSize,
		Occupied:                     Q.nOccupied,
		Collisions:                   Q.collisions,
		Dropped:                      Q.dropped,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// Put - Stores the record in the first empty slot of its probe sequence. Every occupied slot probed on the
// way counts as one collision. Equal codes are not deduplicated.
//   - record is the record to store
//
// It returns:
//   - err is of type crt.TableFull if all slots were already occupied (no collisions are counted then),
//     crt.ProbingExhausted if table size probes found no empty slot, or crt.BucketOutOfRange if the
//     hash algorithm produced a slot outside the table
func (Q *OATable) Put(record model.Record) (err error) {
	if Q.nOccupied >= Q.tableSize {
		Q.dropped++
		err = crt.TableFull{}
		return
	}

	slotNo, err := Q.probingForSet(record.Code)
	if err != nil {
		Q.dropped++
		return
	}

	Q.slots[slotNo] = model.Slot{State: model.SlotOccupied, Record: record}
	Q.nOccupied++

	return
}

// Insert - Stores the record like Put but silently drops it if it can't be stored
func (Q *OATable) Insert(record model.Record) {
	_ = Q.Put(record)
}

// Search - Returns true if a record with the given code is stored. The collision counter is not affected.
func (Q *OATable) Search(code int64) (found bool) {
	return Q.probingForGet(code)
}

// GetSlot - Returns the contents of a slot
//   - slotNo is the identifier of a slot, 0 -> table size - 1
func (Q *OATable) GetSlot(slotNo int64) (slot model.Slot, err error) {
	if slotNo < 0 || slotNo >= Q.tableSize {
		err = crt.NewBucketOutOfRange(slotNo, Q.tableSize)
		return
	}

	slot = Q.slots[slotNo]

	return
}

// Collisions - Returns the running collision counter
func (Q *OATable) Collisions() uint64 {
	return Q.collisions
}

// Dropped - Returns the number of records that could not be stored
func (Q *OATable) Dropped() uint64 {
	return Q.dropped
}

// Occupied - Returns the number of occupied slots
func (Q *OATable) Occupied() int64 {
	return Q.nOccupied
}

// GapStatistics - Returns statistics over interior runs of empty slots
func (Q *OATable) GapStatistics() (stats model.GapStats) {
	return storage.Gaps(Q.tableSize, func(slotNo int64) bool { return Q.slots[slotNo].State == model.SlotOccupied })
}
