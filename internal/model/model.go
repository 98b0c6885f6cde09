package model

import "github.com/gostonefire/collisionbench/hashfunc"

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a record
const SlotOccupied uint8 = 1

// Record - Represents one stored element, identified and ordered by its code
type Record struct {
	Code int64
}

// Slot - Represents one position in an open addressing table
type Slot struct {
	State  uint8
	Record Record
}

// GapStats - Run length statistics over interior runs of empty slots
//   - Min is the shortest interior gap
//   - Max is the longest interior gap
//   - Avg is the total interior gap length divided by the number of interior gaps (truncated)
type GapStats struct {
	Min int64
	Max int64
	Avg int64
}

// StorageParameters - Represents parameters and counters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	Occupied                     int64
	Collisions                   uint64
	Dropped                      uint64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation.
//   - Capacity is the fixed number of buckets (or slots) of the table
//   - CollisionResolutionTechnique is one of the crt constants
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm for the technique
//   - Primary is the name of the primary hash used by the internal algorithm, empty means multiplicative
type CRTConf struct {
	Capacity                     int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Primary                      string
}
