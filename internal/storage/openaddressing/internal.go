package openaddressing

import (
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/internal/model"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for finding a record.
// The search stops at the first empty slot, at a matching code, or after table size probes.
func (Q *OATable) probingForGet(code int64) (found bool) {
	hf1Value := Q.hashAlgorithm.HashFunc1(code)
	hf2Value := Q.hashAlgorithm.HashFunc2(code)

	for i := int64(0); i < Q.tableSize; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < 0 || probe >= Q.tableSize {
			return
		}

		slot := &Q.slots[probe]
		if slot.State == model.SlotEmpty {
			return
		}
		if slot.Record.Code == code {
			found = true
			return
		}
	}

	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding an empty slot.
// Each occupied slot passed increments the collision counter.
func (Q *OATable) probingForSet(code int64) (slotNo int64, err error) {
	hf1Value := Q.hashAlgorithm.HashFunc1(code)
	hf2Value := Q.hashAlgorithm.HashFunc2(code)

	for i := int64(0); i < Q.tableSize; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < 0 || probe >= Q.tableSize {
			err = crt.NewBucketOutOfRange(probe, Q.tableSize)
			return
		}

		if Q.slots[probe].State == model.SlotEmpty {
			slotNo = probe
			return
		}

		Q.collisions++
	}

	// The probe sequence does not necessarily cover every slot, so this may happen with free slots left
	err = crt.ProbingExhausted{}
	return
}
