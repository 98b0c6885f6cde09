package separatechaining

import (
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/internal/model"
)

// ChainRecords - Is used to iterate over the records of one bucket chain one by one.
type ChainRecords struct {
	getNodeFunc func(int64) (model.Record, int64)
	address     int64
}

// NewChainRecords - Returns a pointer to a new ChainRecords struct starting at the given node address
func NewChainRecords(getNodeFunc func(int64) (model.Record, int64), address int64) *ChainRecords {

	return &ChainRecords{
		getNodeFunc: getNodeFunc,
		address:     address,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.address != noNode
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (C *ChainRecords) Next() (record model.Record, err error) {
	if C.address == noNode {
		err = crt.NoRecordFound{}
		return
	}

	record, C.address = C.getNodeFunc(C.address)

	return
}
