package separatechaining

import "github.com/gostonefire/collisionbench/internal/model"

// noNode - Address meaning end of chain or empty bucket
const noNode int64 = 0

// chainNode - One record in a bucket chain
type chainNode struct {
	record model.Record
	next   int64
}

// newNode - Appends a node holding record to the arena and returns its address
func (S *SCTable) newNode(record model.Record) (address int64) {
	address = int64(len(S.nodes))
	S.nodes = append(S.nodes, chainNode{record: record, next: noNode})

	return
}

// getNode - Returns the record and the address of the following node for a node address
func (S *SCTable) getNode(address int64) (record model.Record, next int64) {
	node := S.nodes[address]
	return node.record, node.next
}

// insertOrdered - Links a new node for record into bucketNo in front of the first node having a code
// greater than or equal to the record code, and counts collisions along the way.
func (S *SCTable) insertOrdered(bucketNo int64, record model.Record) {
	address := S.newNode(record)

	head := S.buckets[bucketNo]
	if head == noNode {
		S.buckets[bucketNo] = address
		return
	}

	// Bucket already in use
	S.collisions++

	previous := noNode
	current := head
	for current != noNode && S.nodes[current].record.Code < record.Code {
		// Every node passed on the way to the insertion point counts as a collision as well
		S.collisions++
		previous = current
		current = S.nodes[current].next
	}

	S.nodes[address].next = current
	if previous == noNode {
		S.buckets[bucketNo] = address
	} else {
		S.nodes[previous].next = address
	}
}
