package crt

import "fmt"

// TableFull - Custom error to inform that every slot of the table is occupied and the record was dropped
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingExhausted - Custom error to inform that the probe sequence visited capacity slots without finding an
// empty one. It can happen before the table is full since not every probe sequence covers all slots.
type ProbingExhausted struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingExhausted) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// BucketOutOfRange - Custom error to inform that a hash algorithm produced a bucket outside the table
type BucketOutOfRange struct {
	msg string
}

// NewBucketOutOfRange - Returns a BucketOutOfRange error describing the offending bucket number
func NewBucketOutOfRange(bucketNo, tableSize int64) BucketOutOfRange {
	return BucketOutOfRange{msg: fmt.Sprintf("bucket number %d outside table of size %d", bucketNo, tableSize)}
}

// Error - Used to notify that a bucket number was out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number out of range"
	}
	return B.msg
}

// Is - Lets errors.Is match any BucketOutOfRange regardless of message
func (B BucketOutOfRange) Is(target error) bool {
	_, ok := target.(BucketOutOfRange)
	return ok
}

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}
