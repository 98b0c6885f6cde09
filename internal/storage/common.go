package storage

import "github.com/gostonefire/collisionbench/internal/model"

// Gaps - Computes run length statistics over the maximal runs of empty slots that lie between two occupied
// slots of a table with slots 0 -> slots - 1. Leading and trailing runs of empty slots are not counted.
// If there are no interior runs all statistics are zero.
//   - slots is the number of slots (or buckets) to scan
//   - occupied reports whether a given slot holds at least one record
func Gaps(slots int64, occupied func(slot int64) bool) (stats model.GapStats) {
	var current, total, count int64
	var inside bool

	for i := int64(0); i < slots; i++ {
		if !occupied(i) {
			current++
			continue
		}

		if inside && current > 0 {
			if count == 0 || current < stats.Min {
				stats.Min = current
			}
			if current > stats.Max {
				stats.Max = current
			}
			total += current
			count++
		}
		inside = true
		current = 0
	}

	if count > 0 {
		stats.Avg = total / count
	}

	return
}
