package bench

import (
	"fmt"
	"time"

	"github.com/gostonefire/collisionbench"
	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/model"
	"github.com/gostonefire/collisionbench/internal/report"
)

// Report families
const (
	FamilySeparateChaining = "SeparateChaining"
	FamilyOpenAddressing   = "OpenAddressing"
)

var variants = map[int]string{
	crt.SeparateChaining: "Multiplicative",
	crt.LinearProbing:    "Linear",
	crt.QuadraticProbing: "Quadratic",
	crt.DoubleHashing:    "DoubleHashing",
}

// Run - One strategy of the benchmark, a collision resolution technique combined with a primary hash function
type Run struct {
	Technique int
	Primary   string
}

// Family - Returns the report family of the run
func (R Run) Family() string {
	if crt.IsOpenAddressing(R.Technique) {
		return FamilyOpenAddressing
	}
	return FamilySeparateChaining
}

// Variant - Returns the report variant of the run, the technique name suffixed with the primary hash
// function when that is not the multiplicative one
func (R Run) Variant() string {
	variant := variants[R.Technique]
	if R.Primary != "" && R.Primary != hash.MultiplicativeName {
		variant += "/" + R.Primary
	}
	return variant
}

// Runs - Returns every combination of strategies and hash functions, strategies varying slowest
func Runs(strategies []int, hashes []string) (runs []Run) {
	for _, technique := range strategies {
		for _, primary := range hashes {
			runs = append(runs, Run{Technique: technique, Primary: primary})
		}
	}

	return
}

// Measure - Builds a table for run with the given capacity, inserts all records and searches them back.
// It returns the report row of the run with TableSize set to capacity.
func Measure(run Run, capacity int64, records []model.Record) (row report.Row, err error) {
	table, _, err := collisionbench.NewHashTableWithPrimary(run.Technique, capacity, run.Primary)
	if err != nil {
		err = fmt.Errorf("error while creating table for %s/%s: %w", run.Family(), run.Variant(), err)
		return
	}

	start := time.Now()
	for _, record := range records {
		table.Insert(record)
	}
	insertMillis := time.Since(start).Milliseconds()

	var found int64
	start = time.Now()
	for _, record := range records {
		if table.Search(record.Code) {
			found++
		}
	}
	searchMillis := time.Since(start).Milliseconds()

	stat := table.Stat()

	row = report.Row{
		Family:       run.Family(),
		Variant:      run.Variant(),
		TableSize:    capacity,
		Records:      int64(len(records)),
		InsertMillis: insertMillis,
		Collisions:   stat.Collisions,
		GapMin:       stat.GapMin,
		GapMax:       stat.GapMax,
		GapAvg:       stat.GapAvg,
		SearchMillis: searchMillis,
		Found:        found,
		LongestChain: stat.LongestChain,
	}

	return
}
