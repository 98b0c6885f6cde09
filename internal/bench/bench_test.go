//go:build unit

package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/internal/conf"
	"github.com/gostonefire/collisionbench/internal/dataset"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/report"
	"github.com/stretchr/testify/assert"
)

type rowCollector struct {
	rows []report.Row
	fail bool
}

func (R *rowCollector) Write(row report.Row) error {
	if R.fail {
		return errors.New("disk full")
	}
	R.rows = append(R.rows, row)
	return nil
}

type countingPublisher struct {
	published int
}

func (C *countingPublisher) Publish(report.Row) { C.published++ }
func (C *countingPublisher) Close() error       { return nil }

func testConfig() conf.Config {
	return conf.Config{
		TableSizes:   []int64{10, 200},
		RecordCounts: []int64{5, 50},
		LoadFactor:   1.5,
		Seed:         42,
		CodeMin:      100000000,
		CodeSpan:     900000000,
		Strategies:   []int{crt.SeparateChaining, crt.QuadraticProbing, crt.DoubleHashing},
		Hashes:       []string{hash.MultiplicativeName, hash.XXHashName},
		Workers:      3,
	}
}

// withoutTimings - Clears the wall clock fields so rows of different sweeps can be compared
func withoutTimings(rows []report.Row) []report.Row {
	cleared := make([]report.Row, len(rows))
	for i, row := range rows {
		row.InsertMillis = 0
		row.SearchMillis = 0
		cleared[i] = row
	}
	return cleared
}

func TestRun_Names(t *testing.T) {
	t.Run("family and variant", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, FamilySeparateChaining, Run{Technique: crt.SeparateChaining}.Family(), "chaining family")
		assert.Equal(t, FamilyOpenAddressing, Run{Technique: crt.QuadraticProbing}.Family(), "quadratic family")
		assert.Equal(t, FamilyOpenAddressing, Run{Technique: crt.LinearProbing}.Family(), "linear family")
		assert.Equal(t, "Multiplicative", Run{Technique: crt.SeparateChaining}.Variant(), "chaining variant")
		assert.Equal(t, "Quadratic", Run{Technique: crt.QuadraticProbing, Primary: hash.MultiplicativeName}.Variant(), "quadratic variant")
		assert.Equal(t, "DoubleHashing/murmur3", Run{Technique: crt.DoubleHashing, Primary: hash.Murmur3Name}.Variant(), "double hashing with murmur3")
	})
}

func TestRuns(t *testing.T) {
	t.Run("strategies vary slowest", func(t *testing.T) {
		// Execute
		runs := Runs([]int{crt.SeparateChaining, crt.DoubleHashing}, []string{"a", "b"})

		// Check
		assert.Equal(t, []Run{
			{Technique: crt.SeparateChaining, Primary: "a"},
			{Technique: crt.SeparateChaining, Primary: "b"},
			{Technique: crt.DoubleHashing, Primary: "a"},
			{Technique: crt.DoubleHashing, Primary: "b"},
		}, runs, "combination order")
	})
}

func TestMeasure(t *testing.T) {
	records := dataset.Generate(42, 100, 100000000, 900000000)

	t.Run("separate chaining finds every record", func(t *testing.T) {
		// Execute
		row, err := Measure(Run{Technique: crt.SeparateChaining}, 150, records)

		// Check
		assert.NoError(t, err, "measures")
		assert.Equal(t, FamilySeparateChaining, row.Family, "family")
		assert.Equal(t, "Multiplicative", row.Variant, "variant")
		assert.Equal(t, int64(150), row.TableSize, "table size is capacity")
		assert.Equal(t, int64(100), row.Records, "records")
		assert.Equal(t, int64(100), row.Found, "all found")
		assert.GreaterOrEqual(t, row.LongestChain, int64(1), "longest chain")
		assert.LessOrEqual(t, row.GapMin, row.GapMax, "gap order")
	})

	t.Run("open addressing has no chains", func(t *testing.T) {
		// Execute
		row, err := Measure(Run{Technique: crt.DoubleHashing, Primary: hash.XXH3Name}, 151, records)

		// Check
		assert.NoError(t, err, "measures")
		assert.Equal(t, FamilyOpenAddressing, row.Family, "family")
		assert.Equal(t, "DoubleHashing/xxh3", row.Variant, "variant")
		assert.Equal(t, int64(0), row.LongestChain, "no chains")
		assert.LessOrEqual(t, row.Found, int64(100), "found bounded by records")
		assert.Greater(t, row.Found, int64(0), "records found")
	})

	t.Run("table smaller than data set drops records", func(t *testing.T) {
		// Execute
		row, err := Measure(Run{Technique: crt.QuadraticProbing}, 10, records)

		// Check
		assert.NoError(t, err, "measures")
		assert.LessOrEqual(t, row.Found, int64(10), "at most capacity found")
	})

	t.Run("unknown primary fails", func(t *testing.T) {
		// Execute
		_, err := Measure(Run{Technique: crt.DoubleHashing, Primary: "sha1"}, 151, records)

		// Check
		assert.Error(t, err, "unknown primary rejected")
	})
}

func TestRunner_Run(t *testing.T) {
	t.Run("emits rows in configuration order", func(t *testing.T) {
		// Prepare
		config := testConfig()
		writer := &rowCollector{}
		publisher := &countingPublisher{}
		runner := NewRunner(config, writer, publisher)

		// Execute
		err := runner.Run(context.Background())

		// Check
		assert.NoError(t, err, "sweep completes")
		assert.Equal(t, 24, len(writer.rows), "4 cells times 6 runs")
		assert.Equal(t, 24, publisher.published, "every row published")

		expectedVariants := []string{
			"Multiplicative", "Multiplicative/xxhash",
			"Quadratic", "Quadratic/xxhash",
			"DoubleHashing", "DoubleHashing/xxhash",
		}
		expectedCells := [][2]int64{{10, 5}, {75, 50}, {200, 5}, {200, 50}}
		for i, row := range writer.rows {
			assert.Equal(t, expectedVariants[i%6], row.Variant, "variant order")
			assert.Equal(t, expectedCells[i/6][0], row.TableSize, "capacity of cell")
			assert.Equal(t, expectedCells[i/6][1], row.Records, "records of cell")
		}
	})

	t.Run("sweep is reproducible regardless of workers", func(t *testing.T) {
		// Prepare
		config := testConfig()
		sequential := &rowCollector{}
		parallel := &rowCollector{}
		config.Workers = 1
		runner1 := NewRunner(config, sequential, nil)
		config.Workers = 6
		runner2 := NewRunner(config, parallel, nil)

		// Execute
		err1 := runner1.Run(context.Background())
		err2 := runner2.Run(context.Background())

		// Check
		assert.NoError(t, err1, "sequential sweep")
		assert.NoError(t, err2, "parallel sweep")
		assert.Equal(t, withoutTimings(sequential.rows), withoutTimings(parallel.rows), "same rows")
	})

	t.Run("cancelled context stops the sweep", func(t *testing.T) {
		// Prepare
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		writer := &rowCollector{}
		runner := NewRunner(testConfig(), writer, nil)

		// Execute
		err := runner.Run(ctx)

		// Check
		assert.ErrorIs(t, err, context.Canceled, "cancellation reported")
		assert.Equal(t, 0, len(writer.rows), "no rows written")
	})

	t.Run("writer error stops the sweep", func(t *testing.T) {
		// Prepare
		writer := &rowCollector{fail: true}
		runner := NewRunner(testConfig(), writer, nil)

		// Execute
		err := runner.Run(context.Background())

		// Check
		assert.Error(t, err, "write error reported")
	})
}
