//go:build unit

package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
)

var testRow = Row{
	Family:       "SeparateChaining",
	Variant:      "Multiplicative",
	TableSize:    150000,
	Records:      100000,
	InsertMillis: 12,
	Collisions:   54321,
	GapMin:       1,
	GapMax:       9,
	GapAvg:       2,
	SearchMillis: 7,
	Found:        100000,
	LongestChain: 6,
}

func readAll(t *testing.T, r io.Reader) [][]string {
	records, err := csv.NewReader(r).ReadAll()
	assert.NoError(t, err, "reads csv")
	return records
}

func TestRow_Fields(t *testing.T) {
	t.Run("follows header order", func(t *testing.T) {
		// Execute
		fields := testRow.Fields()

		// Check
		assert.Equal(t, len(Header), len(fields), "one field per column")
		assert.Equal(t, []string{"SeparateChaining", "Multiplicative", "150000", "100000", "12", "54321", "1", "9", "2", "7", "100000", "6"}, fields, "field values")
	})
}

func TestNewStreamWriter(t *testing.T) {
	t.Run("writes plain csv", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w, err := NewStreamWriter(&buf, CompressionNone)
		assert.NoError(t, err, "creates writer")

		// Execute
		err = w.Write(testRow)
		assert.NoError(t, err, "writes row")
		err = w.Close()

		// Check
		assert.NoError(t, err, "closes writer")
		assert.Equal(t, [][]string{Header, testRow.Fields()}, readAll(t, &buf), "header and row")
	})

	t.Run("writes gzip csv", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w, err := NewStreamWriter(&buf, CompressionGzip)
		assert.NoError(t, err, "creates writer")

		// Execute
		assert.NoError(t, w.Write(testRow), "writes row")
		assert.NoError(t, w.Close(), "closes writer")

		// Check
		r, err := gzip.NewReader(&buf)
		assert.NoError(t, err, "opens gzip stream")
		assert.Equal(t, [][]string{Header, testRow.Fields()}, readAll(t, r), "header and row")
	})

	t.Run("writes zstd csv", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w, err := NewStreamWriter(&buf, CompressionZstd)
		assert.NoError(t, err, "creates writer")

		// Execute
		assert.NoError(t, w.Write(testRow), "writes row")
		assert.NoError(t, w.Close(), "closes writer")

		// Check
		r, err := zstd.NewReader(&buf)
		assert.NoError(t, err, "opens zstd stream")
		defer r.Close()
		assert.Equal(t, [][]string{Header, testRow.Fields()}, readAll(t, r), "header and row")
	})

	t.Run("rejects unknown compression", func(t *testing.T) {
		// Execute
		_, err := NewStreamWriter(&bytes.Buffer{}, "brotli")

		// Check
		assert.Error(t, err, "unknown compression rejected")
	})
}

func TestNewWriter(t *testing.T) {
	t.Run("creates report file with extension", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "report.csv")

		// Execute
		w, err := NewWriter(path, CompressionGzip)
		assert.NoError(t, err, "creates writer")
		assert.NoError(t, w.Write(testRow), "writes row")
		assert.NoError(t, w.Close(), "closes writer")

		// Check
		f, err := os.Open(path + ".gz")
		assert.NoError(t, err, "gz file exists")
		defer func(f *os.File) { _ = f.Close() }(f)
		r, err := gzip.NewReader(f)
		assert.NoError(t, err, "opens gzip stream")
		assert.Equal(t, 2, len(readAll(t, r)), "header and one row")
	})
}

func TestFileName(t *testing.T) {
	t.Run("appends extension once", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, "r.csv", FileName("r.csv", CompressionNone), "no extension")
		assert.Equal(t, "r.csv.gz", FileName("r.csv", CompressionGzip), "gzip extension")
		assert.Equal(t, "r.csv.gz", FileName("r.csv.gz", CompressionGzip), "gzip extension kept")
		assert.Equal(t, "r.csv.zst", FileName("r.csv", CompressionZstd), "zstd extension")
	})
}
