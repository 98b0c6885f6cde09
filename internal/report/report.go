package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression formats understood by NewWriter
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// Header - Column names of the report
var Header = []string{
	"Family", "Variant", "TableSize", "Records", "InsertMillis", "Collisions",
	"GapMin", "GapMax", "GapAvg", "SearchMillis", "Found", "LongestChain",
}

// Row - Represents the measurements of one strategy run in one matrix cell
type Row struct {
	Family       string
	Variant      string
	TableSize    int64
	Records      int64
	InsertMillis int64
	Collisions   uint64
	GapMin       int64
	GapMax       int64
	GapAvg       int64
	SearchMillis int64
	Found        int64
	LongestChain int64
}

// Fields - Returns the row as CSV fields in Header order
func (R Row) Fields() []string {
	return []string{
		R.Family,
		R.Variant,
		strconv.FormatInt(R.TableSize, 10),
		strconv.FormatInt(R.Records, 10),
		strconv.FormatInt(R.InsertMillis, 10),
		strconv.FormatUint(R.Collisions, 10),
		strconv.FormatInt(R.GapMin, 10),
		strconv.FormatInt(R.GapMax, 10),
		strconv.FormatInt(R.GapAvg, 10),
		strconv.FormatInt(R.SearchMillis, 10),
		strconv.FormatInt(R.Found, 10),
		strconv.FormatInt(R.LongestChain, 10),
	}
}

// Writer - Writes report rows as CSV, optionally compressed
type Writer struct {
	file       *os.File
	compressor io.WriteCloser
	csv        *csv.Writer
}

// NewWriter - Creates (or truncates) the report file and writes the header.
// The file name gets a .gz or .zst extension if compression asks for it and the extension is missing.
//   - path is the report file name
//   - compression is one of CompressionNone, CompressionGzip or CompressionZstd
func NewWriter(path, compression string) (writer *Writer, err error) {
	path = FileName(path, compression)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create report file: %w", err)
		return
	}

	writer, err = NewStreamWriter(file, compression)
	if err != nil {
		_ = file.Close()
		return
	}
	writer.file = file

	return
}

// NewStreamWriter - Returns a Writer on an already open stream and writes the header. Closing the Writer
// does not close the stream.
func NewStreamWriter(w io.Writer, compression string) (writer *Writer, err error) {
	writer = &Writer{}

	switch compression {
	case CompressionNone, "":
	case CompressionGzip:
		writer.compressor = gzip.NewWriter(w)
		w = writer.compressor
	case CompressionZstd:
		var encoder *zstd.Encoder
		encoder, err = zstd.NewWriter(w)
		if err != nil {
			err = fmt.Errorf("error while creating zstd encoder: %w", err)
			return
		}
		writer.compressor = encoder
		w = encoder
	default:
		err = fmt.Errorf("unknown compression %q", compression)
		return
	}

	writer.csv = csv.NewWriter(w)
	err = writer.writeFields(Header)

	return
}

// FileName - Returns path with the extension matching compression appended if missing
func FileName(path, compression string) string {
	var ext string
	switch compression {
	case CompressionGzip:
		ext = ".gz"
	case CompressionZstd:
		ext = ".zst"
	}

	if ext != "" && !strings.HasSuffix(path, ext) {
		path += ext
	}

	return path
}

// Write - Writes one row
func (W *Writer) Write(row Row) (err error) {
	return W.writeFields(row.Fields())
}

// Close - Flushes pending data, finishes the compressed stream and closes the file if the Writer opened it
func (W *Writer) Close() (err error) {
	W.csv.Flush()
	err = W.csv.Error()

	if W.compressor != nil {
		if cerr := W.compressor.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	if W.file != nil {
		if cerr := W.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	if err != nil {
		err = fmt.Errorf("error while closing report: %w", err)
	}

	return
}

// writeFields - Writes and flushes one CSV record
func (W *Writer) writeFields(fields []string) (err error) {
	err = W.csv.Write(fields)
	if err != nil {
		err = fmt.Errorf("error while writing report row: %w", err)
		return
	}

	W.csv.Flush()
	err = W.csv.Error()
	if err != nil {
		err = fmt.Errorf("error while flushing report row: %w", err)
	}

	return
}
