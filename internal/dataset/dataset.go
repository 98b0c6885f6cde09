package dataset

import (
	"math/rand"

	"github.com/gostonefire/collisionbench/internal/model"
)

// Generator - Produces reproducible sets of records from one seeded random stream.
// Consecutive calls to Records continue the same stream, so a whole benchmark sweep is reproduced by
// reusing one Generator with the same seed.
type Generator struct {
	rnd      *rand.Rand
	codeMin  int64
	codeSpan int64
}

// NewGenerator - Returns a pointer to a new Generator drawing codes from [codeMin, codeMin+codeSpan)
func NewGenerator(seed, codeMin, codeSpan int64) *Generator {
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		codeMin:  codeMin,
		codeSpan: codeSpan,
	}
}

// Records - Returns the next n records of the stream
func (G *Generator) Records(n int64) (records []model.Record) {
	records = make([]model.Record, n)
	for i := range records {
		records[i] = model.Record{Code: G.codeMin + G.rnd.Int63n(G.codeSpan)}
	}

	return
}

// Generate - Returns n records from a fresh stream seeded with seed
func Generate(seed, n, codeMin, codeSpan int64) []model.Record {
	return NewGenerator(seed, codeMin, codeSpan).Records(n)
}
