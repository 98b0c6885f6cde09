package hash

import (
	"fmt"
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/collisionbench/internal/utils"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Primary - Maps a key onto a bucket in [0, tableSize). It is the HashFunc1 of every internal hash algorithm.
type Primary func(key, tableSize int64) int64

// Names of the available primary hash functions
const (
	MultiplicativeName = "multiplicative"
	Murmur3Name        = "murmur3"
	XXHashName         = "xxhash"
	XXH3Name           = "xxh3"
)

var primaries = map[string]Primary{
	MultiplicativeName: Multiplicative,
	Murmur3Name:        Murmur3,
	XXHashName:         XXHash,
	XXH3Name:           XXH3,
}

// GetPrimary - Returns the primary hash function registered under name. An empty name gives Multiplicative.
func GetPrimary(name string) (primary Primary, err error) {
	if name == "" {
		name = MultiplicativeName
	}

	primary, ok := primaries[name]
	if !ok {
		err = fmt.Errorf("unknown primary hash function %q", name)
	}

	return
}

// Murmur3 - Buckets the 64 bit murmur3 hash of the little endian encoded key
func Murmur3(key, tableSize int64) int64 {
	return int64(murmur3.Sum64(utils.KeyBytes(key)) % uint64(tableSize))
}

// XXHash - Buckets the xxHash64 of the little endian encoded key
func XXHash(key, tableSize int64) int64 {
	return int64(xxhash.Sum64(utils.KeyBytes(key)) % uint64(tableSize))
}

// XXH3 - Buckets the XXH3 64 bit hash of the little endian encoded key
func XXH3(key, tableSize int64) int64 {
	return int64(xxh3.Hash(utils.KeyBytes(key)) % uint64(tableSize))
}

// orDefault - Returns primary, or Multiplicative when primary is nil
func orDefault(primary Primary) Primary {
	if primary == nil {
		return Multiplicative
	}
	return primary
}
