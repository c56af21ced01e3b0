package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
//
// It is used for note record fingerprints and for detecting stale
// generated files in the notegen pipeline.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 of the given string without copying it.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
