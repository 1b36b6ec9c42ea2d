// Package framehash fingerprints decoded frames for the CLI's dump output.
// The teacher repo hashes metric names for its columnar interning table
// (internal/hash, dropped — see DESIGN.md); QSH has no metric-name space,
// so this package keeps the same xxHash64 choice but points it at a
// rendered frame instead.
package framehash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of a frame's rendered form, letting the CLI tag
// each dumped record without re-reading the source file.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
