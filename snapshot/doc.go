// Package snapshot persists a materialized set of permutations.
//
// A snapshot is a small fixed header followed by the portable roaring
// serialization of the set, framed into compressed blocks:
//
//	magic "SUBI" | version u8 | compression u8 | width u32 | n u32 |
//	ones[n] u32 | cardinality u64 | blocks...
//
// All integers are little-endian.
package snapshot
