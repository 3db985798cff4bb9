package subint

import (
	"github.com/bits-and-blooms/bitset"
)

// Positions returns the indices of the set bits of mask in ascending order.
// This is the combination view of a permutation: the chosen bit positions.
func Positions(mask uint32) []uint {
	bs := bitset.From([]uint64{uint64(mask)})

	out := make([]uint, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// FromPositions builds a mask with the given bit indices set.
// Repeated indices are allowed. An index of WordBits or more returns an
// *ErrArgumentOutOfRange.
func FromPositions(pos ...uint) (uint32, error) {
	bs := bitset.New(WordBits)
	for _, p := range pos {
		if p >= WordBits {
			return 0, outOfRange("position", uint64(p), WordBits-1)
		}
		bs.Set(p)
	}
	return uint32(bs.Words()[0]), nil
}
