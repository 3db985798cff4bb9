package raw

import (
	"math/bits"

	"github.com/hupe1980/subint/internal/capability"
)

// WordBits is the number of bits in the register word.
const WordBits = 32

// popCount is selected once at init from the active capability kernel.
var popCount func(uint32) int

func init() {
	popCount = kernelFor(capability.ActiveKernel())
}

func kernelFor(k capability.Kernel) func(uint32) int {
	if k == capability.Hardware {
		return bits.OnesCount32
	}
	return swarPopCount
}

// PopCount returns the number of set bits in x.
func PopCount(x uint32) int {
	return popCount(x)
}

// swarPopCount counts bits with parallel adds inside the word.
func swarPopCount(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F
	return int((x * 0x01010101) >> 24)
}

// AllOnes returns a mask with the low width bits set.
//
// The shift is done in 64 bits so that width 32 yields 0xFFFFFFFF; a 32-bit
// shift by 32 would produce 0. Widths above 32 saturate to 0xFFFFFFFF.
func AllOnes(width uint32) uint32 {
	return uint32(uint64(1)<<width - 1)
}

// Advance returns the lexicographically next value after current that has
// exactly ones set bits within the low width bits.
//
// Preconditions: current has exactly ones bits set, none of them above width,
// and ones <= width <= 32. They are not checked.
//
// The largest pattern wraps around to the smallest one (all ones packed into
// the low bits): the carry leaves the window and is masked off.
func Advance(width, ones, current uint32) uint32 {
	// current-1 wraps to 0xFFFFFFFF for current == 0. Only ones == 0 admits
	// current == 0, and then the result is 0 regardless of t.
	t := current | (current - 1)

	// The carry sets the next upper bit and clears the run below it.
	upper := (t + 1) & AllOnes(width)

	// popcount(upper) <= ones, the difference is refilled at the bottom.
	need := ones - uint32(PopCount(upper))

	return upper | AllOnes(need)
}
