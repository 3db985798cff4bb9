// Package subint enumerates the bit patterns of a fixed population count
// inside the low bits of a 32-bit register.
//
// For a register of width n and a one-count k, the patterns are produced in
// ascending numeric order, C(n, k) of them, without ever materializing the
// sequence unless asked to.
//
// # Quick Start
//
//	r, err := subint.Of(4)
//	if err != nil {
//	    return err
//	}
//
//	g := r.Permute(2)
//	for v := range g.All() {
//	    fmt.Printf("%04b\n", v) // 0011 0101 0110 1001 1010 1100
//	}
//
// # Building Blocks
//
//   - Register: a validated width with Permute, Invert, Count and Mask.
//   - Generator: a small value holding the cursor; Next, All, Collect, Bitmap.
//   - AllOnes, Advance: checked forms of the primitives in package raw.
//   - Positions, FromPositions: the combination view of a mask.
//
// Requesting more ones than the register holds is not an error: the generator
// is simply empty. Widths above 32 are rejected with ErrOutOfRange.
//
// # Bulk Operations
//
// Enumerate and PowerSet drain many generators in parallel into roaring
// bitmaps. They accept Options for logging, metrics and concurrency. Package
// snapshot persists such sets with optional LZ4 or ZSTD compression.
package subint
