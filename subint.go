package subint

import (
	"fmt"

	"github.com/hupe1980/subint/raw"
)

// WordBits is the size of the register word in bits.
const WordBits = raw.WordBits

// Register binds a window of the low Width bits of a uint32.
// The zero value is a valid register of width 0.
type Register struct {
	width uint32
}

// Of returns a Register of the given width.
// It returns an *ErrArgumentOutOfRange if width exceeds WordBits.
func Of(width uint32) (Register, error) {
	if width > WordBits {
		return Register{}, outOfRange("width", uint64(width), WordBits)
	}
	return Register{width: width}, nil
}

// MustOf is like Of but panics on error.
func MustOf(width uint32) Register {
	r, err := Of(width)
	if err != nil {
		panic(err)
	}
	return r
}

// Width returns the register width in bits.
func (r Register) Width() uint32 { return r.width }

// Mask returns the value with every bit of the register set.
func (r Register) Mask() uint32 { return raw.AllOnes(r.width) }

// Contains reports whether v has no bits set above the register width.
func (r Register) Contains(v uint32) bool { return v&^r.Mask() == 0 }

// Invert flips the low Width bits of v. Higher bits are left untouched.
func (r Register) Invert(v uint32) uint32 {
	return v ^ r.Mask()
}

// Permute returns a generator over every value with exactly ones bits set
// inside the register, in ascending order.
//
// It never fails: asking for more ones than the register holds yields an
// empty generator.
func (r Register) Permute(ones uint32) Generator {
	return Generator{
		width:  r.width,
		ones:   ones,
		cursor: raw.AllOnes(ones),
	}
}

// Count returns the number of values Permute(ones) yields, i.e. the binomial
// coefficient C(Width, ones). It is exact for every width up to 32.
func (r Register) Count(ones uint32) uint64 {
	n := uint64(r.width)
	k := uint64(ones)
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	c := uint64(1)
	for i := uint64(0); i < k; i++ {
		// c*(n-i) is divisible by i+1 at every step.
		c = c * (n - i) / (i + 1)
	}
	return c
}

func (r Register) String() string {
	return fmt.Sprintf("Register(%d)", r.width)
}

// AllOnes returns a mask with the low width bits set.
// It returns an *ErrArgumentOutOfRange if width exceeds WordBits.
func AllOnes(width uint32) (uint32, error) {
	if width > WordBits {
		return 0, outOfRange("width", uint64(width), WordBits)
	}
	return raw.AllOnes(width), nil
}

// Advance is the checked form of raw.Advance.
//
// It returns ErrOutOfRange if width exceeds WordBits or ones exceeds width,
// and ErrInvalidPattern if current does not have exactly ones bits set
// inside the low width bits.
func Advance(width, ones, current uint32) (uint32, error) {
	if width > WordBits {
		return 0, outOfRange("width", uint64(width), WordBits)
	}
	if ones > width {
		return 0, outOfRange("ones", uint64(ones), uint64(width))
	}
	if current&^raw.AllOnes(width) != 0 || uint32(raw.PopCount(current)) != ones {
		return 0, fmt.Errorf("%w: %#x does not have %d ones within %d bits", ErrInvalidPattern, current, ones, width)
	}
	return raw.Advance(width, ones, current), nil
}
