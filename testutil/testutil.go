package testutil

import (
	"fmt"
	"math/big"
	"math/bits"
	"math/rand"
	"sync"
)

// MaxBruteForceWidth bounds BruteForce, which scans all 2^width values.
const MaxBruteForceWidth = 22

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Value returns a random value with no bits above width.
func (r *RNG) Value(width uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32() & mask(width)
}

// Pattern returns a random value with exactly ones bits set within the low
// width bits. It panics if ones > width or width > 32.
func (r *RNG) Pattern(width, ones uint32) uint32 {
	if width > 32 || ones > width {
		panic(fmt.Sprintf("testutil: no pattern of %d ones in %d bits", ones, width))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.rand.Perm(int(width))
	var v uint32
	for _, p := range pos[:ones] {
		v |= 1 << p
	}
	return v
}

// BruteForce returns every value below 2^width with exactly ones bits set,
// in ascending order. It panics for widths above MaxBruteForceWidth.
func BruteForce(width, ones uint32) []uint32 {
	if width > MaxBruteForceWidth {
		panic(fmt.Sprintf("testutil: brute force over %d bits is too large", width))
	}

	var out []uint32
	for v := uint64(0); v < uint64(1)<<width; v++ {
		if uint32(bits.OnesCount64(v)) == ones {
			out = append(out, uint32(v))
		}
	}
	return out
}

// Binomial returns C(n, k) computed with arbitrary precision.
func Binomial(n, k uint32) uint64 {
	if k > n {
		return 0
	}
	return new(big.Int).Binomial(int64(n), int64(k)).Uint64()
}

func mask(width uint32) uint32 {
	if width >= 32 {
		return 0xFFFF_FFFF
	}
	return 1<<width - 1
}
