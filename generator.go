package subint

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/subint/raw"
)

type generatorState uint8

const (
	stateActive generatorState = iota
	stateExhausted
)

// Generator yields successive permutations of a Register.
//
// A Generator is a small value with no shared state. It is not safe for
// concurrent use; callers sharing one across goroutines must synchronize.
type Generator struct {
	width  uint32
	ones   uint32
	cursor uint32
	state  generatorState
}

// Next returns the next permutation and true, or 0 and false once the
// generator is exhausted. Calling Next after exhaustion is safe and keeps
// returning false.
func (g *Generator) Next() (uint32, bool) {
	if g.state == stateExhausted {
		return 0, false
	}
	if g.width < g.ones {
		// No pattern of that many ones fits in the register.
		g.state = stateExhausted
		return 0, false
	}

	ret := g.cursor
	g.cursor = raw.Advance(g.width, g.ones, g.cursor)
	if g.cursor <= ret {
		// Wrapped around: ret is the last pattern of the cycle.
		g.state = stateExhausted
	}
	return ret, true
}

// Exhausted reports whether Next will return no further values.
func (g *Generator) Exhausted() bool {
	if g.state == stateExhausted {
		return true
	}
	return g.width < g.ones
}

// All returns an iterator over the remaining permutations.
// Breaking out of the loop leaves the generator positioned after the last
// value consumed.
func (g *Generator) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the generator into a slice.
func (g *Generator) Collect() []uint32 {
	var out []uint32
	if g.state == stateActive && g.cursor == raw.AllOnes(g.ones) {
		out = make([]uint32, 0, Register{width: g.width}.Count(g.ones))
	}
	for v := range g.All() {
		out = append(out, v)
	}
	return out
}

// Bitmap drains the generator into a roaring bitmap.
func (g *Generator) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	g.appendTo(rb, nil)
	return rb
}

// appendTo drains into rb in batches. stop is consulted between batches and
// aborts the drain when it returns a non-nil error.
func (g *Generator) appendTo(rb *roaring.Bitmap, stop func() error) (uint64, error) {
	const batchSize = 4096

	var (
		batch [batchSize]uint32
		total uint64
	)
	for {
		n := 0
		for n < batchSize {
			v, ok := g.Next()
			if !ok {
				break
			}
			batch[n] = v
			n++
		}
		rb.AddMany(batch[:n])
		total += uint64(n)

		if n < batchSize {
			return total, nil
		}
		if stop != nil {
			if err := stop(); err != nil {
				return total, err
			}
		}
	}
}
