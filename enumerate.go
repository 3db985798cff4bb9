package subint

import (
	"context"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// Enumerate drains one generator per requested one-count into a roaring
// bitmap, running up to WithConcurrency generators in parallel.
//
// Duplicate counts collapse into one entry; counts larger than the register
// width map to an empty bitmap. The context is polled between batches of
// 4096 values; on cancellation the context error is returned and no partial
// result is exposed.
func Enumerate(ctx context.Context, r Register, counts []uint32, opts ...Option) (map[uint32]*roaring.Bitmap, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	counts = slices.Clone(counts)
	slices.Sort(counts)
	counts = slices.Compact(counts)

	// Every goroutine owns exactly one bitmap; the map is read-only once the
	// group starts.
	results := make(map[uint32]*roaring.Bitmap, len(counts))
	for _, k := range counts {
		results[k] = roaring.New()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, k := range counts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			gen := r.Permute(k)
			n, err := gen.appendTo(results[k], gctx.Err)
			elapsed := time.Since(start)

			o.logger.LogEnumerate(gctx, r.Width(), k, n, elapsed, err)
			o.metricsCollector.RecordEnumerate(r.Width(), k, n, elapsed, err)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PowerSet returns every value that fits in the register, built as the union
// of all one-counts 0..Width. Its cardinality is 2^Width.
func PowerSet(ctx context.Context, r Register, opts ...Option) (*roaring.Bitmap, error) {
	counts := make([]uint32, 0, r.Width()+1)
	for k := uint32(0); k <= r.Width(); k++ {
		counts = append(counts, k)
	}

	parts, err := Enumerate(ctx, r, counts, opts...)
	if err != nil {
		return nil, err
	}

	bitmaps := make([]*roaring.Bitmap, 0, len(parts))
	for _, k := range counts {
		bitmaps = append(bitmaps, parts[k])
	}
	return roaring.FastOr(bitmaps...), nil
}
