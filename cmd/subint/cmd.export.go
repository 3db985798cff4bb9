package main

import (
	"fmt"
	"os"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/subint"
	"github.com/hupe1980/subint/snapshot"
)

type export struct {
	Width       uint32   `help:"register width in bits (0-32)" short:"w" required:"" env:"SUBINT_WIDTH"`
	Ones        []uint32 `help:"one-counts to include, comma separated" short:"k" required:"" sep:","`
	Compression string   `help:"block compression" enum:"none,lz4,zstd" default:"zstd" env:"SUBINT_COMPRESSION"`
	Concurrency int      `help:"generators drained in parallel (0 = GOMAXPROCS)" default:"0"`
	Path        string   `arg:"" help:"destination file" type:"path"`
}

func (t export) Run(gctx *Global) error {
	r, err := subint.Of(t.Width)
	if err != nil {
		return err
	}

	c, err := snapshot.ParseCompression(t.Compression)
	if err != nil {
		return err
	}

	mc := &subint.BasicMetricsCollector{}
	sets, err := subint.Enumerate(gctx.Context, r, t.Ones,
		subint.WithLogger(gctx.Logger),
		subint.WithMetricsCollector(mc),
		subint.WithConcurrency(t.Concurrency),
	)
	if err != nil {
		return err
	}

	parts := make([]*roaring.Bitmap, 0, len(sets))
	for _, rb := range sets {
		parts = append(parts, rb)
	}
	s := &snapshot.Snapshot{Width: t.Width, Ones: t.Ones, Bitmap: roaring.FastOr(parts...)}

	start := time.Now()
	written, err := writeSnapshot(t.Path, s, c)
	mc.RecordExport(written, time.Since(start), err)
	gctx.Logger.LogExport(gctx.Context, t.Path, written, err)
	if err != nil {
		return err
	}

	stats := mc.GetStats()
	gctx.Logger.Debug("export stats",
		"generators", stats.EnumerateCount,
		"values", stats.EnumerateYielded,
		"avg_enumerate_ns", stats.EnumerateAvgNanos,
	)

	_, err = fmt.Fprintf(gctx.Output, "%s: %d values, %d bytes (%s)\n", t.Path, s.Bitmap.GetCardinality(), written, c)
	return err
}

func writeSnapshot(path string, s *snapshot.Snapshot, c snapshot.Compression) (written int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return snapshot.Write(f, s, c)
}
