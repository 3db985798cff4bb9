package subint

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// of the bulk operations (Enumerate, PowerSet, snapshot export).
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordEnumerate is called after each generator drained by Enumerate.
	// yielded is the number of values produced before completion or error.
	RecordEnumerate(width, ones uint32, yielded uint64, duration time.Duration, err error)

	// RecordExport is called after each snapshot export.
	RecordExport(written int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEnumerate(uint32, uint32, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordExport(int64, time.Duration, error)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	EnumerateCount      atomic.Int64
	EnumerateErrors     atomic.Int64
	EnumerateYielded    atomic.Uint64
	EnumerateTotalNanos atomic.Int64
	ExportCount         atomic.Int64
	ExportErrors        atomic.Int64
	ExportBytes         atomic.Int64
}

// RecordEnumerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEnumerate(_, _ uint32, yielded uint64, duration time.Duration, err error) {
	b.EnumerateCount.Add(1)
	b.EnumerateYielded.Add(yielded)
	b.EnumerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EnumerateErrors.Add(1)
	}
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(written int64, _ time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportBytes.Add(written)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EnumerateCount:    b.EnumerateCount.Load(),
		EnumerateErrors:   b.EnumerateErrors.Load(),
		EnumerateYielded:  b.EnumerateYielded.Load(),
		EnumerateAvgNanos: b.getAvgEnumerateNanos(),
		ExportCount:       b.ExportCount.Load(),
		ExportErrors:      b.ExportErrors.Load(),
		ExportBytes:       b.ExportBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEnumerateNanos() int64 {
	count := b.EnumerateCount.Load()
	if count == 0 {
		return 0
	}
	return b.EnumerateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EnumerateCount    int64
	EnumerateErrors   int64
	EnumerateYielded  uint64
	EnumerateAvgNanos int64
	ExportCount       int64
	ExportErrors      int64
	ExportBytes       int64
}
