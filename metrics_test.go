package subint

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordEnumerate(8, 2, 28, 2*time.Millisecond, nil)
	mc.RecordEnumerate(8, 3, 10, 4*time.Millisecond, errors.New("boom"))
	mc.RecordExport(1024, time.Millisecond, nil)
	mc.RecordExport(0, time.Millisecond, errors.New("disk full"))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.EnumerateCount)
	assert.Equal(t, int64(1), stats.EnumerateErrors)
	assert.Equal(t, uint64(38), stats.EnumerateYielded)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.EnumerateAvgNanos)
	assert.Equal(t, int64(2), stats.ExportCount)
	assert.Equal(t, int64(1), stats.ExportErrors)
	assert.Equal(t, int64(1024), stats.ExportBytes)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	assert.Zero(t, (&BasicMetricsCollector{}).GetStats().EnumerateAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordEnumerate(1, 1, 1, time.Second, nil)
		mc.RecordExport(1, time.Second, nil)
	})
}
