package subint

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithWidth(16).WithOnes(3).Info("hello")
	assert.Contains(t, buf.String(), `"width":16`)
	assert.Contains(t, buf.String(), `"ones":3`)
}

func TestLoggerOperations(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.LogEnumerate(ctx, 8, 2, 0, 0, errors.New("cancelled"))
	assert.Contains(t, buf.String(), "enumerate failed")

	buf.Reset()
	l.LogExport(ctx, "out.subi", 128, nil)
	assert.Contains(t, buf.String(), "snapshot exported")
	assert.Contains(t, buf.String(), "bytes=128")

	buf.Reset()
	l.LogExport(ctx, "out.subi", 0, errors.New("denied"))
	assert.Contains(t, buf.String(), "export failed")
}

func TestJSONLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelInfo)

	l.WithWidth(8).Debug("hidden")
	assert.Empty(t, buf.String())

	l.WithWidth(8).Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"width":8`)
}

func TestTextLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelDebug)

	l.WithOnes(3).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "ones=3")
}

func TestLoggerNilWriter(t *testing.T) {
	assert.NotNil(t, NewJSONLogger(nil, slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(nil, slog.LevelInfo))
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
