package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/subint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobal(out *bytes.Buffer) *Global {
	return &Global{
		Context: context.Background(),
		Output:  out,
		Logger:  subint.NoopLogger(),
	}
}

func TestPermute(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, permute{Width: 4, Ones: 2, Format: "bin"}.Run(testGlobal(&out)))
	assert.Equal(t, "0011\n0101\n0110\n1001\n1010\n1100\n", out.String())
}

func TestPermuteLimitHex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, permute{Width: 16, Ones: 1, Format: "hex", Limit: 3}.Run(testGlobal(&out)))
	assert.Equal(t, "0x0001\n0x0002\n0x0004\n", out.String())
}

func TestPermuteEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, permute{Width: 3, Ones: 4, Format: "dec"}.Run(testGlobal(&out)))
	assert.Empty(t, out.String())
}

func TestPermuteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, permute{Width: 5, Ones: 1, Format: "json", Codec: "json"}.Run(testGlobal(&out)))

	var got struct {
		Width  uint32   `json:"width"`
		Count  uint64   `json:"count"`
		Values []uint32 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, uint32(5), got.Width)
	assert.Equal(t, uint64(5), got.Count)
	assert.Equal(t, []uint32{1, 2, 4, 8, 16}, got.Values)
}

func TestPermuteWidthOutOfRange(t *testing.T) {
	err := permute{Width: 40, Ones: 1}.Run(testGlobal(&bytes.Buffer{}))
	assert.ErrorIs(t, err, subint.ErrOutOfRange)
}

func TestInvert(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, invert{Width: 16, Format: "hex", Value: "0x12345678"}.Run(testGlobal(&out)))
	assert.Equal(t, "0x1234a987\n", out.String())

	out.Reset()
	require.NoError(t, invert{Width: 4, Format: "dec", Value: "0b0101"}.Run(testGlobal(&out)))
	assert.Equal(t, "10\n", out.String())

	assert.Error(t, invert{Width: 4, Value: "nope"}.Run(testGlobal(&bytes.Buffer{})))
}

func TestCount(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, count{Width: 32, Ones: 16}.Run(testGlobal(&out)))
	assert.Equal(t, "601080390\n", out.String())
}

func TestExportInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.subi")

	var out bytes.Buffer
	require.NoError(t, export{Width: 10, Ones: []uint32{2, 8}, Compression: "lz4", Path: path}.Run(testGlobal(&out)))
	assert.Contains(t, out.String(), "90 values")

	out.Reset()
	require.NoError(t, inspect{Path: path}.Run(testGlobal(&out)))
	s := out.String()
	assert.Contains(t, s, "width:       10")
	assert.Contains(t, s, "ones:        [2 8]")
	assert.Contains(t, s, "cardinality: 90")
	assert.Contains(t, s, "minimum:     0x003")
	assert.Contains(t, s, "maximum:     0x3fc")
}

func TestInfo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, info{}.Run(testGlobal(&out)))
	assert.True(t, strings.HasPrefix(out.String(), "arch:"))
	assert.Contains(t, out.String(), "popcount kernel:")
}

func TestParseValue(t *testing.T) {
	for in, want := range map[string]uint32{
		"10":         10,
		"0x10":       16,
		"0b101":      5,
		"0o17":       15,
		"4294967295": 0xFFFF_FFFF,
	} {
		got, err := parseValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseValue("4294967296")
	assert.Error(t, err)
}

func TestGlobalLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", Global{LogLevel: "debug"}.level().String())
	assert.Equal(t, "INFO", Global{LogLevel: "bogus"}.level().String())
}

func TestGlobalNewLogger(t *testing.T) {
	var buf bytes.Buffer
	Global{LogLevel: "info", LogFormat: "json"}.newLogger(&buf).WithWidth(4).Info("ready")
	assert.Contains(t, buf.String(), `"width":4`)

	buf.Reset()
	Global{LogLevel: "warn", LogFormat: "text"}.newLogger(&buf).Info("quiet")
	assert.Empty(t, buf.String())

	Global{LogLevel: "warn", LogFormat: "text"}.newLogger(&buf).Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		format string
		width  uint32
		v      uint32
		want   string
	}{
		{"hex", 16, 0x1, "0x0001"},
		{"hex", 10, 0x3, "0x003"},
		{"hex", 32, 0x1234a987, "0x1234a987"},
		{"hex", 0, 0, "0x0"},
		{"bin", 4, 0b11, "0011"},
		{"bin", 0, 0, "0"},
		{"dec", 8, 255, "255"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.format, tt.width, tt.v), "%s/%d/%#x", tt.format, tt.width, tt.v)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestPermuteReportsFlushError(t *testing.T) {
	g := &Global{
		Context: context.Background(),
		Output:  failingWriter{},
		Logger:  subint.NoopLogger(),
	}
	err := permute{Width: 4, Ones: 2, Format: "dec"}.Run(g)
	assert.EqualError(t, err, "stdout closed")
}
