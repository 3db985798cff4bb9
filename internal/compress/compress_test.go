package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repetitive(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 7)
	}
	return data
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Type
		ok   bool
	}{
		{"none", None, true},
		{"", None, true},
		{"LZ4", LZ4, true},
		{"zstd", ZSTD, true},
		{"gzip", None, false},
	} {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, "zstd", ZSTD.String())
	assert.False(t, Type(9).Valid())
}

func TestRoundTrip(t *testing.T) {
	data := repetitive(100_000)

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, typ, 16*1024)
			n, err := w.Write(data)
			require.NoError(t, err)
			assert.Equal(t, len(data), n)
			require.NoError(t, w.Close())
			assert.Equal(t, int64(buf.Len()), w.BytesWritten())

			if typ != None {
				assert.Less(t, buf.Len(), len(data))
			}

			got, err := io.ReadAll(NewReader(&buf, typ))
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestIncompressibleStoredRaw(t *testing.T) {
	data := []byte{0x01, 0x9f, 0x33, 0x70}

	var buf bytes.Buffer
	w := NewWriter(&buf, LZ4, 0)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, headerSize+len(data), buf.Len())

	block, err := NewReader(&buf, LZ4).ReadBlock()
	require.NoError(t, err)
	assert.Equal(t, data, block)
}

func TestTruncated(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ZSTD, 0)
	_, err := w.Write(repetitive(4096))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	truncated := buf.Bytes()[:buf.Len()-3]
	_, err = NewReader(bytes.NewReader(truncated), ZSTD).ReadBlock()
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = NewReader(bytes.NewReader(buf.Bytes()[:4]), ZSTD).ReadBlock()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ZSTD, 0)
	require.NoError(t, w.Close())
	assert.Zero(t, buf.Len())

	_, err := NewReader(&buf, ZSTD).ReadBlock()
	assert.Equal(t, io.EOF, err)
}

func TestOversizedHeaderRejected(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"huge raw block", []byte{0xF0, 0xFF, 0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}},
		{"huge compressed block", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"stored larger than size", []byte{0x04, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tt.data), ZSTD).ReadBlock()
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), "block sizes")
		})
	}
}

func TestWriterClampsBlockSize(t *testing.T) {
	w := NewWriter(io.Discard, None, MaxBlockSize*4)
	assert.Equal(t, MaxBlockSize, w.blockSize)
}
