package compress

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type selects the block compression algorithm.
type Type uint8

const (
	// None stores blocks as-is.
	None Type = 0
	// LZ4 is fast block compression.
	LZ4 Type = 1
	// ZSTD trades speed for a better ratio.
	ZSTD Type = 2
)

const (
	// DefaultBlockSize is used when a non-positive block size is requested.
	DefaultBlockSize = 256 * 1024
	// MaxBlockSize caps the uncompressed size of a block. Writers clamp to it
	// and readers reject headers above it.
	MaxBlockSize = 4 * 1024 * 1024
)

const headerSize = 8

// ErrCorrupt is returned for truncated or inconsistent blocks.
var ErrCorrupt = errors.New("compress: corrupt block")

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Parse parses a compression name.
func Parse(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, true
	case "lz4":
		return LZ4, true
	case "zstd":
		return ZSTD, true
	default:
		return None, false
	}
}

// Valid reports whether t is a known algorithm.
func (t Type) Valid() bool {
	return t <= ZSTD
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(MaxBlockSize))
	return dec
}

// encode returns the payload to store, or nil when the block should be
// stored raw.
func encode(data []byte, t Type) ([]byte, error) {
	switch t {
	case LZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return dst[:n], nil
	case ZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, nil
	}
}

func decode(payload []byte, size uint32, t Type) ([]byte, error) {
	out := make([]byte, size)
	switch t {
	case LZ4:
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: lz4 size mismatch", ErrCorrupt)
		}
		return out, nil
	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(payload, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("%w: zstd size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed payload with compression %s", ErrCorrupt, t)
	}
}

// Writer buffers writes and emits them as compressed blocks.
type Writer struct {
	w         io.Writer
	typ       Type
	blockSize int
	buf       []byte
	written   int64
}

// NewWriter creates a block writer. Close must be called to flush the final
// block; it does not close w.
func NewWriter(w io.Writer, t Type, blockSize int) *Writer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	blockSize = min(blockSize, MaxBlockSize)
	return &Writer{
		w:         w,
		typ:       t,
		blockSize: blockSize,
		buf:       make([]byte, 0, blockSize),
	}
}

// Write implements io.Writer.
func (c *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if len(c.buf) == c.blockSize {
			if err := c.flushBlock(); err != nil {
				return total, err
			}
		}
		n := min(len(p), c.blockSize-len(c.buf))
		c.buf = append(c.buf, p[:n]...)
		total += n
		p = p[n:]
	}
	return total, nil
}

func (c *Writer) flushBlock() error {
	if len(c.buf) == 0 {
		return nil
	}

	payload, err := encode(c.buf, c.typ)
	if err != nil {
		return err
	}

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(len(c.buf)))
	// Keep the raw bytes unless compression saves at least 10%.
	if payload == nil || float64(len(payload)) > float64(len(c.buf))*0.9 {
		payload = c.buf
	} else {
		binary.LittleEndian.PutUint32(hdr[4:], uint32(len(payload)))
	}

	if _, err := c.w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := c.w.Write(payload); err != nil {
		return err
	}
	c.written += int64(headerSize + len(payload))
	c.buf = c.buf[:0]
	return nil
}

// Close flushes any buffered data.
func (c *Writer) Close() error {
	return c.flushBlock()
}

// BytesWritten returns the framed bytes written so far.
func (c *Writer) BytesWritten() int64 {
	return c.written
}

// Reader decodes a stream written by Writer.
type Reader struct {
	r   *bufio.Reader
	typ Type
	cur []byte
}

// NewReader creates a block reader.
func NewReader(r io.Reader, t Type) *Reader {
	return &Reader{r: bufio.NewReader(r), typ: t}
}

// ReadBlock returns the next decoded block, or io.EOF at a clean end of
// stream.
func (c *Reader) ReadBlock() ([]byte, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(c.r, hdr[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: short header", ErrCorrupt)
	}

	size := binary.LittleEndian.Uint32(hdr[0:])
	stored := binary.LittleEndian.Uint32(hdr[4:])

	// Compressed payloads are only kept when smaller than the block.
	if size > MaxBlockSize || stored > size {
		return nil, fmt.Errorf("%w: block sizes %d/%d", ErrCorrupt, size, stored)
	}

	n := stored
	if stored == 0 {
		n = size
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return nil, fmt.Errorf("%w: short payload", ErrCorrupt)
	}

	if stored == 0 {
		return payload, nil
	}
	return decode(payload, size, c.typ)
}

// Read implements io.Reader over the decoded stream.
func (c *Reader) Read(p []byte) (int, error) {
	for len(c.cur) == 0 {
		block, err := c.ReadBlock()
		if err != nil {
			return 0, err
		}
		c.cur = block
	}
	n := copy(p, c.cur)
	c.cur = c.cur[n:]
	return n, nil
}
