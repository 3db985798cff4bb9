package snapshot

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/subint"
	"github.com/hupe1980/subint/internal/compress"
)

const (
	magic   = "SUBI"
	version = 1

	// MaxOnes is the number of distinct one-counts a register admits (0..32).
	MaxOnes = subint.WordBits + 1
)

// Compression selects how the set body is compressed.
type Compression = compress.Type

const (
	None = compress.None
	LZ4  = compress.LZ4
	ZSTD = compress.ZSTD
)

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	c, ok := compress.Parse(s)
	if !ok {
		return None, fmt.Errorf("snapshot: unknown compression %q", s)
	}
	return c, nil
}

var (
	// ErrBadMagic is returned when the stream is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshots of a newer format.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrCorrupt is returned when the body does not match the header.
	ErrCorrupt = errors.New("snapshot: corrupt")
)

// Snapshot is a set of permutations of one register.
type Snapshot struct {
	Width  uint32
	Ones   []uint32
	Bitmap *roaring.Bitmap
}

// Build enumerates the given one-counts of r into a Snapshot.
// The counts are stored sorted and without duplicates.
func Build(r subint.Register, ones ...uint32) *Snapshot {
	ones = normalizeOnes(ones)

	rb := roaring.New()
	for _, k := range ones {
		gen := r.Permute(k)
		rb.Or(gen.Bitmap())
	}
	return &Snapshot{Width: r.Width(), Ones: ones, Bitmap: rb}
}

func normalizeOnes(ones []uint32) []uint32 {
	ones = slices.Clone(ones)
	slices.Sort(ones)
	return slices.Compact(ones)
}

type header struct {
	Compression uint8
	Width       uint32
	Ones        []uint32
	Cardinality uint64
}

// Write serializes s to w and returns the number of bytes written.
//
// One-counts are written sorted and deduplicated; more than MaxOnes distinct
// counts is an error. s is not modified.
func Write(w io.Writer, s *Snapshot, c Compression) (int64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("snapshot: invalid compression %d", uint8(c))
	}
	if s.Width > subint.WordBits {
		return 0, fmt.Errorf("snapshot: %w", &subint.ErrArgumentOutOfRange{Argument: "width", Value: uint64(s.Width), Max: subint.WordBits})
	}

	ones := normalizeOnes(s.Ones)
	if len(ones) > MaxOnes {
		return 0, fmt.Errorf("snapshot: %d distinct one-counts, at most %d", len(ones), MaxOnes)
	}

	rb := roaring.New()
	if s.Bitmap != nil {
		rb = s.Bitmap.Clone()
	}
	rb.RunOptimize()

	var hdr bytes.Buffer
	hdr.WriteString(magic)
	hdr.WriteByte(version)
	hdr.WriteByte(byte(c))
	_ = binary.Write(&hdr, binary.LittleEndian, s.Width)
	_ = binary.Write(&hdr, binary.LittleEndian, uint32(len(ones)))
	for _, k := range ones {
		_ = binary.Write(&hdr, binary.LittleEndian, k)
	}
	_ = binary.Write(&hdr, binary.LittleEndian, rb.GetCardinality())

	n, err := w.Write(hdr.Bytes())
	written := int64(n)
	if err != nil {
		return written, err
	}

	bw := compress.NewWriter(w, c, 0)
	if _, err := rb.WriteTo(bw); err != nil {
		return written + bw.BytesWritten(), err
	}
	if err := bw.Close(); err != nil {
		return written + bw.BytesWritten(), err
	}
	return written + bw.BytesWritten(), nil
}

// Read deserializes a snapshot written by Write.
func Read(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(compress.NewReader(br, Compression(h.Compression)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	rb := roaring.New()
	if err := rb.UnmarshalBinary(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rb.GetCardinality() != h.Cardinality {
		return nil, fmt.Errorf("%w: cardinality %d, header says %d", ErrCorrupt, rb.GetCardinality(), h.Cardinality)
	}
	if h.Width < subint.WordBits && rb.GetCardinality() > 0 && rb.Maximum() >= uint32(1)<<h.Width {
		return nil, fmt.Errorf("%w: value %#x exceeds width %d", ErrCorrupt, rb.Maximum(), h.Width)
	}

	return &Snapshot{Width: h.Width, Ones: h.Ones, Bitmap: rb}, nil
}

func readHeader(r io.Reader) (*header, error) {
	var prefix [6]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	}
	if string(prefix[:4]) != magic {
		return nil, ErrBadMagic
	}
	if prefix[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, prefix[4])
	}

	h := &header{Compression: prefix[5]}
	if !Compression(h.Compression).Valid() {
		return nil, fmt.Errorf("%w: compression %d", ErrCorrupt, h.Compression)
	}

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &h.Width); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if h.Width > subint.WordBits {
		return nil, fmt.Errorf("%w: width %d", ErrCorrupt, h.Width)
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if n > MaxOnes {
		return nil, fmt.Errorf("%w: %d one-counts", ErrCorrupt, n)
	}
	h.Ones = make([]uint32, n)
	for i := range h.Ones {
		if err := binary.Read(r, binary.LittleEndian, &h.Ones[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Cardinality); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return h, nil
}
