package container

import (
	"encoding/binary"
	"math"
)

const (
	// HeaderSize is the length of the total_length field at the start of
	// every container.
	HeaderSize = 4
	// ChunkHeaderSize is the length of the chunk_length field preceding
	// every chunk.
	ChunkHeaderSize = 4
	// ChunkSize is the maximum number of original bytes held by one chunk.
	// It is part of the format and must not change.
	ChunkSize = 1 << 20
	// MaxTotalLength is the largest input the header can describe.
	MaxTotalLength = math.MaxUint32
)

func putUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// readUint32 reads a little-endian uint32 at off. It reports false when
// fewer than four bytes remain.
func readUint32(b []byte, off int) (uint32, bool) {
	if off < 0 || len(b)-off < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[off:]), true
}

// TotalLength returns the original input length recorded in the header.
func TotalLength(data []byte) (uint32, error) {
	n, ok := readUint32(data, 0)
	if !ok {
		return 0, ErrTruncatedHeader
	}
	return n, nil
}

// Bound selects how decompression decides it has read the last chunk.
type Bound int

const (
	// BoundContainer reads chunks until the end of the container.
	BoundContainer Bound = iota
	// BoundLegacy reads chunks while the container offset is below the
	// header's total_length, as the original tool does. The two values are
	// in different units, so output may be truncated when the container is
	// larger than the original data.
	BoundLegacy
)

func (b Bound) String() string {
	switch b {
	case BoundContainer:
		return "container"
	case BoundLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

type options struct {
	codec      Codec
	bestEffort bool
	bound      Bound
}

// Option configures Compress and Decompress.
type Option func(*options)

// WithCodec sets the chunk codec. For Decompress a nil codec selects
// per-chunk detection.
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithBestEffort skips chunks the codec rejects instead of failing the
// operation. Skipped chunks are still listed in the Report.
func WithBestEffort() Option {
	return func(o *options) { o.bestEffort = true }
}

// WithLegacyBound makes Decompress stop at the original tool's loop bound.
func WithLegacyBound() Option {
	return func(o *options) { o.bound = BoundLegacy }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
