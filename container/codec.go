package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec compresses and decompresses a single chunk.
// The container records no codec identifier, so a container must be read
// back with the codec that wrote it (or with DetectCodec).
type Codec interface {
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// Codec names accepted by CodecByName.
const (
	CodecZlib = "zlib"
	CodecZstd = "zstd"
	CodecLZ4  = "lz4"
	CodecAuto = "auto"
)

var (
	// Zlib is the default codec and the only one that produces containers
	// readable by tools other than chunkpack.
	Zlib Codec = zlibCodec{}
	Zstd Codec = zstdCodec{}
	LZ4  Codec = lz4Codec{}
)

var codecs = map[string]Codec{
	CodecZlib: Zlib,
	CodecZstd: Zstd,
	CodecLZ4:  LZ4,
}

// CodecByName returns the codec registered under name.
// CodecAuto returns a nil Codec and no error: decompression then detects
// the codec of every chunk on its own.
func CodecByName(name string) (Codec, error) {
	if name == CodecAuto {
		return nil, nil
	}
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// CodecNames returns the registered codec names in sorted order.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectCodec identifies the codec of a compressed chunk from its leading
// bytes. It reports false when no registered codec matches.
func DetectCodec(chunk []byte) (Codec, bool) {
	if len(chunk) >= 4 {
		switch binary.LittleEndian.Uint32(chunk) {
		case zstdMagic:
			return Zstd, true
		case lz4Magic:
			return LZ4, true
		}
	}
	if len(chunk) >= 2 {
		cmf, flg := chunk[0], chunk[1]
		if cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0 {
			return Zlib, true
		}
	}
	return nil, false
}

const (
	zstdMagic = 0xFD2FB528
	lz4Magic  = 0x184D2204
)

type zlibCodec struct{}

func (zlibCodec) Name() string { return CodecZlib }

func (zlibCodec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return out, nil
}

// The zstd encoder and decoder are safe for concurrent EncodeAll/DecodeAll
// calls and are built once, on first use.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderCRC(true))
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil)
	})
)

type zstdCodec struct{}

func (zstdCodec) Name() string { return CodecZstd }

func (zstdCodec) Compress(src []byte) ([]byte, error) {
	enc, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return enc.EncodeAll(src, nil), nil
}

func (zstdCodec) Decompress(src []byte) ([]byte, error) {
	dec, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	out, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return out, nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return CodecLZ4 }

func (lz4Codec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (lz4Codec) Decompress(src []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return out, nil
}
