package container

import "fmt"

// Compress builds a container from src.
//
// The input is split into ChunkSize slices which are compressed
// independently and appended as length-prefixed chunks after the
// total_length header. Empty input yields a bare header.
//
// In strict mode a codec failure aborts the operation and no container is
// returned. With WithBestEffort the failed slice is left out of the
// container entirely, neither length nor data, and the Report lists it.
func Compress(src []byte, opts ...Option) ([]byte, *Report, error) {
	o := buildOptions(opts)
	codec := o.codec
	if codec == nil {
		codec = Zlib
	}
	if uint64(len(src)) > MaxTotalLength {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(src))
	}

	report := &Report{TotalLength: uint32(len(src))}
	out := make([]byte, 0, HeaderSize+len(src)/2)
	out = putUint32(out, uint32(len(src)))

	for start := 0; start < len(src); start += ChunkSize {
		end := min(start+ChunkSize, len(src))
		status := ChunkStatus{Offset: -1, OriginalLen: end - start}

		compressed, err := codec.Compress(src[start:end])
		if err == nil && len(compressed) == 0 {
			// a zero chunk_length would read back as the end marker
			err = ErrEmptyChunk
		}
		if err != nil {
			status.Err = &ChunkError{Index: len(report.Chunks), Op: "compress", Err: err}
			report.add(status)
			if !o.bestEffort {
				return nil, report, status.Err
			}
			continue
		}

		status.Offset = len(out)
		status.CompressedLen = len(compressed)
		out = putUint32(out, uint32(len(compressed)))
		out = append(out, compressed...)
		report.add(status)
	}

	report.Produced = len(out)
	return out, report, nil
}
