package container

import (
	"errors"
	"fmt"
)

// Decompress reconstructs the original data from a container.
//
// Chunks are read in order and decompressed independently. A zero
// chunk_length ends the container early and is not an error. A chunk the
// codec rejects is left out of the output and recorded in the Report; the
// remaining chunks are still decompressed.
//
// In strict mode the output is returned together with an error wrapping
// ErrCodecFailure (or ErrTruncatedChunk) so the caller can decide whether a
// partial result is acceptable. With WithBestEffort those conditions are
// only reported.
//
// When no codec is configured each chunk's codec is detected from its
// magic bytes, falling back to Zlib.
func Decompress(data []byte, opts ...Option) ([]byte, *Report, error) {
	o := buildOptions(opts)
	total, err := TotalLength(data)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{TotalLength: total}
	var out []byte
	stop, offset := walkChunks(data, total, o.bound, func(off int, chunk []byte) {
		status := ChunkStatus{Offset: off, CompressedLen: len(chunk)}
		codec := o.codec
		if codec == nil {
			if detected, ok := DetectCodec(chunk); ok {
				codec = detected
			} else {
				codec = Zlib
			}
		}
		decoded, err := codec.Decompress(chunk)
		if err != nil {
			status.Err = &ChunkError{Index: len(report.Chunks), Op: "decompress", Err: err}
		} else {
			status.OriginalLen = len(decoded)
			out = append(out, decoded...)
		}
		report.add(status)
	})
	report.Stop = stop
	report.Produced = len(out)

	if o.bestEffort {
		return out, report, nil
	}
	var errs []error
	if stop == StopTruncated {
		errs = append(errs, fmt.Errorf("%w at offset %d", ErrTruncatedChunk, offset))
	}
	if err := report.Err(); err != nil {
		errs = append(errs, err)
	}
	return out, report, errors.Join(errs...)
}
