package container

import "errors"

// ChunkStatus is the outcome of processing one chunk.
type ChunkStatus struct {
	Index         int   // position in processing order
	Offset        int   // container offset of the chunk_length field, -1 if never written
	CompressedLen int   // bytes of compressed data
	OriginalLen   int   // bytes of original data, 0 if unknown
	Err           error // non-nil when the codec rejected the chunk
}

// OK reports whether the chunk was processed successfully.
func (s ChunkStatus) OK() bool {
	return s.Err == nil
}

// StopReason records why decompression stopped reading chunks.
type StopReason int

const (
	StopNone      StopReason = iota
	StopEOF                  // the container ended on a chunk boundary
	StopBound                // the legacy loop bound was reached
	StopSentinel             // a zero chunk_length was read
	StopTruncated            // the container ended inside a chunk or chunk header
)

func (r StopReason) String() string {
	switch r {
	case StopEOF:
		return "end of container"
	case StopBound:
		return "legacy bound reached"
	case StopSentinel:
		return "zero-length chunk"
	case StopTruncated:
		return "truncated container"
	default:
		return "none"
	}
}

// Report describes the outcome of a Compress or Decompress call.
type Report struct {
	TotalLength uint32 // header value
	Produced    int    // bytes of output
	Chunks      []ChunkStatus
	Stop        StopReason // decompression only
}

func (r *Report) add(s ChunkStatus) {
	s.Index = len(r.Chunks)
	r.Chunks = append(r.Chunks, s)
}

// Failed returns the chunks the codec rejected.
func (r *Report) Failed() []ChunkStatus {
	var failed []ChunkStatus
	for _, c := range r.Chunks {
		if !c.OK() {
			failed = append(failed, c)
		}
	}
	return failed
}

// Skipped returns the number of chunks left out of the output.
func (r *Report) Skipped() int {
	return len(r.Failed())
}

// Err joins the errors of all failed chunks. It returns nil when every
// chunk succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, c := range r.Chunks {
		if c.Err != nil {
			errs = append(errs, c.Err)
		}
	}
	return errors.Join(errs...)
}

// Complete reports whether decompression produced exactly the number of
// bytes the header promised.
func (r *Report) Complete() bool {
	return uint64(r.Produced) == uint64(r.TotalLength)
}
