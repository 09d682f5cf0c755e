package container

import (
	"errors"
	"fmt"
)

// Sentinel errors for package container.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Codec errors
	ErrCodecFailure = errors.New("chunk codec failure")
	ErrUnknownCodec = errors.New("unknown codec")
	ErrEmptyChunk   = errors.New("codec produced an empty chunk")

	// Format errors
	ErrInputTooLarge   = errors.New("input exceeds maximum container length")
	ErrTruncatedHeader = errors.New("container shorter than its header")
	ErrTruncatedChunk  = errors.New("container ends inside a chunk")
)

// ChunkError reports a codec failure on a single chunk.
type ChunkError struct {
	Index int    // position of the chunk in the container
	Op    string // "compress" or "decompress"
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("%s chunk %d: %v", e.Op, e.Index, e.Err)
}

func (e *ChunkError) Unwrap() []error {
	return []error{ErrCodecFailure, e.Err}
}
