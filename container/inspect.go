package container

import (
	"encoding/json"
	"io"

	"github.com/dendrascience/chunkpack/version"
)

// ChunkInfo describes one chunk of a container as found on disk.
type ChunkInfo struct {
	Index         int    `json:"index"`
	Offset        int    `json:"offset"`
	CompressedLen int    `json:"compressed_len"`
	Codec         string `json:"codec"`
}

// Summary describes the layout of a container without decompressing it.
type Summary struct {
	ChunkpackVersion string      `json:"chunkpack_version"`
	ContainerSize    int         `json:"container_size"`
	TotalLength      uint32      `json:"total_length"`
	ChunkCount       int         `json:"chunk_count"`
	Chunks           []ChunkInfo `json:"chunks"`
	Stop             string      `json:"stop"`
	// LegacyReadable is false when the original tool's loop bound would
	// stop before the last chunk.
	LegacyReadable bool `json:"legacy_readable"`
}

// Inspect walks the chunk table of data and detects the codec of every
// chunk. Unrecognised chunks are reported with codec "unknown".
func Inspect(data []byte) (Summary, error) {
	total, err := TotalLength(data)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		ChunkpackVersion: version.GetVersion(),
		ContainerSize:    len(data),
		TotalLength:      total,
		Chunks:           []ChunkInfo{},
	}
	lastOffset := -1
	stop, _ := walkChunks(data, total, BoundContainer, func(off int, chunk []byte) {
		name := "unknown"
		if c, ok := DetectCodec(chunk); ok {
			name = c.Name()
		}
		s.Chunks = append(s.Chunks, ChunkInfo{
			Index:         len(s.Chunks),
			Offset:        off,
			CompressedLen: len(chunk),
			Codec:         name,
		})
		lastOffset = off
	})
	s.ChunkCount = len(s.Chunks)
	s.Stop = stop.String()
	s.LegacyReadable = lastOffset < 0 || uint64(lastOffset) < uint64(total)
	return s, nil
}

// Ratio returns the container size as a fraction of the original length.
func (s Summary) Ratio() float64 {
	if s.TotalLength == 0 {
		return 0
	}
	return float64(s.ContainerSize) / float64(s.TotalLength)
}

// WriteJSON encodes the summary to w.
func (s Summary) WriteJSON(w io.Writer) error {
	je := json.NewEncoder(w)
	je.SetIndent("", "  ")
	return je.Encode(s)
}
