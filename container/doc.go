// Package container implements the chunkpack container format.
//
// A container is a 4-byte little-endian header holding the length of the
// original input, followed by a sequence of independently compressed chunks.
// Each chunk is prefixed with its compressed length as a 4-byte little-endian
// integer and covers at most ChunkSize bytes of original data:
//
//	total_length  uint32 LE
//	chunk_length  uint32 LE  \
//	chunk_data    []byte     / repeated until end of container
//
// There is no trailer, checksum or chunk count. The number of chunks is
// implied by the container extent.
//
// Key Components:
//
// Compression and Decompression:
//   - Compress splits input into ChunkSize slices and compresses each one
//   - Decompress walks the chunk table and concatenates decompressed chunks
//   - Both return a Report with the outcome of every chunk
//
// Codecs:
//   - Zlib is the default and is interoperable with existing containers
//   - Zstd and LZ4 are available for containers read back by this tool
//   - DetectCodec identifies a chunk's codec from its leading magic bytes
//
// Failure Policy:
//   - Strict mode (default) turns any chunk failure into an error
//   - Best-effort mode skips failed chunks and reports them in the Report
//
// Inspection:
//   - Inspect lists the chunk table without decompressing anything
package container
