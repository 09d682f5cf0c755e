package container

// walkChunks visits every chunk of data in order, starting after the
// header, until bound says to stop. visit receives the offset of the
// chunk_length field and the compressed bytes.
func walkChunks(data []byte, total uint32, bound Bound, visit func(offset int, chunk []byte)) (stop StopReason, offset int) {
	offset = HeaderSize
	for {
		if bound == BoundLegacy && uint64(offset) >= uint64(total) {
			return StopBound, offset
		}
		if offset >= len(data) {
			return StopEOF, offset
		}

		n, ok := readUint32(data, offset)
		if !ok {
			return StopTruncated, offset
		}
		if n == 0 {
			return StopSentinel, offset
		}
		start := offset + ChunkHeaderSize
		if uint64(n) > uint64(len(data)-start) {
			return StopTruncated, offset
		}

		visit(offset, data[start:start+int(n)])
		offset = start + int(n)
	}
}
