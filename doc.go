// Package main provides the chunkpack command-line interface.
//
// chunkpack compresses single files into a chunked container: a 4-byte
// original-length header followed by independently zlib-compressed 1 MiB
// chunks, each behind a 4-byte length prefix.
//
// The binary supports the following subcommands:
//   - compress: Pack a file into a container
//   - decompress: Unpack a container into a file
//   - inspect: Show the chunk table of a container
//   - verify: Check that a file or container round-trips cleanly
//   - seed: Generate sample inputs
package main
