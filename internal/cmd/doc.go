// Package cmd provides the command-line interface implementation for chunkpack.
//
// It uses the Cobra library for command structure and Fang for styling.
// The commands are:
//   - compress: pack a file into a chunkpack container
//   - decompress: unpack a container back into the original file
//   - inspect: list the chunk table of a container
//   - verify: check that a file or container survives a round trip
//   - seed: generate sample inputs for exercising the codecs
//
// The file driver in driver.go owns all file handling: path validation,
// reading the input, and writing the output through a temporary file that
// is renamed into place only once the operation has succeeded.
package cmd
