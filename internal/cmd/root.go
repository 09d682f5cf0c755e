package cmd

import (
	"github.com/dendrascience/chunkpack/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the chunkpack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chunkpack",
		Short: "chunkpack - compress single files into a chunked zlib container",
		Long: `chunkpack compresses and decompresses single files using a chunked container.

The input is split into 1 MiB slices that are compressed independently with
zlib and stored behind 4-byte little-endian length prefixes, after a header
holding the original file length. Containers written with the default codec
are compatible with the original MUA3 compressor tool.

Use subcommands to perform different operations:
  - compress: Pack a file into a container
  - decompress: Unpack a container into a file
  - inspect: Show the chunk table of a container
  - verify: Check that a file or container round-trips cleanly
  - seed: Generate sample inputs`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupContainer := "container"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupContainer,
		Title: "Container Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compressCmd := NewCompressCmd()
	decompressCmd := NewDecompressCmd()
	inspectCmd := NewInspectCmd()
	verifyCmd := NewVerifyCmd()
	seedCmd := NewSeedCmd()

	compressCmd.GroupID = groupContainer
	decompressCmd.GroupID = groupContainer
	inspectCmd.GroupID = groupUtilities
	verifyCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
