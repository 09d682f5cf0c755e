package cmd

import (
	"fmt"
	"log"

	"github.com/dendrascience/chunkpack/container"
	"github.com/spf13/cobra"
)

// NewDecompressCmd creates and returns the decompress subcommand for the chunkpack CLI.
func NewDecompressCmd() *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		codecName   string
		bestEffort  bool
		legacyBound bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Unpack a chunkpack container into a file",
		Long: `Decompress a chunkpack container back into the original file.

Chunks are read until the end of the container. A zero chunk length ends the
container early. By default the codec of every chunk is detected from its
magic bytes.

A chunk the codec rejects fails the command and the output is left
untouched; with --best-effort the chunk is skipped and the remaining data is
written. --legacy-bound stops reading where the original tool did, which can
drop trailing chunks of poorly compressible files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := container.CodecByName(codecName)
			if err != nil {
				return err
			}
			opts := []container.Option{container.WithCodec(codec)}
			if bestEffort {
				opts = append(opts, container.WithBestEffort())
			}
			if legacyBound {
				opts = append(opts, container.WithLegacyBound())
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Decompressing %s to %s (codec: %s)\n", inputPath, outputPath, codecName)
			}

			report, err := DecompressFile(inputPath, outputPath, opts...)
			if err != nil {
				if report != nil && verbose {
					printChunks(cmd, report)
				}
				return err
			}
			if n := report.Skipped(); n > 0 {
				log.Printf("Warning: skipped %d chunk(s) the codec rejected: %v", n, report.Err())
			}
			if !report.Complete() {
				log.Printf("Warning: wrote %d bytes but the header records %d (stopped at %s)",
					report.Produced, report.TotalLength, report.Stop)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decompressed %s -> %s (%d bytes from %d chunks)\n",
				inputPath, outputPath, report.Produced, len(report.Chunks))
			if verbose {
				printChunks(cmd, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the container to read (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the file to write (required)")
	cmd.Flags().StringVar(&codecName, "codec", container.CodecAuto, "Chunk codec: auto, zlib, zstd or lz4")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "Skip chunks the codec rejects instead of failing")
	cmd.Flags().BoolVar(&legacyBound, "legacy-bound", false, "Stop reading at the original tool's loop bound")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}
