package cmd

import (
	"fmt"
	"log"

	"github.com/dendrascience/chunkpack/container"
	"github.com/spf13/cobra"
)

// NewCompressCmd creates and returns the compress subcommand for the chunkpack CLI.
func NewCompressCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		codecName  string
		bestEffort bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Pack a file into a chunkpack container",
		Long: `Compress a single file into a chunkpack container.

The file is read whole, split into 1 MiB chunks and each chunk is compressed
on its own. Only the zlib codec produces containers that other tools can read.

By default a codec failure aborts the command and leaves the output
untouched. With --best-effort the failed chunk is left out of the container,
as the original tool did, and a warning is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := container.CodecByName(codecName)
			if err != nil {
				return err
			}
			if codec == nil {
				return ErrAutoCompress
			}
			opts := []container.Option{container.WithCodec(codec)}
			if bestEffort {
				opts = append(opts, container.WithBestEffort())
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Compressing %s to %s with %s\n", inputPath, outputPath, codec.Name())
			}

			report, err := CompressFile(inputPath, outputPath, opts...)
			if err != nil {
				return err
			}
			skipped := report.Skipped()
			if skipped > 0 {
				log.Printf("Warning: dropped %d chunk(s) the codec rejected: %v", skipped, report.Err())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Compressed %s -> %s (%d bytes -> %d bytes, %d chunks)\n",
				inputPath, outputPath, report.TotalLength, report.Produced, len(report.Chunks)-skipped)
			if verbose {
				printChunks(cmd, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the file to compress (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the container to write (required)")
	cmd.Flags().StringVar(&codecName, "codec", container.CodecZlib, "Chunk codec: zlib, zstd or lz4")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "Drop chunks the codec rejects instead of failing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func printChunks(cmd *cobra.Command, report *container.Report) {
	for _, c := range report.Chunks {
		status := "ok"
		if !c.OK() {
			status = c.Err.Error()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  chunk %d: offset=%d compressed=%d original=%d %s\n",
			c.Index, c.Offset, c.CompressedLen, c.OriginalLen, status)
	}
}
