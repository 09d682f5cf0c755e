package cmd

import (
	"fmt"

	"github.com/dendrascience/chunkpack/container"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the chunkpack CLI.
// It lists the chunk table of a container without decompressing it.
func NewInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect CONTAINER",
		Short: "Show the chunk table of a container",
		Long: `Show the header and chunk table of a chunkpack container.

Each chunk is listed with its offset, compressed size and the codec detected
from its magic bytes. The command also reports whether the original tool's
loop bound would reach the last chunk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			summary, err := container.Inspect(data)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}
			if asJSON {
				return summary.WriteJSON(cmd.OutOrStdout())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Container: %s\n", args[0])
			fmt.Fprintf(out, "  Original length: %d bytes\n", summary.TotalLength)
			fmt.Fprintf(out, "  Container size:  %d bytes (%.1f%%)\n", summary.ContainerSize, summary.Ratio()*100)
			fmt.Fprintf(out, "  Chunks:          %d\n", summary.ChunkCount)
			fmt.Fprintf(out, "  Stopped at:      %s\n", summary.Stop)
			fmt.Fprintf(out, "  Legacy readable: %v\n", summary.LegacyReadable)
			for _, c := range summary.Chunks {
				fmt.Fprintf(out, "  %4d  offset=%-10d size=%-8d %s\n", c.Index, c.Offset, c.CompressedLen, c.Codec)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}
