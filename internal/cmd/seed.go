package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/chunkpack/container"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SeedKinds lists the sample inputs written by the seed command.
var SeedKinds = []string{"text", "zeros", "random", "mixed"}

// NewSeedCmd creates and returns the seed subcommand for the chunkpack CLI.
// It generates sample inputs of differing compressibility.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		size       int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample inputs for exercising the codecs",
		Long: `Generate sample input files for testing chunkpack.

For every requested file one input of each kind is written:
  - text:   UUID lines drawn from a small pool (highly compressible)
  - zeros:  a single run of zero bytes
  - random: cryptographically random bytes (incompressible)
  - mixed:  alternating 64 KiB blocks of text and random bytes

The default size spans three chunks with a short tail so that chunk
boundaries are exercised.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := Seed(outputPath, fileCount, size)
			if err != nil {
				return err
			}
			if verbose {
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d files of %d bytes in %s\n", len(paths), size, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1, "Number of files to generate per kind")
	cmd.Flags().IntVarP(&size, "size", "s", 2*container.ChunkSize+17, "Size of each file in bytes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// Seed writes count files of every kind in SeedKinds into dir and returns
// their paths.
func Seed(dir string, count, size int) ([]string, error) {
	if count < 0 || size < 0 {
		return nil, fmt.Errorf("seed: count and size must not be negative")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	var paths []string
	for i := range count {
		for _, kind := range SeedKinds {
			data, err := seedData(kind, size, uuidPool)
			if err != nil {
				return paths, err
			}
			p := filepath.Join(dir, fmt.Sprintf("%s-%03d.bin", kind, i))
			if err := os.WriteFile(p, data, 0o644); err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func seedData(kind string, size int, pool []string) ([]byte, error) {
	switch kind {
	case "text":
		return seedText(size, pool)
	case "zeros":
		return make([]byte, size), nil
	case "random":
		b := make([]byte, size)
		_, err := rand.Read(b)
		return b, err
	case "mixed":
		const block = 64 << 10
		b := make([]byte, 0, size)
		for len(b) < size {
			n := min(block, size-len(b))
			var part []byte
			var err error
			if (len(b)/block)%2 == 0 {
				part, err = seedText(n, pool)
			} else {
				part = make([]byte, n)
				_, err = rand.Read(part)
			}
			if err != nil {
				return nil, err
			}
			b = append(b, part...)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("seed: unknown kind %q", kind)
	}
}

func seedText(size int, pool []string) ([]byte, error) {
	var sb strings.Builder
	sb.Grow(size + 37)
	for sb.Len() < size {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
		if err != nil {
			return nil, err
		}
		sb.WriteString(pool[idx.Int64()])
		sb.WriteByte('\n')
	}
	return []byte(sb.String()[:size]), nil
}
