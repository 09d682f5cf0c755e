package cmd

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dendrascience/chunkpack/container"
	"github.com/spf13/cobra"
)

// VerifyResult holds the lengths and digests compared by the verify command.
type VerifyResult struct {
	Length          int    // input length, or the header's total_length for a container
	RoundTripLen    int    // bytes produced by decompression
	Digest          uint64 // xxhash64 of the input; zero for a container
	RoundTripDigest uint64 // xxhash64 of the decompressed output
	Chunks          int
	// Container is set when an existing container was checked. The format
	// carries no digest of the original data, so only lengths are compared.
	Container bool
}

// OK reports whether the round trip reproduced the input exactly, or for a
// container whether it decoded to the length its header records.
func (v VerifyResult) OK() bool {
	if v.Container {
		return v.Length == v.RoundTripLen
	}
	return v.Length == v.RoundTripLen && v.Digest == v.RoundTripDigest
}

// VerifyRoundTrip compresses data with opts and decompresses the result,
// comparing xxhash64 digests of the input and the output.
func VerifyRoundTrip(data []byte, opts ...container.Option) (VerifyResult, error) {
	res := VerifyResult{Length: len(data), Digest: xxhash.Sum64(data)}
	packed, report, err := container.Compress(data, opts...)
	if err != nil {
		return res, err
	}
	res.Chunks = len(report.Chunks)
	out, _, err := container.Decompress(packed, opts...)
	if err != nil {
		return res, err
	}
	res.RoundTripLen = len(out)
	res.RoundTripDigest = xxhash.Sum64(out)
	return res, nil
}

// VerifyContainer decompresses a container and checks that it yields the
// number of bytes its header records.
func VerifyContainer(data []byte, opts ...container.Option) (VerifyResult, error) {
	out, report, err := container.Decompress(data, opts...)
	if err != nil {
		return VerifyResult{}, err
	}
	return VerifyResult{
		Length:          int(report.TotalLength),
		RoundTripLen:    len(out),
		RoundTripDigest: xxhash.Sum64(out),
		Chunks:          len(report.Chunks),
		Container:       true,
	}, nil
}

// NewVerifyCmd creates and returns the verify subcommand for the chunkpack CLI.
func NewVerifyCmd() *cobra.Command {
	var (
		codecName   string
		isContainer bool
		legacyBound bool
	)

	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that a file or container round-trips cleanly",
		Long: `Verify compression without writing any files.

For a plain file the contents are compressed and decompressed in memory and
the xxhash64 digests of input and output are compared.

With --container the file is treated as an existing container: it is
decompressed and the output length is checked against the header. Use
--legacy-bound to see whether the original tool would read it completely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := container.CodecByName(codecName)
			if err != nil {
				return err
			}
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			opts := []container.Option{container.WithCodec(codec)}
			if legacyBound {
				opts = append(opts, container.WithLegacyBound())
			}

			var res VerifyResult
			if isContainer {
				res, err = VerifyContainer(data, opts...)
			} else {
				if codec == nil {
					opts[0] = container.WithCodec(container.Zlib)
				}
				res, err = VerifyRoundTrip(data, opts...)
			}
			if err != nil {
				return fmt.Errorf("verify %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", args[0])
			fmt.Fprintf(out, "  Chunks:   %d\n", res.Chunks)
			if res.Container {
				fmt.Fprintf(out, "  Header:   %d bytes\n", res.Length)
				fmt.Fprintf(out, "  Decoded:  %d bytes, xxhash %016x\n", res.RoundTripLen, res.RoundTripDigest)
			} else {
				fmt.Fprintf(out, "  Expected: %d bytes, xxhash %016x\n", res.Length, res.Digest)
				fmt.Fprintf(out, "  Got:      %d bytes, xxhash %016x\n", res.RoundTripLen, res.RoundTripDigest)
			}
			if !res.OK() {
				return ErrVerifyMismatch
			}
			fmt.Fprintln(out, "  OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&codecName, "codec", container.CodecAuto, "Chunk codec: auto, zlib, zstd or lz4 (auto compresses with zlib)")
	cmd.Flags().BoolVar(&isContainer, "container", false, "Treat FILE as an existing container")
	cmd.Flags().BoolVar(&legacyBound, "legacy-bound", false, "Read with the original tool's loop bound")

	return cmd
}
