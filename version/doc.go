// Package version provides version information and build metadata for chunkpack.
//
// Version information is taken from compile-time variables (Version, Commit,
// Date) set via -ldflags, falling back to debug.ReadBuildInfo() and finally
// to development defaults:
//
//	-ldflags "-X github.com/dendrascience/chunkpack/version.Version=v1.0.0 -X github.com/dendrascience/chunkpack/version.Commit=abc123"
//
// GetFullVersion is used for the CLI --version flag and GetVersion is
// recorded in container summaries.
package version
