package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dendrascience/chunkpack/container"
	"github.com/google/uuid"
)

// CompressFile packs the file at inPath into a container at outPath.
// The output is only replaced when compression succeeds.
func CompressFile(inPath, outPath string, opts ...container.Option) (*container.Report, error) {
	if err := validatePaths(inPath, outPath); err != nil {
		return nil, err
	}
	if err := checkInputSize(inPath); err != nil {
		return nil, err
	}
	src, err := readFile(inPath)
	if err != nil {
		return nil, err
	}
	packed, report, err := container.Compress(src, opts...)
	if err != nil {
		return report, fmt.Errorf("compress %s: %w", inPath, err)
	}
	if err := writeFileAtomic(outPath, packed); err != nil {
		return report, err
	}
	return report, nil
}

// DecompressFile unpacks the container at inPath into outPath.
// In strict mode a chunk failure leaves outPath untouched.
func DecompressFile(inPath, outPath string, opts ...container.Option) (*container.Report, error) {
	if err := validatePaths(inPath, outPath); err != nil {
		return nil, err
	}
	data, err := readFile(inPath)
	if err != nil {
		return nil, err
	}
	out, report, err := container.Decompress(data, opts...)
	if err != nil {
		return report, fmt.Errorf("decompress %s: %w", inPath, err)
	}
	if err := writeFileAtomic(outPath, out); err != nil {
		return report, err
	}
	return report, nil
}

func validatePaths(inPath, outPath string) error {
	if inPath == "" || outPath == "" {
		return ErrMissingPath
	}
	absIn, err := filepath.Abs(inPath)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return err
	}
	if absIn == absOut {
		return fmt.Errorf("%w: %s", ErrSamePath, inPath)
	}
	return nil
}

// checkInputSize refuses files the container header cannot describe.
// Containers themselves may exceed this size and are not checked.
func checkInputSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > container.MaxTotalLength {
		return fmt.Errorf("%s: %w", path, container.ErrInputTooLarge)
	}
	return nil
}

// readFile reads a whole regular file.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrExpectedFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path once it has been synced.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}
