package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/chunkpack/container"
)

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		out     string
		wantErr error
	}{
		{name: "both set", in: "a.bin", out: "a.cpk", wantErr: nil},
		{name: "missing input", in: "", out: "a.cpk", wantErr: ErrMissingPath},
		{name: "missing output", in: "a.bin", out: "", wantErr: ErrMissingPath},
		{name: "same path", in: "a.bin", out: "a.bin", wantErr: ErrSamePath},
		{name: "same path after cleaning", in: "dir/../a.bin", out: "./a.bin", wantErr: ErrSamePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePaths(tt.in, tt.out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validatePaths(%q, %q) = %v, want %v", tt.in, tt.out, err, tt.wantErr)
			}
		})
	}
}

func TestCompressDecompressFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bin")
	packed := filepath.Join(dir, "input.cpk")
	restored := filepath.Join(dir, "restored.bin")

	data := bytes.Repeat([]byte("round trip through the file driver\n"), 70000)
	if err := os.WriteFile(input, data, 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	report, err := CompressFile(input, packed)
	if err != nil {
		t.Fatalf("CompressFile failed: %v", err)
	}
	if report.TotalLength != uint32(len(data)) {
		t.Errorf("report.TotalLength = %d, want %d", report.TotalLength, len(data))
	}

	if _, err := DecompressFile(packed, restored); err != nil {
		t.Fatalf("DecompressFile failed: %v", err)
	}
	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("restored %d bytes, want %d", len(got), len(data))
	}

	assertNoTempFiles(t, dir)
}

func TestCompressFile_Errors(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "subdir")
	os.Mkdir(subdir, 0o755)

	if _, err := CompressFile(filepath.Join(dir, "missing.bin"), filepath.Join(dir, "out.cpk")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input: got %v, want os.ErrNotExist", err)
	}
	if _, err := CompressFile(subdir, filepath.Join(dir, "out.cpk")); !errors.Is(err, ErrExpectedFile) {
		t.Errorf("directory input: got %v, want ErrExpectedFile", err)
	}
	if _, err := CompressFile("", ""); !errors.Is(err, ErrMissingPath) {
		t.Errorf("empty paths: got %v, want ErrMissingPath", err)
	}

	input := filepath.Join(dir, "in.bin")
	os.WriteFile(input, []byte("content"), 0o644)
	if _, err := CompressFile(input, filepath.Join(dir, "nodir", "out.cpk")); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
	assertNoTempFiles(t, dir)
}

func TestDecompressFile_StrictLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	packedPath := filepath.Join(dir, "bad.cpk")
	output := filepath.Join(dir, "out.bin")

	packed, report, err := container.Compress(bytes.Repeat([]byte{'z'}, container.ChunkSize+10))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	// Break the zlib header of the second chunk.
	off := report.Chunks[1].Offset + container.ChunkHeaderSize
	packed[off], packed[off+1] = 0, 0
	os.WriteFile(packedPath, packed, 0o644)
	os.WriteFile(output, []byte("previous contents"), 0o644)

	_, err = DecompressFile(packedPath, output)
	if !errors.Is(err, container.ErrCodecFailure) {
		t.Fatalf("DecompressFile error = %v, want ErrCodecFailure", err)
	}
	got, _ := os.ReadFile(output)
	if string(got) != "previous contents" {
		t.Errorf("output was modified on failure: %d bytes", len(got))
	}

	dreport, err := DecompressFile(packedPath, output, container.WithBestEffort())
	if err != nil {
		t.Fatalf("best-effort DecompressFile failed: %v", err)
	}
	if dreport.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", dreport.Skipped())
	}
	got, _ = os.ReadFile(output)
	if len(got) != container.ChunkSize {
		t.Errorf("best-effort output = %d bytes, want %d", len(got), container.ChunkSize)
	}
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target")
	os.WriteFile(path, []byte("old"), 0o644)

	if err := writeFileAtomic(path, []byte("new")); err != nil {
		t.Fatalf("writeFileAtomic failed: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("target = %q, want %q", got, "new")
	}
	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestCompressFile_InputTooLarge(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "huge.bin")
	f, err := os.Create(input)
	if err != nil {
		t.Fatalf("Failed to create input: %v", err)
	}
	// Sparse file: nothing is read before the size check.
	if err := f.Truncate(container.MaxTotalLength + 1); err != nil {
		f.Close()
		t.Skipf("filesystem does not support large sparse files: %v", err)
	}
	f.Close()

	_, err = CompressFile(input, filepath.Join(dir, "huge.cpk"))
	if !errors.Is(err, container.ErrInputTooLarge) {
		t.Errorf("CompressFile error = %v, want ErrInputTooLarge", err)
	}
	assertNoTempFiles(t, dir)
}
