package container

import (
	"errors"
	"testing"
)

func TestCodecByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantNil  bool
		wantErr  error
	}{
		{name: "zlib", wantName: "zlib"},
		{name: "zstd", wantName: "zstd"},
		{name: "lz4", wantName: "lz4"},
		{name: "auto", wantNil: true},
		{name: "gzip", wantErr: ErrUnknownCodec},
		{name: "", wantErr: ErrUnknownCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CodecByName(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CodecByName(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if tt.wantNil {
				if c != nil {
					t.Errorf("CodecByName(%q) = %v, want nil", tt.name, c)
				}
				return
			}
			if c.Name() != tt.wantName {
				t.Errorf("CodecByName(%q).Name() = %q", tt.name, c.Name())
			}
		})
	}
}

func TestDetectCodec(t *testing.T) {
	sample := []byte("detect me detect me detect me")
	for _, codec := range []Codec{Zlib, Zstd, LZ4} {
		t.Run(codec.Name(), func(t *testing.T) {
			chunk, err := codec.Compress(sample)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			got, ok := DetectCodec(chunk)
			if !ok {
				t.Fatalf("DetectCodec() found nothing for %s chunk % x", codec.Name(), chunk[:4])
			}
			if got.Name() != codec.Name() {
				t.Errorf("DetectCodec() = %s, want %s", got.Name(), codec.Name())
			}
		})
	}

	for _, junk := range [][]byte{nil, {0x00}, {0x00, 0x00, 0x00, 0x00}, []byte("plain text")} {
		if c, ok := DetectCodec(junk); ok {
			t.Errorf("DetectCodec(%q) = %s, want no match", junk, c.Name())
		}
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	garbage := []byte{0x78, 0x9c, 0xff, 0xff, 0xff, 0xff}
	if _, err := Zlib.Decompress(garbage); err == nil {
		t.Error("Zlib.Decompress(garbage) succeeded")
	}
	if _, err := Zstd.Decompress([]byte("not zstd")); err == nil {
		t.Error("Zstd.Decompress(garbage) succeeded")
	}
}

func TestZstd_SharedCoders(t *testing.T) {
	enc1, err := zstdEncoder()
	if err != nil {
		t.Fatalf("zstd encoder: %v", err)
	}
	enc2, _ := zstdEncoder()
	if enc1 != enc2 {
		t.Error("zstd encoder rebuilt on second use")
	}
	dec, err := zstdDecoder()
	if err != nil || dec == nil {
		t.Fatalf("zstd decoder = %v, %v", dec, err)
	}

	chunk, err := Zstd.Compress([]byte("shared coders"))
	if err != nil {
		t.Fatalf("Zstd.Compress() error = %v", err)
	}
	got, err := Zstd.Decompress(chunk)
	if err != nil || string(got) != "shared coders" {
		t.Errorf("Zstd.Decompress() = %q, %v", got, err)
	}
}
