package qr

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWritePNG verifies a PNG lands on disk.
func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.png")

	err := WritePNG("https://store.example/x-tams/v6.0/sources/0a0b", path)
	if err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

// TestWritePNGEmptyContent verifies empty content is rejected up front.
func TestWritePNGEmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := WritePNG("", path); err == nil {
		t.Error("WritePNG(\"\") returned nil error")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("file created for empty content")
	}
}
