package mp4probe

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestProbeReader_InvalidData(t *testing.T) {
	_, err := ProbeReader(bytes.NewReader([]byte("this is not an mp4 file")))
	if err == nil {
		t.Fatal("expected error for non-MP4 data")
	}
}

func TestProbeFile_MissingFile(t *testing.T) {
	_, err := ProbeFile(filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProbeFile_WebMFallbackArtifact(t *testing.T) {
	// A fallback copy keeps its WebM payload; probing it must fail cleanly
	// so callers can downgrade the check to a warning.
	path := filepath.Join(t.TempDir(), "fallback.webm")
	webmHeader := []byte{0x1a, 0x45, 0xdf, 0xa3, 0x00, 0x00, 0x00, 0x00}
	if err := os.WriteFile(path, webmHeader, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := ProbeFile(path)
	if err == nil {
		t.Fatal("expected error probing a WebM file")
	}
}
