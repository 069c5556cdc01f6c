package ffmpegtranscode

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framecast/pkg/adapters/logger"
)

func TestTranscode_FallbackWhenEncoderMissing(t *testing.T) {
	tmpDir := t.TempDir()

	input := filepath.Join(tmpDir, "recording.webm")
	if err := os.WriteFile(input, []byte("not really a video"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	tr := New(logger.NewNoop())
	tr.FFmpegPath = filepath.Join(tmpDir, "no-such-ffmpeg")

	final, err := tr.Transcode(context.Background(), input, filepath.Join(tmpDir, "out.mp4"), 30)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}

	// The fallback keeps the original container's extension.
	if filepath.Ext(final) != ".webm" {
		t.Errorf("expected .webm fallback path, got %s", final)
	}
	if _, err := os.Stat(final); err != nil {
		t.Errorf("expected fallback file to exist: %v", err)
	}

	data, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("read fallback: %v", err)
	}
	if string(data) != "not really a video" {
		t.Error("fallback copy must be byte-identical to the input")
	}
}

func TestTranscode_FallbackWhenEncodingFails(t *testing.T) {
	if !IsFFmpegAvailable() {
		t.Skip("ffmpeg not installed")
	}

	tmpDir := t.TempDir()

	// Garbage input makes ffmpeg exit nonzero.
	input := filepath.Join(tmpDir, "broken.webm")
	if err := os.WriteFile(input, []byte("garbage"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	tr := New(logger.NewNoop())
	final, err := tr.Transcode(context.Background(), input, filepath.Join(tmpDir, "out.mp4"), 24)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if _, statErr := os.Stat(final); statErr != nil {
		t.Errorf("expected returned path to exist: %v", statErr)
	}
	if filepath.Ext(final) != ".webm" {
		t.Errorf("expected original extension on fallback, got %s", final)
	}
}

func TestFindFFmpeg_ExplicitPathMissing(t *testing.T) {
	_, err := FindFFmpeg("/definitely/not/here/ffmpeg")
	if err == nil {
		t.Fatal("expected error for missing explicit path")
	}
}

func TestFindFFmpeg_EnvOverride(t *testing.T) {
	original := os.Getenv("FFMPEG_PATH")
	defer os.Setenv("FFMPEG_PATH", original)

	// Point FFMPEG_PATH at an existing file; any file works for discovery.
	tmpFile := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(tmpFile, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	os.Setenv("FFMPEG_PATH", tmpFile)

	path, err := FindFFmpeg("")
	if err != nil {
		t.Fatalf("expected FFMPEG_PATH to resolve: %v", err)
	}
	if path != tmpFile {
		t.Errorf("expected %s, got %s", tmpFile, path)
	}
}
