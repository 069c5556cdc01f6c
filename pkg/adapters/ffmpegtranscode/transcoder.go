// Package ffmpegtranscode converts recorded container files to MP4 using an
// external ffmpeg process, with a copy-through fallback when the encoder is
// unavailable or fails.
package ffmpegtranscode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/user/framecast/pkg/ports"
)

// Transcoder implements ports.Transcoder by invoking ffmpeg.
type Transcoder struct {
	logger ports.Logger

	// FFmpegPath overrides encoder discovery. Empty means: FFMPEG_PATH
	// environment variable, then PATH, then common install locations.
	FFmpegPath string

	// CRF is the constant-rate-factor passed to libx264. Zero means the
	// default of 23.
	CRF int
}

// New creates a Transcoder.
func New(logger ports.Logger) *Transcoder {
	return &Transcoder{logger: logger.WithComponent("transcode")}
}

// Transcode re-encodes inputPath into an MP4 at outputPath pinned to fps.
// On any encoder failure the original file is copied unchanged to a sibling
// of outputPath keeping the input's extension, and that path is returned.
// The returned path's extension is authoritative.
func (t *Transcoder) Transcode(ctx context.Context, inputPath, outputPath string, fps float64) (string, error) {
	ffmpegPath, err := FindFFmpeg(t.FFmpegPath)
	if err != nil {
		t.logger.Warn("Encoder not found, keeping original container: %s", err)
		return t.fallbackCopy(inputPath, outputPath)
	}

	crf := t.CRF
	if crf <= 0 {
		crf = 23
	}

	args := []string{
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", fmt.Sprintf("%d", crf),
		"-r", fmt.Sprintf("%g", fps),
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outputPath,
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.logger.Warn("Transcode failed, keeping original container: %s", err)
		t.logger.Debug("ffmpeg stderr: %s", stderr.String())
		return t.fallbackCopy(inputPath, outputPath)
	}

	t.logger.Debug("Transcoded %s -> %s", inputPath, outputPath)
	return outputPath, nil
}

// fallbackCopy copies the recorded file unchanged next to the requested
// output, keeping the original container's extension.
func (t *Transcoder) fallbackCopy(inputPath, outputPath string) (string, error) {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	fallbackPath := base + ext

	if err := copyFile(inputPath, fallbackPath); err != nil {
		return "", fmt.Errorf("fallback copy: %w", err)
	}
	return fallbackPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// Ensure Transcoder implements ports.Transcoder
var _ ports.Transcoder = (*Transcoder)(nil)
