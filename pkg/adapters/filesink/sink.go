// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/framecast/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file-based sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveResolvedHTML saves the markup after placeholder substitution.
func (s *Sink) SaveResolvedHTML(html string) error {
	path := filepath.Join(s.baseDir, "resolved.html")
	return s.fs.WriteFile(path, []byte(html))
}

// SaveRawCapture saves the uncropped screenshot.
func (s *Sink) SaveRawCapture(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode raw capture: %w", err)
	}
	path := filepath.Join(s.baseDir, "capture-raw.png")
	return s.fs.WriteFile(path, data)
}

// SaveCroppedFrame saves the final cropped still frame.
func (s *Sink) SaveCroppedFrame(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode cropped frame: %w", err)
	}
	path := filepath.Join(s.baseDir, "frame.png")
	return s.fs.WriteFile(path, data)
}

// SaveRecordingMeta saves the video invocation metadata as JSON.
func (s *Sink) SaveRecordingMeta(data []byte) error {
	path := filepath.Join(s.baseDir, "recording.json")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
