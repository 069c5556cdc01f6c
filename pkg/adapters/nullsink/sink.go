// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/framecast/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveResolvedHTML discards the markup.
func (s *Sink) SaveResolvedHTML(html string) error {
	return nil
}

// SaveRawCapture discards the screenshot.
func (s *Sink) SaveRawCapture(img image.Image) error {
	return nil
}

// SaveCroppedFrame discards the frame.
func (s *Sink) SaveCroppedFrame(img image.Image) error {
	return nil
}

// SaveRecordingMeta discards the metadata.
func (s *Sink) SaveRecordingMeta(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
