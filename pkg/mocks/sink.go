package mocks

import (
	"image"

	"github.com/user/framecast/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that records what was
// saved.
type Sink struct {
	EnabledValue bool

	ResolvedHTML  []string
	RawCaptures   []image.Image
	CroppedFrames []image.Image
	RecordingMeta [][]byte

	SaveErr error
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveResolvedHTML(html string) error {
	m.ResolvedHTML = append(m.ResolvedHTML, html)
	return m.SaveErr
}

func (m *Sink) SaveRawCapture(img image.Image) error {
	m.RawCaptures = append(m.RawCaptures, img)
	return m.SaveErr
}

func (m *Sink) SaveCroppedFrame(img image.Image) error {
	m.CroppedFrames = append(m.CroppedFrames, img)
	return m.SaveErr
}

func (m *Sink) SaveRecordingMeta(data []byte) error {
	m.RecordingMeta = append(m.RecordingMeta, data)
	return m.SaveErr
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
