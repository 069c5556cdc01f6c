package ports

import "image"

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveResolvedHTML saves the markup after placeholder substitution.
	SaveResolvedHTML(html string) error

	// SaveRawCapture saves the uncropped screenshot including the
	// compensation rows.
	SaveRawCapture(img image.Image) error

	// SaveCroppedFrame saves the final cropped still frame.
	SaveCroppedFrame(img image.Image) error

	// SaveRecordingMeta saves the video invocation metadata as JSON.
	SaveRecordingMeta(data []byte) error
}
