package pipeline

import (
	"image"
	"time"

	"github.com/user/framecast/pkg/ports"
)

// Geometry is the output size of a capture surface in pixels.
type Geometry struct {
	Width  int
	Height int
}

// =============================================================================
// Still-Frame Stage Types
// =============================================================================

// FrameInput contains parameters for a still-frame capture.
type FrameInput struct {
	HTML         string   // resolved markup
	Geometry     Geometry // requested output size
	HeightOffset int      // truncation compensation rows added to the capture surface
	Workspace    string   // invocation-private temp directory
	OutputPath   string   // where the cropped PNG is persisted
}

// FrameResult contains the captured still frame.
type FrameResult struct {
	Image image.Image // exactly Geometry.Width x Geometry.Height
	Path  string
}

// =============================================================================
// Video Record Stage Types
// =============================================================================

// RecordInput contains parameters for a timed video recording.
type RecordInput struct {
	HTML        string
	Geometry    Geometry
	Duration    time.Duration
	Workspace   string
	SettleDelay time.Duration

	// Animation speed multipliers injected after page load. 1.0 leaves the
	// template's declared animation durations untouched.
	RotateSpeed float64
	ScaleSpeed  float64
	ScrollSpeed float64
}

// RecordResult contains the located recording artifact.
type RecordResult struct {
	ArtifactPath string        // container file produced by the session
	Elapsed      time.Duration // wall time spent inside the capture worker

	// FinalState is the last session state the stage observed:
	// StateDone on success, StateFailed otherwise.
	FinalState ports.SessionState
}

// =============================================================================
// Transcode Stage Types
// =============================================================================

// TranscodeInput contains parameters for container transcoding.
type TranscodeInput struct {
	InputPath  string
	OutputPath string // requested delivery path; final extension may differ
	FPS        float64
}

// TranscodeResult contains the delivered video file.
type TranscodeResult struct {
	FinalPath string // extension is authoritative, may be the fallback copy
	FellBack  bool
}

// =============================================================================
// Relocate Stage Types
// =============================================================================

// RelocateInput contains parameters for artifact relocation.
type RelocateInput struct {
	SourcePath string
	TargetDir  string
	BaseName   string // caller-chosen stem, without extension
}

// RelocateResult contains the durable artifact location.
type RelocateResult struct {
	FinalPath string // may be SourcePath when the target was unwritable
	Relocated bool
}
