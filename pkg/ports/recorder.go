package ports

import (
	"context"
	"time"
)

// SessionState tracks the progress of a recording session.
type SessionState int

const (
	StateInit SessionState = iota
	StateBrowserLaunched
	StateContextOpened
	StatePageLoaded
	StateRecording
	StateClosed
	StateArtifactLocated
	StateDone
	StateFailed
)

// String returns the state name for logging.
func (s SessionState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateBrowserLaunched:
		return "browser-launched"
	case StateContextOpened:
		return "context-opened"
	case StatePageLoaded:
		return "page-loaded"
	case StateRecording:
		return "recording"
	case StateClosed:
		return "closed"
	case StateArtifactLocated:
		return "artifact-located"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RecordRequest describes one timed recording of a rendered HTML page.
type RecordRequest struct {
	FileURL  string        // file URL of the resolved HTML document
	Width    int           // recording size in pixels, exact output geometry
	Height   int
	Duration time.Duration // how long to hold the session open
	VideoDir string        // directory the session writes its container file into

	// SettleDelay is waited after network idle before recording time starts,
	// to let embedded fonts and animations initialize.
	SettleDelay time.Duration

	// PostLoadScript is evaluated once after the page settles. Best-effort;
	// evaluation errors do not fail the recording.
	PostLoadScript string
}

// VideoRecorder records a page into a container-native video file.
//
// Each Record call owns a full browser lifecycle: launch, open a recording
// context, navigate, hold for the requested duration, close. Closing the
// recording context is what finalizes the container file. Implementations
// return the artifact path reported by the session; callers fall back to
// scanning VideoDir when the returned path is empty.
type VideoRecorder interface {
	Record(ctx context.Context, req RecordRequest) (artifactPath string, err error)

	// ContainerExt returns the file extension of the container format the
	// session produces, including the dot (e.g. ".webm").
	ContainerExt() string
}
