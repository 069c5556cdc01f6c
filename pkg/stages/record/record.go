// Package record implements the timed video recording stage.
package record

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/ports"
)

// ErrArtifactNotFound is returned when the session reports no artifact and
// the workspace scan finds none either.
var ErrArtifactNotFound = errors.New("recording artifact not found")

// graceDelay is waited after the session closes before resolving the
// artifact, so the browser can finish flushing the container file.
const graceDelay = 300 * time.Millisecond

// Stage records resolved HTML into a container-native video file.
type Stage struct {
	recorder ports.VideoRecorder
	fs       ports.FileSystem
	logger   ports.Logger
}

// New creates a new record stage.
func New(recorder ports.VideoRecorder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		recorder: recorder,
		fs:       fs,
		logger:   logger.WithComponent("record"),
	}
}

type sessionOutcome struct {
	path string
	err  error
}

// Execute runs one recording session and locates its artifact.
//
// The session runs on its own goroutine and owns the full browser lifecycle;
// Execute blocks on a single-slot channel until the session reports back. The
// join has no timeout of its own beyond the recording duration.
func (s *Stage) Execute(ctx context.Context, input pipeline.RecordInput) (pipeline.RecordResult, error) {
	result := pipeline.RecordResult{}

	htmlPath := filepath.Join(input.Workspace, "page.html")
	if err := s.fs.WriteFile(htmlPath, []byte(input.HTML)); err != nil {
		return result, fmt.Errorf("write page: %w", err)
	}

	req := ports.RecordRequest{
		FileURL:        "file://" + htmlPath,
		Width:          input.Geometry.Width,
		Height:         input.Geometry.Height,
		Duration:       input.Duration,
		VideoDir:       input.Workspace,
		SettleDelay:    input.SettleDelay,
		PostLoadScript: speedScript(input.RotateSpeed, input.ScaleSpeed, input.ScrollSpeed),
	}

	s.logger.Debug("Recording %dx%d for %s", req.Width, req.Height, req.Duration)
	start := time.Now()

	outcome := make(chan sessionOutcome, 1)
	go func() {
		path, err := s.recorder.Record(ctx, req)
		outcome <- sessionOutcome{path: path, err: err}
	}()
	got := <-outcome
	result.Elapsed = time.Since(start)

	if got.err != nil {
		result.FinalState = ports.StateFailed
		return result, fmt.Errorf("recording session: %w", got.err)
	}

	time.Sleep(graceDelay)

	artifact := got.path
	if artifact == "" {
		found, err := s.newestArtifact(input.Workspace)
		if err != nil {
			result.FinalState = ports.StateFailed
			return result, err
		}
		artifact = found
		s.logger.Debug("Session reported no path, using workspace scan: %s", artifact)
	}
	result.FinalState = ports.StateArtifactLocated
	s.logger.Debug("Artifact located at %s", artifact)

	result.ArtifactPath = artifact
	result.FinalState = ports.StateDone
	return result, nil
}

// newestArtifact scans dir for the most recently modified container file.
func (s *Stage) newestArtifact(dir string) (string, error) {
	pattern := filepath.Join(dir, "*"+s.recorder.ContainerExt())
	matches, err := s.fs.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("scan workspace: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no %s files in %s", ErrArtifactNotFound, s.recorder.ContainerExt(), dir)
	}

	newest := ""
	var newestTime time.Time
	for _, m := range matches {
		mt, err := s.fs.ModTime(m)
		if err != nil {
			continue
		}
		if newest == "" || mt.After(newestTime) {
			newest = m
			newestTime = mt
		}
	}
	if newest == "" {
		return "", fmt.Errorf("%w: no readable %s files in %s", ErrArtifactNotFound, s.recorder.ContainerExt(), dir)
	}
	return newest, nil
}

// speedScript builds the post-load script that rescales the template's
// declared animation durations. Multipliers at 1.0 contribute nothing; an
// all-default set yields an empty script.
func speedScript(rotate, scale, scroll float64) string {
	script := ""
	for _, s := range []struct {
		kind  string
		speed float64
	}{
		{"rotate", rotate},
		{"scale", scale},
		{"scroll", scroll},
	} {
		if s.speed == 1.0 || s.speed <= 0 {
			continue
		}
		script += fmt.Sprintf(`document.querySelectorAll('[data-animate="%s"]').forEach(function(el) {
  var d = parseFloat(getComputedStyle(el).animationDuration);
  if (d > 0) { el.style.animationDuration = (d / %g) + 's'; }
});
`, s.kind, s.speed)
	}
	return script
}
