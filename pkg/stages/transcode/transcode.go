// Package transcode implements the video delivery conversion stage.
package transcode

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framecast/pkg/adapters/mp4probe"
	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/ports"
)

// Stage converts a recorded container file into the delivery format.
type Stage struct {
	transcoder ports.Transcoder
	logger     ports.Logger
}

// New creates a new transcode stage.
func New(transcoder ports.Transcoder, logger ports.Logger) *Stage {
	return &Stage{
		transcoder: transcoder,
		logger:     logger.WithComponent("transcode"),
	}
}

// Execute transcodes the input file. The returned path's extension is
// authoritative; on encoder failure it carries the input's extension.
func (s *Stage) Execute(ctx context.Context, input pipeline.TranscodeInput) (pipeline.TranscodeResult, error) {
	result := pipeline.TranscodeResult{}

	finalPath, err := s.transcoder.Transcode(ctx, input.InputPath, input.OutputPath, input.FPS)
	if err != nil {
		return result, fmt.Errorf("transcode: %w", err)
	}

	result.FinalPath = finalPath
	result.FellBack = !strings.EqualFold(filepath.Ext(finalPath), filepath.Ext(input.OutputPath))

	if !result.FellBack && strings.EqualFold(filepath.Ext(finalPath), ".mp4") {
		s.probe(finalPath, input.FPS)
	}

	return result, nil
}

// probe sanity-checks the delivered MP4. Failures are warnings only.
func (s *Stage) probe(path string, fps float64) {
	info, err := mp4probe.ProbeFile(path)
	if err != nil {
		s.logger.Warn("Delivered MP4 failed probe: %v", err)
		return
	}
	if !info.HasVideo {
		s.logger.Warn("Delivered MP4 has no video track: %s", path)
		return
	}
	s.logger.Debug("Delivered MP4: %dms %dx%d at %g fps", info.DurationMs, info.Width, info.Height, fps)
}
