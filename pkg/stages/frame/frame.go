// Package frame implements the still-frame capture stage.
package frame

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/ports"
)

// ErrCaptureFailed is returned when the browser produces no usable bitmap.
var ErrCaptureFailed = errors.New("frame capture failed")

// Stage captures resolved HTML as a single cropped bitmap.
type Stage struct {
	shooter  ports.Screenshotter
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

// New creates a new frame stage.
func New(shooter ports.Screenshotter, renderer ports.Renderer, fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		shooter:  shooter,
		renderer: renderer,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("frame"),
	}
}

// Execute captures the page on a height-compensated surface and crops the
// result back to the requested geometry.
func (s *Stage) Execute(ctx context.Context, input pipeline.FrameInput) (pipeline.FrameResult, error) {
	result := pipeline.FrameResult{}

	htmlPath := filepath.Join(input.Workspace, "page.html")
	if err := s.fs.WriteFile(htmlPath, []byte(input.HTML)); err != nil {
		return result, fmt.Errorf("write page: %w", err)
	}
	if s.sink.Enabled() {
		if err := s.sink.SaveResolvedHTML(input.HTML); err != nil {
			s.logger.Warn("Failed to save resolved HTML: %v", err)
		}
	}

	// The headless browser truncates the bottom rows of the viewport, so the
	// capture surface is taller than the requested geometry and the surplus
	// is cropped away afterwards.
	surfaceW := input.Geometry.Width
	surfaceH := input.Geometry.Height + input.HeightOffset
	s.logger.Debug("Capturing %dx%d surface for %dx%d frame", surfaceW, surfaceH, input.Geometry.Width, input.Geometry.Height)

	raw, err := s.shooter.Capture(ctx, "file://"+htmlPath, surfaceW, surfaceH)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	if raw == nil || raw.Bounds().Empty() {
		return result, fmt.Errorf("%w: empty screenshot", ErrCaptureFailed)
	}
	if s.sink.Enabled() {
		if err := s.sink.SaveRawCapture(raw); err != nil {
			s.logger.Warn("Failed to save raw capture: %v", err)
		}
	}

	cropped := s.renderer.Crop(raw, input.Geometry.Width, input.Geometry.Height)
	if s.sink.Enabled() {
		if err := s.sink.SaveCroppedFrame(cropped); err != nil {
			s.logger.Warn("Failed to save cropped frame: %v", err)
		}
	}

	result.Image = cropped

	if input.OutputPath != "" {
		data, err := s.renderer.EncodeImage(cropped, ports.FormatPNG, 0)
		if err != nil {
			return result, fmt.Errorf("encode frame: %w", err)
		}
		if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
			return result, fmt.Errorf("persist frame: %w", err)
		}
		result.Path = input.OutputPath
	}

	return result, nil
}
