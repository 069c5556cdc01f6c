// Package relocate implements the artifact relocation stage.
package relocate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/ports"
)

// Stage copies a workspace artifact to its durable location.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger

	// now is swapped in tests to pin the timestamp.
	now func() time.Time
}

// New creates a new relocate stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("relocate"),
		now:    time.Now,
	}
}

// Execute copies the source artifact into the target directory under a
// timestamped name. The source keeps the workspace copy; an unwritable
// target degrades to returning the workspace path.
func (s *Stage) Execute(ctx context.Context, input pipeline.RelocateInput) (pipeline.RelocateResult, error) {
	result := pipeline.RelocateResult{FinalPath: input.SourcePath}

	ext := filepath.Ext(input.SourcePath)
	name := fmt.Sprintf("%s_%s%s", input.BaseName, s.now().Format("20060102_150405"), ext)
	target := filepath.Join(input.TargetDir, name)

	if err := s.fs.MkdirAll(input.TargetDir); err != nil {
		s.logger.Warn("Target directory unavailable, keeping workspace artifact: %v", err)
		return result, nil
	}
	if err := s.fs.CopyFile(input.SourcePath, target); err != nil {
		s.logger.Warn("Relocation failed, keeping workspace artifact: %v", err)
		return result, nil
	}

	result.FinalPath = target
	result.Relocated = true
	return result, nil
}
