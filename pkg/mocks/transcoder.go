package mocks

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/user/framecast/pkg/ports"
)

// Transcoder is a mock implementation of ports.Transcoder.
type Transcoder struct {
	TranscodeFunc func(ctx context.Context, inputPath, outputPath string, fps float64) (string, error)

	// FallBack makes the default behavior mimic the copy-through path,
	// returning a sibling of outputPath with the input's extension.
	FallBack bool
}

func (m *Transcoder) Transcode(ctx context.Context, inputPath, outputPath string, fps float64) (string, error) {
	if m.TranscodeFunc != nil {
		return m.TranscodeFunc(ctx, inputPath, outputPath, fps)
	}
	if m.FallBack {
		base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
		return base + filepath.Ext(inputPath), nil
	}
	return outputPath, nil
}

// Ensure Transcoder implements ports.Transcoder
var _ ports.Transcoder = (*Transcoder)(nil)
