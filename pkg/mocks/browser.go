// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"image"

	"github.com/user/framecast/pkg/ports"
)

// Screenshotter is a mock implementation of ports.Screenshotter.
type Screenshotter struct {
	CaptureFunc func(ctx context.Context, fileURL string, width, height int) (image.Image, error)
	CloseFunc   func() error

	// CaptureCalls records the surface sizes requested from Capture.
	CaptureCalls []image.Point
}

func (m *Screenshotter) Capture(ctx context.Context, fileURL string, width, height int) (image.Image, error) {
	m.CaptureCalls = append(m.CaptureCalls, image.Pt(width, height))
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx, fileURL, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

func (m *Screenshotter) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Ensure Screenshotter implements ports.Screenshotter
var _ ports.Screenshotter = (*Screenshotter)(nil)

// VideoRecorder is a mock implementation of ports.VideoRecorder.
type VideoRecorder struct {
	RecordFunc       func(ctx context.Context, req ports.RecordRequest) (string, error)
	ContainerExtFunc func() string

	// Requests records every Record invocation.
	Requests []ports.RecordRequest
}

func (m *VideoRecorder) Record(ctx context.Context, req ports.RecordRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, req)
	}
	return "", nil
}

func (m *VideoRecorder) ContainerExt() string {
	if m.ContainerExtFunc != nil {
		return m.ContainerExtFunc()
	}
	return ".webm"
}

// Ensure VideoRecorder implements ports.VideoRecorder
var _ ports.VideoRecorder = (*VideoRecorder)(nil)
