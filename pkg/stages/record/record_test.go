package record

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/mocks"
	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/ports"
)

func TestExecuteUsesSessionPath(t *testing.T) {
	recorder := &mocks.VideoRecorder{
		RecordFunc: func(ctx context.Context, req ports.RecordRequest) (string, error) {
			return "/ws/video.webm", nil
		},
	}
	stage := New(recorder, mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RecordInput{
		HTML:      "<html></html>",
		Geometry:  pipeline.Geometry{Width: 640, Height: 360},
		Duration:  time.Millisecond,
		Workspace: "/ws",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ArtifactPath != "/ws/video.webm" {
		t.Errorf("expected session path, got %q", result.ArtifactPath)
	}
	if result.FinalState != ports.StateDone {
		t.Errorf("expected final state %s, got %s", ports.StateDone, result.FinalState)
	}

	if len(recorder.Requests) != 1 {
		t.Fatalf("expected 1 recording, got %d", len(recorder.Requests))
	}
	req := recorder.Requests[0]
	if req.Width != 640 || req.Height != 360 {
		t.Errorf("recording geometry must match the requested output, got %dx%d", req.Width, req.Height)
	}
	if !strings.HasPrefix(req.FileURL, "file://") {
		t.Errorf("expected file URL, got %q", req.FileURL)
	}
}

func TestExecuteScansWorkspaceWhenSessionSilent(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/ws/old.webm", []byte("a"))
	fs.WriteFile("/ws/new.webm", []byte("b"))
	fs.SetModTime("/ws/old.webm", time.Now().Add(-time.Minute))
	fs.SetModTime("/ws/new.webm", time.Now())

	recorder := &mocks.VideoRecorder{} // returns empty path
	stage := New(recorder, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RecordInput{
		Geometry:  pipeline.Geometry{Width: 64, Height: 64},
		Duration:  time.Millisecond,
		Workspace: "/ws",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ArtifactPath != "/ws/new.webm" {
		t.Errorf("expected newest artifact, got %q", result.ArtifactPath)
	}
	if result.FinalState != ports.StateDone {
		t.Errorf("expected final state %s, got %s", ports.StateDone, result.FinalState)
	}
}

func TestExecuteGraceBeforeArtifactResolution(t *testing.T) {
	recorder := &mocks.VideoRecorder{
		RecordFunc: func(ctx context.Context, req ports.RecordRequest) (string, error) {
			return "/ws/video.webm", nil
		},
	}
	stage := New(recorder, mocks.NewFileSystem(), logger.NewNoop())

	start := time.Now()
	_, err := stage.Execute(context.Background(), pipeline.RecordInput{
		Geometry:  pipeline.Geometry{Width: 64, Height: 64},
		Workspace: "/ws",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < graceDelay {
		t.Errorf("expected the stage to wait at least %v for the container flush, waited %v", graceDelay, elapsed)
	}
}

func TestExecuteArtifactMissing(t *testing.T) {
	recorder := &mocks.VideoRecorder{}
	stage := New(recorder, mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RecordInput{
		Geometry:  pipeline.Geometry{Width: 64, Height: 64},
		Duration:  time.Millisecond,
		Workspace: "/ws",
	})
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}
	if result.FinalState != ports.StateFailed {
		t.Errorf("expected final state %s, got %s", ports.StateFailed, result.FinalState)
	}
}

func TestExecuteSessionError(t *testing.T) {
	recorder := &mocks.VideoRecorder{
		RecordFunc: func(ctx context.Context, req ports.RecordRequest) (string, error) {
			return "", errors.New("recording failed in state page-loaded")
		},
	}
	stage := New(recorder, mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RecordInput{
		Geometry:  pipeline.Geometry{Width: 64, Height: 64},
		Workspace: "/ws",
	})
	if err == nil || !strings.Contains(err.Error(), "page-loaded") {
		t.Errorf("expected session error to propagate, got %v", err)
	}
	if result.FinalState != ports.StateFailed {
		t.Errorf("expected final state %s, got %s", ports.StateFailed, result.FinalState)
	}
}

func TestSpeedScript(t *testing.T) {
	tests := []struct {
		name    string
		rotate  float64
		scale   float64
		scroll  float64
		want    []string
		wantNot []string
	}{
		{
			name:    "all defaults produce no script",
			rotate:  1.0,
			scale:   1.0,
			scroll:  1.0,
			wantNot: []string{"data-animate"},
		},
		{
			name:    "rotate only",
			rotate:  2.0,
			scale:   1.0,
			scroll:  1.0,
			want:    []string{`data-animate="rotate"`, "/ 2"},
			wantNot: []string{`data-animate="scale"`, `data-animate="scroll"`},
		},
		{
			name:   "all three",
			rotate: 2.0,
			scale:  0.5,
			scroll: 3.0,
			want:   []string{`data-animate="rotate"`, `data-animate="scale"`, `data-animate="scroll"`},
		},
		{
			name:    "zero speed skipped",
			rotate:  0,
			scale:   1.0,
			scroll:  1.0,
			wantNot: []string{"data-animate"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := speedScript(tt.rotate, tt.scale, tt.scroll)
			for _, w := range tt.want {
				if !strings.Contains(script, w) {
					t.Errorf("expected script to contain %q:\n%s", w, script)
				}
			}
			for _, w := range tt.wantNot {
				if strings.Contains(script, w) {
					t.Errorf("expected script to not contain %q:\n%s", w, script)
				}
			}
		})
	}
}
