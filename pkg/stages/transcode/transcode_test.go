package transcode

import (
	"context"
	"testing"

	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/mocks"
	"github.com/user/framecast/pkg/pipeline"
)

func TestExecuteSuccess(t *testing.T) {
	stage := New(&mocks.Transcoder{
		TranscodeFunc: func(ctx context.Context, in, out string, fps float64) (string, error) {
			return out, nil
		},
	}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		InputPath:  "/ws/rec.webm",
		OutputPath: "/ws/video.mkv",
		FPS:        24,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.FinalPath != "/ws/video.mkv" {
		t.Errorf("expected requested path, got %q", result.FinalPath)
	}
	if result.FellBack {
		t.Error("expected no fallback")
	}
}

func TestExecuteFallbackKeepsInputExtension(t *testing.T) {
	stage := New(&mocks.Transcoder{FallBack: true}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		InputPath:  "/ws/rec.webm",
		OutputPath: "/ws/video.mp4",
		FPS:        24,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.FinalPath != "/ws/video.webm" {
		t.Errorf("expected fallback copy path, got %q", result.FinalPath)
	}
	if !result.FellBack {
		t.Error("expected fallback to be reported")
	}
}
