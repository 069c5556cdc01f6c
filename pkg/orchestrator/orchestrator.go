// Package orchestrator coordinates the rendering pipeline stages.
package orchestrator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/user/framecast/pkg/pipeline"
	"github.com/user/framecast/pkg/pixels"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/template"
)

// maxDimension bounds the requested output geometry.
const maxDimension = 4096

// previewLimit is the maximum preview length in characters.
const previewLimit = 100

// Config contains the orchestrator defaults.
type Config struct {
	HeightOffset int           // capture surface compensation rows
	SettleDelay  time.Duration // wait after network idle before recording
	FPS          float64
	Duration     time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		HeightOffset: 87,
		SettleDelay:  500 * time.Millisecond,
		FPS:          30.0,
		Duration:     5 * time.Second,
	}
}

// StillRequest describes one still-frame invocation.
type StillRequest struct {
	Title    string
	Text     string
	Template string
	Image    *pixels.Buffer // optional input image referenced as {{image}}
	Width    int
	Height   int

	// ExtJSON is a flat key to scalar JSON object whose entries override
	// the fixed context fields. Malformed JSON is treated as empty.
	ExtJSON string

	// HeightOffset overrides the configured compensation when positive.
	HeightOffset int

	// CircleImage applies a circular mask to the input image before it is
	// referenced by the template.
	CircleImage bool

	OutputDir string
}

// StillResult is the outcome of a still-frame invocation.
type StillResult struct {
	// Buffer is the captured frame as (height, width, 3) normalized pixels.
	// On failure it is the request's input buffer passed through unchanged.
	Buffer *pixels.Buffer
	// Path is the persisted artifact; empty on failure.
	Path string
}

// VideoRequest describes one video invocation.
type VideoRequest struct {
	Title    string
	Text     string
	Template string
	Image    *pixels.Buffer
	Width    int
	Height   int
	ExtJSON  string

	Duration time.Duration
	FPS      float64

	// Animation speed multipliers, 1.0 means template-declared speed.
	RotateSpeed float64
	ScaleSpeed  float64
	ScrollSpeed float64

	CircleImage bool
	OutputDir   string
}

// VideoResult is the outcome of a video invocation.
type VideoResult struct {
	// Path is the final video artifact; its extension is authoritative.
	Path string
	// Frames is floor(duration * fps); zero on failure.
	Frames int
	// MetaJSON describes the invocation; on failure it carries a single
	// "error" field instead.
	MetaJSON string
}

type videoMeta struct {
	Path        string  `json:"path"`
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	Duration    float64 `json:"duration"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Title       string  `json:"title"`
	Preview     string  `json:"preview"`
	Timestamp   string  `json:"timestamp"`
	RotateSpeed float64 `json:"rotate_speed"`
	ScaleSpeed  float64 `json:"scale_speed"`
	ScrollSpeed float64 `json:"scroll_speed"`
}

// Renderer coordinates the still and video pipelines.
type Renderer struct {
	config         Config
	frameStage     pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult]
	recordStage    pipeline.Stage[pipeline.RecordInput, pipeline.RecordResult]
	transcodeStage pipeline.Stage[pipeline.TranscodeInput, pipeline.TranscodeResult]
	relocateStage  pipeline.Stage[pipeline.RelocateInput, pipeline.RelocateResult]
	imaging        ports.Renderer
	fs             ports.FileSystem
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Renderer.
func New(
	config Config,
	frameStage pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult],
	recordStage pipeline.Stage[pipeline.RecordInput, pipeline.RecordResult],
	transcodeStage pipeline.Stage[pipeline.TranscodeInput, pipeline.TranscodeResult],
	relocateStage pipeline.Stage[pipeline.RelocateInput, pipeline.RelocateResult],
	imaging ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Renderer {
	return &Renderer{
		config:         config,
		frameStage:     frameStage,
		recordStage:    recordStage,
		transcodeStage: transcodeStage,
		relocateStage:  relocateStage,
		imaging:        imaging,
		fs:             fs,
		sink:           sink,
		logger:         logger.WithComponent("orchestrator"),
	}
}

// RenderStill renders the template to a single cropped frame. Failures
// degrade to the input buffer with an empty path; RenderStill never returns
// an error to the caller.
func (r *Renderer) RenderStill(ctx context.Context, req StillRequest) StillResult {
	result := StillResult{Buffer: req.Image}

	width, height := clampGeometry(req.Width, req.Height)
	offset := r.config.HeightOffset
	if req.HeightOffset > 0 {
		offset = req.HeightOffset
	}

	workspace, err := r.fs.TempDir("framecast-")
	if err != nil {
		r.logger.Error("Failed to create workspace: %v", err)
		return result
	}
	// The workspace survives when the delivered artifact still lives inside
	// it, which happens when relocation was skipped or degraded.
	defer func() {
		if result.Path != "" && strings.HasPrefix(result.Path, workspace) {
			return
		}
		r.cleanup(workspace)
	}()

	imageRef, err := r.stillImageRef(workspace, req.Image, req.CircleImage, width, height)
	if err != nil {
		r.logger.Error("Failed to prepare input image: %v", err)
		return result
	}

	tc := template.NewContext()
	tc.Set("title", req.Title)
	tc.Set("text", req.Text)
	tc.Set("image", imageRef)
	tc.Set("width", width)
	tc.Set("height", height)
	tc.Set("timestamp", time.Now().Format(time.RFC3339))
	applyExt(tc, req.ExtJSON, r.logger)

	html := template.Resolve(req.Template, tc)

	frame, err := r.frameStage.Execute(ctx, pipeline.FrameInput{
		HTML:         html,
		Geometry:     pipeline.Geometry{Width: width, Height: height},
		HeightOffset: offset,
		Workspace:    workspace,
		OutputPath:   filepath.Join(workspace, "frame.png"),
	})
	if err != nil {
		r.logger.Error("Frame capture failed: %v", err)
		return result
	}

	result.Buffer = pixels.FromImage(frame.Image)
	result.Path = frame.Path

	if req.OutputDir != "" {
		relocated, err := r.relocateStage.Execute(ctx, pipeline.RelocateInput{
			SourcePath: frame.Path,
			TargetDir:  req.OutputDir,
			BaseName:   "frame",
		})
		if err != nil {
			r.logger.Warn("Frame relocation failed: %v", err)
		} else {
			result.Path = relocated.FinalPath
		}
	}

	return result
}

// RenderVideo records the animated template for the requested duration.
// Failures degrade to an empty path, zero frames and an error-only metadata
// blob; RenderVideo never returns an error to the caller.
func (r *Renderer) RenderVideo(ctx context.Context, req VideoRequest) VideoResult {
	width, height := clampGeometry(req.Width, req.Height)
	duration := req.Duration
	if duration <= 0 {
		duration = r.config.Duration
	}
	fps := req.FPS
	if fps <= 0 {
		fps = r.config.FPS
	}

	workspace, err := r.fs.TempDir("framecast-")
	if err != nil {
		return r.videoFailure(fmt.Errorf("create workspace: %w", err))
	}
	var delivered string
	defer func() {
		if delivered != "" && strings.HasPrefix(delivered, workspace) {
			return
		}
		r.cleanup(workspace)
	}()

	imageRef, err := r.inlineImageRef(req.Image, req.CircleImage, width, height)
	if err != nil {
		return r.videoFailure(fmt.Errorf("prepare input image: %w", err))
	}

	tc := template.NewContext()
	tc.Set("title", req.Title)
	tc.Set("text", req.Text)
	tc.Set("image", imageRef)
	tc.Set("width", width)
	tc.Set("height", height)
	tc.Set("duration", duration.Seconds())
	tc.Set("fps", fps)
	tc.Set("rotate_speed", req.RotateSpeed)
	tc.Set("scale_speed", req.ScaleSpeed)
	tc.Set("scroll_speed", req.ScrollSpeed)
	tc.Set("timestamp", time.Now().Format(time.RFC3339))
	applyExt(tc, req.ExtJSON, r.logger)

	html := template.Resolve(req.Template, tc)

	recorded, err := r.recordStage.Execute(ctx, pipeline.RecordInput{
		HTML:        html,
		Geometry:    pipeline.Geometry{Width: width, Height: height},
		Duration:    duration,
		Workspace:   workspace,
		SettleDelay: r.config.SettleDelay,
		RotateSpeed: req.RotateSpeed,
		ScaleSpeed:  req.ScaleSpeed,
		ScrollSpeed: req.ScrollSpeed,
	})
	if err != nil {
		return r.videoFailure(err)
	}

	transcoded, err := r.transcodeStage.Execute(ctx, pipeline.TranscodeInput{
		InputPath:  recorded.ArtifactPath,
		OutputPath: filepath.Join(workspace, "video.mp4"),
		FPS:        fps,
	})
	if err != nil {
		return r.videoFailure(err)
	}

	finalPath := transcoded.FinalPath
	if req.OutputDir != "" {
		relocated, err := r.relocateStage.Execute(ctx, pipeline.RelocateInput{
			SourcePath: transcoded.FinalPath,
			TargetDir:  req.OutputDir,
			BaseName:   "video",
		})
		if err != nil {
			r.logger.Warn("Video relocation failed: %v", err)
		} else {
			finalPath = relocated.FinalPath
		}
	}
	delivered = finalPath

	frames := int(duration.Seconds() * fps)
	meta := videoMeta{
		Path:        finalPath,
		Frames:      frames,
		FPS:         fps,
		Duration:    duration.Seconds(),
		Width:       width,
		Height:      height,
		Title:       req.Title,
		Preview:     preview(req.Text),
		Timestamp:   time.Now().Format(time.RFC3339),
		RotateSpeed: req.RotateSpeed,
		ScaleSpeed:  req.ScaleSpeed,
		ScrollSpeed: req.ScrollSpeed,
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return r.videoFailure(fmt.Errorf("encode metadata: %w", err))
	}
	if r.sink.Enabled() {
		if err := r.sink.SaveRecordingMeta(metaJSON); err != nil {
			r.logger.Warn("Failed to save recording metadata: %v", err)
		}
	}

	return VideoResult{
		Path:     finalPath,
		Frames:   frames,
		MetaJSON: string(metaJSON),
	}
}

// videoFailure converts an error into the degraded video result.
func (r *Renderer) videoFailure(err error) VideoResult {
	r.logger.Error("Video rendering failed: %v", err)
	blob, _ := json.Marshal(map[string]string{"error": err.Error()})
	return VideoResult{
		Path:     "",
		Frames:   0,
		MetaJSON: string(blob),
	}
}

// cleanup removes the invocation workspace. Failures are logged and
// swallowed.
func (r *Renderer) cleanup(workspace string) {
	if err := r.fs.RemoveAll(workspace); err != nil {
		r.logger.Debug("Failed to remove workspace %s: %v", workspace, err)
	}
}

// stillImageRef persists the input buffer into the workspace and returns a
// file URL for the template. Local paths are not validated.
func (r *Renderer) stillImageRef(workspace string, buf *pixels.Buffer, circle bool, maxW, maxH int) (string, error) {
	if buf == nil {
		return "", nil
	}
	data, err := r.encodeBuffer(buf, circle, maxW, maxH)
	if err != nil {
		return "", err
	}
	path := filepath.Join(workspace, "input.png")
	if err := r.fs.WriteFile(path, data); err != nil {
		return "", err
	}
	return "file://" + path, nil
}

// inlineImageRef embeds the input buffer as a data URL. The recording
// session sandboxes local file access, so the image travels inside the
// document itself.
func (r *Renderer) inlineImageRef(buf *pixels.Buffer, circle bool, maxW, maxH int) (string, error) {
	if buf == nil {
		return "", nil
	}
	data, err := r.encodeBuffer(buf, circle, maxW, maxH)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// encodeBuffer turns the input buffer into PNG bytes. Inputs larger than the
// output geometry are scaled down proportionally first, keeping the embedded
// reference no bigger than the surface that displays it.
func (r *Renderer) encodeBuffer(buf *pixels.Buffer, circle bool, maxW, maxH int) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	var img image.Image = buf.NormalizeRGB().ToImage()
	if b := img.Bounds(); b.Dx() > maxW || b.Dy() > maxH {
		w, h := fitDims(b.Dx(), b.Dy(), maxW, maxH)
		img = r.imaging.ResizeImage(img, w, h)
	}
	if circle {
		img = r.imaging.CircleMask(img)
	}
	return r.imaging.EncodeImage(img, ports.FormatPNG, 0)
}

// fitDims shrinks (w, h) proportionally to fit within (maxW, maxH).
func fitDims(w, h, maxW, maxH int) (int, int) {
	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	outW := int(float64(w)*scale + 0.5)
	outH := int(float64(h)*scale + 0.5)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// applyExt overlays extension entries onto the fixed context fields.
// Malformed JSON leaves the context untouched.
func applyExt(tc *template.Context, extJSON string, logger ports.Logger) {
	if extJSON == "" {
		return
	}
	var ext map[string]interface{}
	if err := json.Unmarshal([]byte(extJSON), &ext); err != nil {
		logger.Warn("Malformed extension JSON ignored: %v", err)
		return
	}
	keys := make([]string, 0, len(ext))
	for k := range ext {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "image" {
			if s, ok := ext[k].(string); ok && s != "" {
				tc.Set(k, reference(s))
				continue
			}
		}
		tc.Set(k, ext[k])
	}
}

// preview caps text at previewLimit characters with an ellipsis marker.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}

func clampGeometry(width, height int) (int, int) {
	return clampDim(width), clampDim(height)
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > maxDimension {
		return maxDimension
	}
	return v
}

// reference keeps image refs consistent for callers supplying paths through
// extension entries. Scheme-qualified references pass through untouched.
func reference(value string) string {
	for _, scheme := range []string{"http://", "https://", "file://", "data:"} {
		if strings.HasPrefix(value, scheme) {
			return value
		}
	}
	return "file://" + value
}
