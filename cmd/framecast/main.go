// Package main provides the CLI entry point for framecast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framecast/pkg/adapters/chromeshot"
	"github.com/user/framecast/pkg/adapters/ffmpegtranscode"
	"github.com/user/framecast/pkg/adapters/filesink"
	"github.com/user/framecast/pkg/adapters/ggrenderer"
	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/adapters/nullsink"
	"github.com/user/framecast/pkg/adapters/osfilesystem"
	"github.com/user/framecast/pkg/adapters/playwrightrec"
	"github.com/user/framecast/pkg/config"
	"github.com/user/framecast/pkg/orchestrator"
	"github.com/user/framecast/pkg/pixels"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/stages/frame"
	"github.com/user/framecast/pkg/stages/record"
	"github.com/user/framecast/pkg/stages/relocate"
	"github.com/user/framecast/pkg/stages/transcode"
	"github.com/user/framecast/pkg/template"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "framecast",
		Usage:   l10n.T("Render HTML templates into still images and short videos"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Configuration file (YAML)")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		},
		Commands: []*cli.Command{
			stillCommand(),
			videoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: l10n.T("Title substituted for {{title}}")},
		&cli.StringFlag{Name: "text", Usage: l10n.T("Body text substituted for {{text}}")},
		&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: l10n.T("Template file (built-in card template when omitted)")},
		&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: l10n.T("Input image file substituted for {{image}}")},
		&cli.BoolFlag{Name: "circle", Usage: l10n.T("Apply a circular mask to the input image")},
		&cli.StringFlag{Name: "ext", Usage: l10n.T("Extension parameters as a JSON object")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Output width in pixels")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Output height in pixels")},
		&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: l10n.T("Output directory")},
		&cli.StringFlag{Name: "chrome-path", Usage: l10n.T("Path to a Chromium based browser executable")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output")},
	}
}

func stillCommand() *cli.Command {
	return &cli.Command{
		Name:  "still",
		Usage: l10n.T("Render the template to a single PNG frame"),
		Flags: append(renderFlags(),
			&cli.IntFlag{Name: "height-offset", Usage: l10n.T("Capture surface compensation rows")},
		),
		Action: runStill,
	}
}

func videoCommand() *cli.Command {
	return &cli.Command{
		Name:  "video",
		Usage: l10n.T("Record the animated template as a video clip"),
		Flags: append(renderFlags(),
			&cli.Float64Flag{Name: "duration", Usage: l10n.T("Recording duration in seconds")},
			&cli.Float64Flag{Name: "fps", Usage: l10n.T("Output frame rate")},
			&cli.Float64Flag{Name: "rotate-speed", Value: 1.0, Usage: l10n.T("Rotation animation speed multiplier")},
			&cli.Float64Flag{Name: "scale-speed", Value: 1.0, Usage: l10n.T("Scale animation speed multiplier")},
			&cli.Float64Flag{Name: "scroll-speed", Value: 1.0, Usage: l10n.T("Scroll animation speed multiplier")},
			&cli.StringFlag{Name: "ffmpeg-path", Usage: l10n.T("Path to the ffmpeg executable")},
		),
		Action: runVideo,
	}
}

// environment bundles the wired adapters for one command invocation.
type environment struct {
	cfg      config.Config
	log      ports.Logger
	fs       *osfilesystem.FileSystem
	renderer *ggrenderer.Renderer
	sink     ports.DebugSink
	ctx      context.Context
	cancel   context.CancelFunc
}

func setup(c *cli.Context) (*environment, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	applyOverrides(&cfg, c)

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return &environment{
		cfg:      cfg,
		log:      log,
		fs:       fs,
		renderer: renderer,
		sink:     sink,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func applyOverrides(cfg *config.Config, c *cli.Context) {
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("chrome-path") {
		cfg.ChromePath = c.String("chrome-path")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("height-offset") {
		cfg.HeightOffset = c.Int("height-offset")
	}
	if c.IsSet("duration") {
		cfg.Duration = c.Float64("duration")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	if c.IsSet("ffmpeg-path") {
		cfg.FFmpegPath = c.String("ffmpeg-path")
	}
}

// loadTemplate reads the template file or falls back to the built-in one.
func (env *environment) loadTemplate(c *cli.Context) (string, error) {
	path := c.String("template")
	if path == "" {
		return template.Default, nil
	}
	data, err := env.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// loadImage decodes the input image file into a pixel buffer.
func (env *environment) loadImage(c *cli.Context) (*pixels.Buffer, error) {
	path := c.String("image")
	if path == "" {
		return nil, nil
	}
	data, err := env.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	format := ports.FormatPNG
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = ports.FormatJPEG
	}
	img, err := env.renderer.DecodeImage(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return pixels.FromImage(img), nil
}

func runStill(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.cancel()

	tpl, err := env.loadTemplate(c)
	if err != nil {
		return err
	}
	img, err := env.loadImage(c)
	if err != nil {
		return err
	}

	shooter := chromeshot.New(ports.ScreenshotOptions{
		ChromePath: env.cfg.ChromePath,
		Headless:   env.cfg.Headless,
	})
	defer shooter.Close()

	frameStage := frame.New(shooter, env.renderer, env.fs, env.sink, env.log)
	relocateStage := relocate.New(env.fs, env.log)

	r := orchestrator.New(env.cfg.ToOrchestratorConfig(),
		frameStage, nil, nil, relocateStage,
		env.renderer, env.fs, env.sink, env.log)

	env.log.Info(l10n.F("Rendering %dx%d still frame...", env.cfg.Width, env.cfg.Height))

	result := r.RenderStill(env.ctx, orchestrator.StillRequest{
		Title:       c.String("title"),
		Text:        c.String("text"),
		Template:    tpl,
		Image:       img,
		Width:       env.cfg.Width,
		Height:      env.cfg.Height,
		ExtJSON:     c.String("ext"),
		CircleImage: c.Bool("circle"),
		OutputDir:   env.cfg.OutputDir,
	})
	if result.Path == "" {
		return fmt.Errorf("still rendering produced no artifact")
	}

	env.log.Info(l10n.F("Output saved to %s", result.Path))
	return nil
}

func runVideo(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.cancel()

	tpl, err := env.loadTemplate(c)
	if err != nil {
		return err
	}
	img, err := env.loadImage(c)
	if err != nil {
		return err
	}

	recorder := playwrightrec.New(env.log)
	recorder.ExecutablePath = env.cfg.ChromePath

	transcoder := ffmpegtranscode.New(env.log)
	transcoder.FFmpegPath = env.cfg.FFmpegPath
	transcoder.CRF = env.cfg.CRF

	recordStage := record.New(recorder, env.fs, env.log)
	transcodeStage := transcode.New(transcoder, env.log)
	relocateStage := relocate.New(env.fs, env.log)

	r := orchestrator.New(env.cfg.ToOrchestratorConfig(),
		nil, recordStage, transcodeStage, relocateStage,
		env.renderer, env.fs, env.sink, env.log)

	env.log.Info(l10n.F("Recording %gs clip at %g fps...", env.cfg.Duration, env.cfg.FPS))

	result := r.RenderVideo(env.ctx, orchestrator.VideoRequest{
		Title:       c.String("title"),
		Text:        c.String("text"),
		Template:    tpl,
		Image:       img,
		Width:       env.cfg.Width,
		Height:      env.cfg.Height,
		ExtJSON:     c.String("ext"),
		Duration:    time.Duration(env.cfg.Duration * float64(time.Second)),
		FPS:         env.cfg.FPS,
		RotateSpeed: c.Float64("rotate-speed"),
		ScaleSpeed:  c.Float64("scale-speed"),
		ScrollSpeed: c.Float64("scroll-speed"),
		CircleImage: c.Bool("circle"),
		OutputDir:   env.cfg.OutputDir,
	})
	if result.Path == "" {
		return fmt.Errorf("video rendering produced no artifact: %s", result.MetaJSON)
	}

	env.log.Info(l10n.F("Recorded %d frames", result.Frames))
	env.log.Info(l10n.F("Output saved to %s", result.Path))
	return nil
}
