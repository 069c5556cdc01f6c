// Package playwrightrec records rendered HTML pages as video using Playwright.
package playwrightrec

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/user/framecast/pkg/ports"
)

// containerExt is the extension of the container format Playwright's
// Chromium recording context writes.
const containerExt = ".webm"

// Recorder implements ports.VideoRecorder using playwright-go.
//
// Every Record call launches its own browser process and tears it down
// before returning; nothing is shared across invocations.
type Recorder struct {
	logger ports.Logger

	// ExecutablePath overrides browser discovery. Empty means: use a system
	// Chromium when one is found, otherwise Playwright's bundled browser.
	ExecutablePath string
}

// New creates a Recorder.
func New(logger ports.Logger) *Recorder {
	return &Recorder{logger: logger.WithComponent("recorder")}
}

// Record runs one full recording session and returns the path of the
// container file reported by the session. An empty path with nil error means
// the session finished but did not report its artifact; the caller scans
// req.VideoDir in that case.
func (r *Recorder) Record(ctx context.Context, req ports.RecordRequest) (string, error) {
	state := ports.StateInit

	fail := func(err error) (string, error) {
		return "", fmt.Errorf("recording failed in state %s: %w", state, err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return fail(fmt.Errorf("start playwright: %w", err))
	}
	defer pw.Stop()

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--mute-audio",
			"--hide-scrollbars",
		},
	}
	if execPath := r.resolveExecutable(); execPath != "" {
		launchOpts.ExecutablePath = playwright.String(execPath)
	}

	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		return fail(fmt.Errorf("launch browser: %w", err))
	}
	defer browser.Close()
	state = ports.StateBrowserLaunched
	r.logger.Debug("Browser launched")

	// The recording context size is the exact output geometry; this path
	// samples a live stream, so no truncation compensation applies.
	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: req.Width, Height: req.Height},
		RecordVideo: &playwright.RecordVideo{
			Dir:  req.VideoDir,
			Size: &playwright.Size{Width: req.Width, Height: req.Height},
		},
	})
	if err != nil {
		return fail(fmt.Errorf("create recording context: %w", err))
	}
	state = ports.StateContextOpened

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		return fail(fmt.Errorf("create page: %w", err))
	}

	if _, err := page.Goto(req.FileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		browserCtx.Close()
		return fail(fmt.Errorf("navigate: %w", err))
	}
	state = ports.StatePageLoaded
	r.logger.Debug("Page loaded: %s", req.FileURL)

	if req.SettleDelay > 0 {
		if err := sleep(ctx, req.SettleDelay); err != nil {
			browserCtx.Close()
			return fail(err)
		}
	}

	if req.PostLoadScript != "" {
		// Best-effort animation override; templates without the expected
		// declaration shape just ignore it.
		if _, err := page.Evaluate(req.PostLoadScript); err != nil {
			r.logger.Debug("Post-load script did not apply: %s", err)
		}
	}

	state = ports.StateRecording
	r.logger.Debug("Recording for %s", req.Duration)
	if err := sleep(ctx, req.Duration); err != nil {
		browserCtx.Close()
		return fail(err)
	}

	// The session reports its artifact through the page's video handle.
	// Ask before closing the page; the path is known even though the file
	// is only finalized by closing the context.
	var artifact string
	if video := page.Video(); video != nil {
		if p, err := video.Path(); err == nil {
			artifact = p
		}
	}

	// Closing the recording context flushes and finalizes the container.
	if err := browserCtx.Close(); err != nil {
		return fail(fmt.Errorf("close recording context: %w", err))
	}
	state = ports.StateClosed
	r.logger.Debug("Recording context closed")

	return artifact, nil
}

// ContainerExt returns ".webm".
func (r *Recorder) ContainerExt() string {
	return containerExt
}

// resolveExecutable picks the browser binary: explicit override, then common
// system Chromium locations, then Playwright's bundled browser (empty path).
func (r *Recorder) resolveExecutable() string {
	if r.ExecutablePath != "" {
		return r.ExecutablePath
	}
	for _, p := range []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sleep blocks for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Ensure Recorder implements ports.VideoRecorder
var _ ports.VideoRecorder = (*Recorder)(nil)
