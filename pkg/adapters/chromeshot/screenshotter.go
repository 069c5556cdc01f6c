// Package chromeshot captures rendered HTML as bitmaps using chromedp.
package chromeshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/framecast/pkg/ports"
)

// ErrEmptyScreenshot is returned when the browser produced no screenshot data.
var ErrEmptyScreenshot = errors.New("chromeshot: empty screenshot")

// Screenshotter implements ports.Screenshotter using chromedp.
//
// The browser session is created lazily on the first Capture and reused for
// subsequent calls; the surface size is set per call. Not safe for
// concurrent use.
type Screenshotter struct {
	opts ports.ScreenshotOptions

	allocCtx    context.Context
	allocCancel context.CancelFunc
	browserCtx  context.Context
	cancel      context.CancelFunc
}

// New creates a Screenshotter. The session is not started until the first
// Capture call; the browser inherits that call's context, so the first
// context must outlive the instance. Pass a process-scoped context when the
// instance is reused across captures.
func New(opts ports.ScreenshotOptions) *Screenshotter {
	return &Screenshotter{opts: opts}
}

// Capture renders the document at fileURL on a width x height surface and
// returns the raw screenshot. The surface includes the caller's truncation
// compensation; no cropping happens here. The first call's ctx becomes the
// parent of the browser session, so cancelling it ends the session for all
// later calls too.
func (s *Screenshotter) Capture(ctx context.Context, fileURL string, width, height int) (image.Image, error) {
	if err := s.ensureSession(ctx, width, height); err != nil {
		return nil, err
	}

	var buf []byte
	err := chromedp.Run(s.browserCtx,
		emulation.SetDeviceMetricsOverride(int64(width), int64(height), 1.0, false),
		chromedp.Navigate(fileURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, ErrEmptyScreenshot
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}

// ensureSession starts the browser once, sized to the first requested surface.
// Later calls reuse the session; the device metrics override in Capture keeps
// the viewport in sync with the requested geometry.
func (s *Screenshotter) ensureSession(ctx context.Context, width, height int) error {
	if s.browserCtx != nil {
		return nil
	}

	chromedpOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-features", "TranslateUI"),
		chromedp.WindowSize(width, height),
	}

	if s.opts.Headless {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("headless", "new"))
	}

	chromePath := ResolveChromePath(s.opts.ChromePath)
	if chromePath != "" {
		chromedpOpts = append(chromedpOpts, chromedp.ExecPath(chromePath))
	}

	s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(ctx, chromedpOpts...)
	s.browserCtx, s.cancel = chromedp.NewContext(s.allocCtx)

	return nil
}

// Close shuts down the browser session if one was created.
func (s *Screenshotter) Close() error {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.allocCancel != nil {
		s.allocCancel()
		s.allocCancel = nil
	}
	s.browserCtx = nil
	return nil
}

// Ensure Screenshotter implements ports.Screenshotter
var _ ports.Screenshotter = (*Screenshotter)(nil)
