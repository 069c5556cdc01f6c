// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"image"
)

// Screenshotter captures rendered HTML as a bitmap using a headless browser.
//
// Implementations create their browser session lazily on the first capture
// and reuse it for subsequent calls on the same instance. A Screenshotter is
// not safe for concurrent use; callers must serialize access.
type Screenshotter interface {
	// Capture renders the HTML file at fileURL in a surface of the given
	// size and returns the raw screenshot. The surface size is the full
	// capture size including any truncation compensation; cropping back to
	// the requested geometry is the caller's responsibility.
	Capture(ctx context.Context, fileURL string, width, height int) (image.Image, error)

	// Close shuts down the browser session if one was created.
	Close() error
}

// ScreenshotOptions configures the screenshot browser session.
type ScreenshotOptions struct {
	ChromePath string // Explicit Chrome executable (falls back to CHROME_PATH env, then system defaults)
	Headless   bool
}
