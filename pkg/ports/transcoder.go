package ports

import "context"

// Transcoder converts a recorded container file into a delivery format.
//
// Transcode never fails the pipeline: when the encoder is missing or exits
// nonzero, implementations fall back to copying the input unchanged to a
// sibling of outputPath that keeps the input's extension, and return that
// path. The extension of the returned path is authoritative.
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string, fps float64) (finalPath string, err error)
}
