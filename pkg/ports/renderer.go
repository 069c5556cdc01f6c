package ports

import "image"

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality applies to JPEG only.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// Crop returns the top-left width x height rectangle of img.
	Crop(img image.Image, width, height int) image.Image

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// CircleMask returns img clipped to the largest circle inscribed in
	// its bounds; pixels outside the circle are transparent.
	CircleMask(img image.Image) image.Image
}
