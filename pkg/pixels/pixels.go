// Package pixels provides the normalized pixel buffer exchanged with the host.
//
// A Buffer is a height x width x channels tensor of float32 values in [0, 1],
// row-major, matching the host's image exchange convention.
package pixels

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a normalized pixel tensor.
type Buffer struct {
	Height   int
	Width    int
	Channels int
	Data     []float32 // len = Height * Width * Channels
}

// New creates a zero-filled Buffer.
func New(height, width, channels int) *Buffer {
	return &Buffer{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}
}

// At returns the value at (y, x, c).
func (b *Buffer) At(y, x, c int) float32 {
	return b.Data[(y*b.Width+x)*b.Channels+c]
}

// Set stores v at (y, x, c).
func (b *Buffer) Set(y, x, c int, v float32) {
	b.Data[(y*b.Width+x)*b.Channels+c] = v
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Height: b.Height, Width: b.Width, Channels: b.Channels}
	out.Data = make([]float32, len(b.Data))
	copy(out.Data, b.Data)
	return out
}

// Validate checks structural consistency.
func (b *Buffer) Validate() error {
	if b.Height <= 0 || b.Width <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", b.Width, b.Height)
	}
	switch b.Channels {
	case 1, 3, 4:
	default:
		return fmt.Errorf("unsupported channel count %d", b.Channels)
	}
	if len(b.Data) != b.Height*b.Width*b.Channels {
		return fmt.Errorf("data length %d does not match %dx%dx%d",
			len(b.Data), b.Height, b.Width, b.Channels)
	}
	return nil
}

// NormalizeRGB converts the buffer to exactly 3 channels: a single channel is
// broadcast to RGB, a 4-channel buffer drops its alpha channel, and a
// 3-channel buffer is returned unchanged.
func (b *Buffer) NormalizeRGB() *Buffer {
	switch b.Channels {
	case 3:
		return b
	case 1:
		out := New(b.Height, b.Width, 3)
		for i, v := range b.Data {
			out.Data[i*3] = v
			out.Data[i*3+1] = v
			out.Data[i*3+2] = v
		}
		return out
	case 4:
		out := New(b.Height, b.Width, 3)
		for i := 0; i < b.Height*b.Width; i++ {
			out.Data[i*3] = b.Data[i*4]
			out.Data[i*3+1] = b.Data[i*4+1]
			out.Data[i*3+2] = b.Data[i*4+2]
		}
		return out
	default:
		return b
	}
}

// ToImage converts the buffer to an 8-bit RGBA image. Values are clamped to
// [0, 1] before quantization. Alpha is opaque unless the buffer carries a
// fourth channel.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			var r, g, bl, a float32
			switch b.Channels {
			case 1:
				v := b.At(y, x, 0)
				r, g, bl, a = v, v, v, 1
			case 4:
				r, g, bl, a = b.At(y, x, 0), b.At(y, x, 1), b.At(y, x, 2), b.At(y, x, 3)
			default:
				r, g, bl, a = b.At(y, x, 0), b.At(y, x, 1), b.At(y, x, 2), 1
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(r),
				G: quantize(g),
				B: quantize(bl),
				A: quantize(a),
			})
		}
	}
	return img
}

// FromImage converts an image into a 3-channel normalized buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	out := New(bounds.Dy(), bounds.Dx(), 3)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(y, x, 0, float32(r)/0xffff)
			out.Set(y, x, 1, float32(g)/0xffff)
			out.Set(y, x, 2, float32(b)/0xffff)
		}
	}
	return out
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
