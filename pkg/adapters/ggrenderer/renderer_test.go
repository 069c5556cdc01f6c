package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/framecast/pkg/ports"
)

// gradient builds an image whose pixel at (x, y) encodes its own row index,
// so crop correctness can be checked row by row.
func gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y % 256), G: uint8(x % 256), B: 0, A: 255})
		}
	}
	return img
}

func TestCrop_Dimensions(t *testing.T) {
	r := New()
	src := gradient(200, 187) // 100 requested + 87 compensation

	cropped := r.Crop(src, 200, 100)
	bounds := cropped.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("expected 200x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCrop_BottomRowMatchesSource(t *testing.T) {
	r := New()
	height := 100
	offset := 87
	src := gradient(64, height+offset)

	cropped := r.Crop(src, 64, height)

	// The cropped bottom row must be the source's row height-1, not any row
	// from the discarded compensation region.
	wantR := uint8((height - 1) % 256)
	got := color.NRGBAModel.Convert(cropped.At(10, height-1)).(color.NRGBA)
	if got.R != wantR {
		t.Errorf("bottom row: expected source row %d (R=%d), got R=%d", height-1, wantR, got.R)
	}
}

func TestCrop_ClampsOversizedRequest(t *testing.T) {
	r := New()
	src := gradient(50, 40)

	cropped := r.Crop(src, 100, 100)
	bounds := cropped.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 40 {
		t.Errorf("expected clamp to 50x40, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestEncodeDecode_PNGRoundTrip(t *testing.T) {
	r := New()
	src := gradient(20, 20)

	data, err := r.EncodeImage(src, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v != %v", decoded.Bounds(), src.Bounds())
	}
}

func TestResizeImage(t *testing.T) {
	r := New()
	src := gradient(100, 100)

	resized := r.ResizeImage(src, 50, 25)
	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("expected 50x25, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCircleMask_CornersTransparent(t *testing.T) {
	r := New()
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}

	masked := r.CircleMask(src)

	_, _, _, a := masked.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	_, _, _, a = masked.At(20, 20).RGBA()
	if a == 0 {
		t.Error("expected opaque center")
	}
}
