package pixels

import (
	"image"
	"image/color"
	"testing"
)

func TestNormalizeRGB_Grayscale(t *testing.T) {
	b := New(2, 2, 1)
	b.Set(0, 0, 0, 0.5)
	b.Set(1, 1, 0, 1.0)

	out := b.NormalizeRGB()
	if out.Channels != 3 {
		t.Fatalf("expected 3 channels, got %d", out.Channels)
	}
	for c := 0; c < 3; c++ {
		if out.At(0, 0, c) != 0.5 {
			t.Errorf("channel %d at (0,0): expected 0.5, got %f", c, out.At(0, 0, c))
		}
		if out.At(1, 1, c) != 1.0 {
			t.Errorf("channel %d at (1,1): expected 1.0, got %f", c, out.At(1, 1, c))
		}
	}
}

func TestNormalizeRGB_DropsAlpha(t *testing.T) {
	b := New(1, 2, 4)
	b.Set(0, 0, 0, 0.1)
	b.Set(0, 0, 1, 0.2)
	b.Set(0, 0, 2, 0.3)
	b.Set(0, 0, 3, 0.9) // alpha, must be discarded
	b.Set(0, 1, 0, 1.0)

	out := b.NormalizeRGB()
	if out.Channels != 3 {
		t.Fatalf("expected 3 channels, got %d", out.Channels)
	}
	if out.At(0, 0, 0) != 0.1 || out.At(0, 0, 1) != 0.2 || out.At(0, 0, 2) != 0.3 {
		t.Errorf("unexpected RGB at (0,0): %f %f %f",
			out.At(0, 0, 0), out.At(0, 0, 1), out.At(0, 0, 2))
	}
	if out.At(0, 1, 0) != 1.0 {
		t.Errorf("expected second pixel R=1.0, got %f", out.At(0, 1, 0))
	}
}

func TestNormalizeRGB_ThreeChannelsUnchanged(t *testing.T) {
	b := New(1, 1, 3)
	if out := b.NormalizeRGB(); out != b {
		t.Error("expected 3-channel buffer returned as-is")
	}
}

func TestRoundTrip_ImageConversion(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	buf := FromImage(img)
	if buf.Height != 2 || buf.Width != 3 || buf.Channels != 3 {
		t.Fatalf("unexpected shape %dx%dx%d", buf.Height, buf.Width, buf.Channels)
	}

	back := buf.ToImage()
	got := back.NRGBAAt(0, 0)
	if got.R != 255 || got.B != 0 {
		t.Errorf("round trip changed pixel (0,0): %+v", got)
	}
	got = back.NRGBAAt(2, 1)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("round trip changed pixel (2,1): %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		buf     *Buffer
		wantErr bool
	}{
		{"valid rgb", New(2, 2, 3), false},
		{"valid grayscale", New(1, 1, 1), false},
		{"zero width", &Buffer{Height: 1, Width: 0, Channels: 3}, true},
		{"bad channels", &Buffer{Height: 1, Width: 1, Channels: 2, Data: make([]float32, 2)}, true},
		{"short data", &Buffer{Height: 2, Width: 2, Channels: 3, Data: make([]float32, 5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuantize_Clamps(t *testing.T) {
	b := New(1, 1, 3)
	b.Set(0, 0, 0, -0.5)
	b.Set(0, 0, 1, 1.5)
	b.Set(0, 0, 2, 0.5)

	px := b.ToImage().NRGBAAt(0, 0)
	if px.R != 0 {
		t.Errorf("expected negative value clamped to 0, got %d", px.R)
	}
	if px.G != 255 {
		t.Errorf("expected overflow clamped to 255, got %d", px.G)
	}
	if px.B != 128 {
		t.Errorf("expected 0.5 to quantize to 128, got %d", px.B)
	}
}
