package raster

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestScaleToWidth(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		width      int
		wantW      int
		wantH      int
	}{
		{"downscale keeps aspect", 1100, 2400, 550, 550, 1200},
		{"upscale keeps aspect", 100, 50, 200, 200, 100},
		{"same width is a no-op", 550, 300, 550, 550, 300},
		{"height never drops below one", 1000, 1, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleToWidth(solid(tt.srcW, tt.srcH), tt.width)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("ScaleToWidth() = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	data, err := EncodePNG(solid(8, 4))
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img := &Image{Data: data, Width: 8, Height: 4}
	decoded, err := img.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("decoded size = %dx%d, want 8x4", b.Dx(), b.Dy())
	}
}
