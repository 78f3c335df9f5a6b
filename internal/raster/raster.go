// Package raster defines the rasterizer capability consumed by the pipeline
// and the image value it produces. The actual rasterization backend lives in
// internal/chrome; tests substitute fakes.
package raster

import (
	"bytes"
	"context"
	"image"

	"github.com/lixiaohui100200/html2pdf/internal/dom"
)

// Image is one rendered bitmap with its placement size in points. Data holds
// PNG-encoded pixels. An Image is immutable once produced and shared
// read-only across all pages of a generation.
type Image struct {
	Data   []byte
	Width  float64
	Height float64
}

// Decode decodes the PNG pixel data.
func (i *Image) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(i.Data))
	return img, err
}

// Rasterizer converts a visual subtree into a bitmap of the requested width,
// with height derived proportionally from the element's native aspect ratio.
type Rasterizer interface {
	Rasterize(ctx context.Context, el dom.Element, width float64) (*Image, error)
}
