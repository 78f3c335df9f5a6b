package chrome

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"

	"github.com/go-rod/rod/lib/proto"

	"github.com/lixiaohui100200/html2pdf/internal/dom"
	"github.com/lixiaohui100200/html2pdf/internal/raster"
)

// Rasterizer screenshots live elements into PNG bitmaps scaled to the
// requested width in points. It only accepts elements produced by this
// package; detached snapshots have no pixels to capture.
type Rasterizer struct{}

// Compile-time interface check
var _ raster.Rasterizer = (*Rasterizer)(nil)

// NewRasterizer creates a screenshot-based rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize captures el as a PNG, rescales it to width points (1pt per
// pixel), and reports the proportional height derived from the captured
// aspect ratio.
func (r *Rasterizer) Rasterize(ctx context.Context, el dom.Element, width float64) (*raster.Image, error) {
	handle, ok := el.(*Element)
	if !ok {
		return nil, ErrNotLive
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bin, err := handle.el.Context(ctx).Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	src, _, err := image.Decode(bytes.NewReader(bin))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty capture", ErrScreenshot)
	}

	// Screenshots come back at the device pixel ratio; normalize to the
	// placement width so one pixel maps to one point.
	scaled := raster.ScaleToWidth(src, int(math.Round(width)))
	data, err := raster.EncodePNG(scaled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	height := width * float64(bounds.Dy()) / float64(bounds.Dx())
	return &raster.Image{Data: data, Width: width, Height: height}, nil
}
