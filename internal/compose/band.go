package compose

import (
	"context"

	"github.com/lixiaohui100200/html2pdf/internal/dom"
	"github.com/lixiaohui100200/html2pdf/internal/raster"
)

// Band is a header or footer element rasterized lazily and at most once per
// generation. The cache is scoped to the Band value, never shared across
// calls: build a fresh Band for every generation.
type Band struct {
	Element    dom.Element
	Rasterizer raster.Rasterizer
	// Width is the rasterization width in points (the content band width).
	Width float64

	cached *raster.Image
}

// NewBand creates a band for el, or nil when el is nil so callers can assign
// the result directly to an optional Compositor field.
func NewBand(el dom.Element, r raster.Rasterizer, width float64) *Band {
	if el == nil {
		return nil
	}
	return &Band{Element: el, Rasterizer: r, Width: width}
}

// image returns the band's bitmap, rasterizing on first use only. Repeated
// stamps across pages reuse the cached result.
func (b *Band) image(ctx context.Context) (*raster.Image, error) {
	if b.cached != nil {
		return b.cached, nil
	}
	img, err := b.Rasterizer.Rasterize(ctx, b.Element, b.Width)
	if err != nil {
		return nil, err
	}
	b.cached = img
	return img, nil
}
