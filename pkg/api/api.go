// Package api is the public entry point: it validates input, rasterizes the
// document root once, selects a pagination strategy, drives the page
// compositor, and hands the finished document to the output adapter.
package api

import (
	"context"
	"fmt"
	"io"

	"github.com/lixiaohui100200/html2pdf/internal/canvas"
	"github.com/lixiaohui100200/html2pdf/internal/chrome"
	"github.com/lixiaohui100200/html2pdf/internal/compose"
	"github.com/lixiaohui100200/html2pdf/internal/dom"
	"github.com/lixiaohui100200/html2pdf/internal/output"
	"github.com/lixiaohui100200/html2pdf/internal/pagination"
	"github.com/lixiaohui100200/html2pdf/internal/raster"
)

// Generator converts element trees into multi-page PDFs. A Generator may be
// reused for sequential generations; every call gets a fresh page document
// and fresh header/footer caches. Concurrent calls need separate Generators.
type Generator struct {
	rasterizer raster.Rasterizer
}

// New creates a Generator backed by the headless-Chrome rasterizer.
func New() *Generator {
	return NewWithRasterizer(chrome.NewRasterizer())
}

// NewWithRasterizer creates a Generator using a custom rasterizer backend.
func NewWithRasterizer(r raster.Rasterizer) *Generator {
	return &Generator{rasterizer: r}
}

// Close releases the rasterizer's resources when it holds any.
func (g *Generator) Close() error {
	if c, ok := g.rasterizer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Generate produces the PDF described by opts. The element is validated
// before any rasterization; rasterizer failures propagate unmodified. Either
// a complete artifact is returned or the call fails with no artifact.
func (g *Generator) Generate(ctx context.Context, opts Options) (*output.Result, error) {
	if !dom.IsElement(opts.Element) {
		return nil, fmt.Errorf("%w: content root must be an element", ErrInvalidElement)
	}
	opts.normalize()

	img, err := g.rasterizer.Rasterize(ctx, opts.Element, opts.ContentWidth)
	if err != nil {
		return nil, err
	}

	baseX := (canvas.PageWidth - opts.ContentWidth) / 2
	if opts.X != nil {
		baseX = *opts.X
	}
	baseY := (canvas.PageHeight - opts.ContentHeight) / 2
	if opts.Y != nil {
		baseY = *opts.Y
	}

	engine := pagination.NewEngine()
	engine.SetOptions(pagination.Options{
		ContentWidth:  opts.ContentWidth,
		ContentHeight: opts.ContentHeight,
		Mode:          opts.Mode,
		ItemAttr:      opts.ItemAttr,
		GroupAttr:     opts.GroupAttr,
	})
	heights := engine.Paginate(opts.Element, img.Height)

	doc := canvas.New()
	compositor := &compose.Compositor{
		Canvas:          doc,
		PageWidth:       canvas.PageWidth,
		PageHeight:      canvas.PageHeight,
		BaseX:           baseX,
		BaseY:           baseY,
		Header:          compose.NewBand(opts.Header, g.rasterizer, opts.ContentWidth),
		Footer:          compose.NewBand(opts.Footer, g.rasterizer, opts.ContentWidth),
		HeaderOnlyFirst: opts.HeaderOnlyFirst,
		FooterOnlyLast:  opts.FooterOnlyLast,
	}
	if err := compositor.Compose(ctx, img, heights); err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}

	if opts.Debug {
		fmt.Printf("Composed %d pages (%.2fpt rendered height)\n", doc.PageCount(), img.Height)
	}

	return output.Write(doc, opts.OutputType, opts.Filename)
}
