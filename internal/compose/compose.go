// Package compose turns one tall rendered image plus a page-break sequence
// into correctly masked pages on a page canvas, stamping optional header and
// footer bands per policy.
package compose

import (
	"context"

	"github.com/lixiaohui100200/html2pdf/internal/raster"
)

// Canvas is the page-document capability the compositor drives. It is
// implemented by canvas.Document and by test fakes.
type Canvas interface {
	PlaceImage(img *raster.Image, x, y, w, h float64)
	FillRect(x, y, w, h float64)
	AddPage()
}

// Compositor places slices of a shared rendered image on consecutive pages.
// Pages are processed strictly in order because each placement offset is the
// cumulative sum of the prior entries' heights.
type Compositor struct {
	Canvas     Canvas
	PageWidth  float64
	PageHeight float64
	// BaseX, BaseY is the top-left origin of the content band on every page.
	BaseX float64
	BaseY float64

	Header          *Band
	Footer          *Band
	HeaderOnlyFirst bool
	FooterOnlyLast  bool
}

// Compose produces exactly one page per entry of heights. The shared image is
// shifted upward so the current slice aligns with the content band, spillover
// above and below the band is blanked, and bands are stamped per policy. A
// new page is appended after every entry except the last.
func (c *Compositor) Compose(ctx context.Context, img *raster.Image, heights []float64) error {
	acc := 0.0
	for i, h := range heights {
		first := i == 0
		last := i == len(heights)-1

		c.Canvas.PlaceImage(img, c.BaseX, c.BaseY-acc, img.Width, img.Height)

		if !first {
			// Erase the tail of the previous slice bleeding into the top margin.
			c.Canvas.FillRect(0, 0, c.PageWidth, c.BaseY)
		}
		if !last {
			// Erase the next slice bleeding into the bottom margin. The page's
			// own entry height is used so adaptive heights are respected.
			c.Canvas.FillRect(0, c.BaseY+h, c.PageWidth, c.PageHeight-(c.BaseY+h))
		}

		if first || !c.HeaderOnlyFirst {
			if err := c.stampHeader(ctx); err != nil {
				return err
			}
		}
		if last || !c.FooterOnlyLast {
			if err := c.stampFooter(ctx); err != nil {
				return err
			}
		}

		if !last {
			c.Canvas.AddPage()
		}
		acc += h
	}
	return nil
}

// stampHeader draws the header band at the top edge of the current page.
func (c *Compositor) stampHeader(ctx context.Context) error {
	if c.Header == nil {
		return nil
	}
	img, err := c.Header.image(ctx)
	if err != nil {
		return err
	}
	c.Canvas.PlaceImage(img, c.BaseX, 0, img.Width, img.Height)
	return nil
}

// stampFooter draws the footer band bottom-aligned on the current page.
func (c *Compositor) stampFooter(ctx context.Context) error {
	if c.Footer == nil {
		return nil
	}
	img, err := c.Footer.image(ctx)
	if err != nil {
		return err
	}
	c.Canvas.PlaceImage(img, c.BaseX, c.PageHeight-img.Height, img.Width, img.Height)
	return nil
}
