// Package canvas wraps fpdf behind the small page-document surface the
// compositor needs: absolute image placement, opaque rectangle fills,
// explicit page breaks, and serialization.
package canvas

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"

	"github.com/lixiaohui100200/html2pdf/internal/raster"
)

// Fixed page format in points, portrait. All placement coordinates are
// expressed in this unit and bounded by the page rectangle.
const (
	PageWidth  = 592.28
	PageHeight = 841.89
)

// Document is a stateful multi-page PDF under construction. Not safe for
// concurrent use; create one per generation.
type Document struct {
	pdf    *fpdf.Fpdf
	images map[*raster.Image]string
}

// New creates a document with the fixed page format and one open page.
func New() *Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	return &Document{
		pdf:    pdf,
		images: make(map[*raster.Image]string),
	}
}

// PlaceImage draws img on the current page with its top-left corner at
// (x, y) and the given placement size in points. The same image may be
// placed on many pages; its pixel data is registered once.
func (d *Document) PlaceImage(img *raster.Image, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}

	name, ok := d.images[img]
	if !ok {
		name = fmt.Sprintf("img%d", len(d.images))
		d.images[img] = name
		d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	}
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// FillRect paints an opaque white rectangle on the current page.
func (d *Document) FillRect(x, y, w, h float64) {
	d.pdf.SetFillColor(255, 255, 255)
	d.pdf.Rect(x, y, w, h, "F")
}

// AddPage appends a new page and makes it current.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// PageCount returns the number of pages added so far.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Err returns the first error recorded by the underlying PDF builder, if any.
func (d *Document) Err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

// Output serializes the document to w and closes it.
func (d *Document) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// Bytes serializes the document and returns the raw PDF bytes.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveFile serializes the document to the given path, creating the parent
// directory when needed.
func (d *Document) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return d.pdf.OutputFileAndClose(path)
}
