package pagination

import (
	"github.com/lixiaohui100200/html2pdf/internal/dom"
)

// Scanner produces adaptive page breaks by walking a tagged element tree.
// Elements tagged with GroupAttr are containers to recurse into; elements
// tagged with ItemAttr are atomic units that are never split across a page
// boundary; untagged elements are ignored entirely.
type Scanner struct {
	// ContentWidth is the width of the page content band in points. The
	// rendered image is produced at this width, so item heights are scaled
	// by ContentWidth / root.Width().
	ContentWidth float64
	// ContentHeight is the height of the page content band in points.
	ContentHeight float64
	// ItemAttr is the attribute marking atomic elements (e.g. "data-item").
	ItemAttr string
	// GroupAttr is the attribute marking container elements (e.g. "data-group").
	GroupAttr string
}

// NewScanner creates a scanner with the given content band dimensions and
// the default item/group attribute names.
func NewScanner(contentWidth, contentHeight float64) *Scanner {
	return &Scanner{
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
		ItemAttr:      "data-item",
		GroupAttr:     "data-group",
	}
}

// Scan walks the tree rooted at root depth-first and returns the ordered
// sequence of per-page content heights. The heights sum to the total scaled
// height of all items. A single item taller than ContentHeight still becomes
// one page; it is placed alone and overflows rather than being split. A tree
// with no tagged items yields a single page of height 0.
func (s *Scanner) Scan(root dom.Element) []float64 {
	ratio := 1.0
	if rw := root.Width(); rw > 0 {
		ratio = s.ContentWidth / rw
	}

	var pages []float64
	pos := 0.0

	var walk func(el dom.Element)
	walk = func(el dom.Element) {
		if _, ok := el.Attr(s.GroupAttr); ok {
			for _, child := range el.Children() {
				walk(child)
			}
			return
		}
		if _, ok := el.Attr(s.ItemAttr); !ok {
			return
		}

		h := ratio * el.Height()
		if pos+h <= s.ContentHeight {
			pos += h
			return
		}
		// Close the current page; the item opens the next one even when it
		// alone exceeds the content height.
		pages = append(pages, pos)
		pos = h
	}
	walk(root)

	return append(pages, pos)
}
