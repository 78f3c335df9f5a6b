// Package pagination decides where a tall rendered document is cut into
// pages. The adaptive scanner honors item/group tags so atomic content is
// never split; the fixed pager slices by uniform height.
package pagination

import (
	"github.com/lixiaohui100200/html2pdf/internal/dom"
)

// Pagination modes.
const (
	ModeAdaptive = "adaptive"
	ModeFixed    = "fixed"
)

// Options represents options for the pagination engine
type Options struct {
	ContentWidth  float64
	ContentHeight float64
	Mode          string
	ItemAttr      string
	GroupAttr     string
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			ContentWidth:  550,
			ContentHeight: 800,
			Mode:          ModeAdaptive,
			ItemAttr:      "data-item",
			GroupAttr:     "data-group",
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Paginate returns the per-page content heights for the element tree rooted
// at root, whose rendered image is imageHeight points tall. Mode "adaptive"
// (and "") uses the tag-aware scanner; any other value falls back to fixed
// slicing.
func (e *Engine) Paginate(root dom.Element, imageHeight float64) []float64 {
	switch e.options.Mode {
	case ModeAdaptive, "":
		scanner := NewScanner(e.options.ContentWidth, e.options.ContentHeight)
		if e.options.ItemAttr != "" {
			scanner.ItemAttr = e.options.ItemAttr
		}
		if e.options.GroupAttr != "" {
			scanner.GroupAttr = e.options.GroupAttr
		}
		return scanner.Scan(root)
	default:
		return Fixed(imageHeight, e.options.ContentHeight)
	}
}
