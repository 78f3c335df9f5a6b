package api

import (
	"github.com/lixiaohui100200/html2pdf/internal/canvas"
	"github.com/lixiaohui100200/html2pdf/internal/dom"
	"github.com/lixiaohui100200/html2pdf/internal/pagination"
)

// Fixed page format in points, portrait.
const (
	PageWidth  = canvas.PageWidth
	PageHeight = canvas.PageHeight
)

// Defaults applied by DefaultOptions and by Generate for zero values.
const (
	DefaultContentWidth  = 550
	DefaultContentHeight = 800
	DefaultFilename      = "document.pdf"
	DefaultItemAttr      = "data-item"
	DefaultGroupAttr     = "data-group"
)

// Output types understood by the output adapter. Any other value is passed
// through and yields raw PDF bytes.
const (
	OutputSave = "save"
	OutputFile = "file"
)

// Pagination modes.
const (
	ModeAdaptive = pagination.ModeAdaptive
	ModeFixed    = pagination.ModeFixed
)

// Options represents configuration options for one generation. Build it with
// DefaultOptions or NewOptions; a literal zero Options is not supported
// because the band policies default to true.
type Options struct {
	// Element is the root content node to rasterize and paginate (required).
	Element dom.Element

	// Content band dimensions in points.
	ContentWidth  float64
	ContentHeight float64

	// OutputType selects the artifact kind: "save", "file", or passthrough.
	OutputType string
	// Filename is used by the save and file output types.
	Filename string

	// X, Y override the content-box origin; nil centers the box on the page.
	X *float64
	Y *float64

	// Header, Footer are optional elements stamped per policy.
	Header dom.Element
	Footer dom.Element
	// HeaderOnlyFirst restricts the header to the first page.
	HeaderOnlyFirst bool
	// FooterOnlyLast restricts the footer to the last page.
	FooterOnlyLast bool

	// Mode selects the pagination strategy: "adaptive" (default) or "fixed".
	// Unrecognized values fall back to fixed.
	Mode string
	// ItemAttr, GroupAttr are the attribute keys tagging atomic and
	// container layout nodes.
	ItemAttr  string
	GroupAttr string

	// Debug enables progress logging to stdout.
	Debug bool
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		ContentWidth:    DefaultContentWidth,
		ContentHeight:   DefaultContentHeight,
		OutputType:      OutputSave,
		Filename:        DefaultFilename,
		HeaderOnlyFirst: true,
		FooterOnlyLast:  true,
		Mode:            ModeAdaptive,
		ItemAttr:        DefaultItemAttr,
		GroupAttr:       DefaultGroupAttr,
	}
}

// NewOptions builds Options for el from the defaults plus the given option
// functions.
func NewOptions(el dom.Element, opts ...Option) Options {
	o := DefaultOptions()
	o.Element = el
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// normalize fills zero-valued fields that have non-zero defaults.
func (o *Options) normalize() {
	if o.ContentWidth <= 0 {
		o.ContentWidth = DefaultContentWidth
	}
	if o.ContentHeight <= 0 {
		o.ContentHeight = DefaultContentHeight
	}
	if o.OutputType == "" {
		o.OutputType = OutputSave
	}
	if o.Filename == "" {
		o.Filename = DefaultFilename
	}
	if o.ItemAttr == "" {
		o.ItemAttr = DefaultItemAttr
	}
	if o.GroupAttr == "" {
		o.GroupAttr = DefaultGroupAttr
	}
}

// WithContentSize sets the content band dimensions in points.
func WithContentSize(width, height float64) Option {
	return func(o *Options) {
		o.ContentWidth = width
		o.ContentHeight = height
	}
}

// WithOutputType sets the artifact kind.
func WithOutputType(kind string) Option {
	return func(o *Options) {
		o.OutputType = kind
	}
}

// WithFilename sets the name used by the save and file output types.
func WithFilename(name string) Option {
	return func(o *Options) {
		o.Filename = name
	}
}

// WithPosition sets an explicit content-box origin instead of centering.
func WithPosition(x, y float64) Option {
	return func(o *Options) {
		o.X = &x
		o.Y = &y
	}
}

// WithHeader sets the header element and its inclusion policy.
func WithHeader(el dom.Element, onlyFirst bool) Option {
	return func(o *Options) {
		o.Header = el
		o.HeaderOnlyFirst = onlyFirst
	}
}

// WithFooter sets the footer element and its inclusion policy.
func WithFooter(el dom.Element, onlyLast bool) Option {
	return func(o *Options) {
		o.Footer = el
		o.FooterOnlyLast = onlyLast
	}
}

// WithMode sets the pagination strategy.
func WithMode(mode string) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithLayoutAttrs sets the attribute keys identifying item and group nodes.
func WithLayoutAttrs(itemAttr, groupAttr string) Option {
	return func(o *Options) {
		o.ItemAttr = itemAttr
		o.GroupAttr = groupAttr
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}
