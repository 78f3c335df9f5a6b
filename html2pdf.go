// Package html2pdf converts a measured document-element tree into a
// multi-page PDF: the root is rasterized once and the tall bitmap is sliced
// across pages without cutting tagged atomic items in half.
package html2pdf

import (
	"github.com/lixiaohui100200/html2pdf/internal/chrome"
	"github.com/lixiaohui100200/html2pdf/internal/dom"
	"github.com/lixiaohui100200/html2pdf/internal/output"
	"github.com/lixiaohui100200/html2pdf/internal/raster"
	"github.com/lixiaohui100200/html2pdf/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option

// Element is the node abstraction the pipeline consumes: live browser
// elements (Browser/Page) and parsed fixture snapshots both implement it.
type Element = dom.Element
type Snapshot = dom.Snapshot

// Rasterizer is the capability converting an element subtree into a bitmap.
type Rasterizer = raster.Rasterizer
type Image = raster.Image

// Result is the artifact of one generation; File its in-memory file form.
type Result = output.Result
type File = output.File

// Browser and Page expose the headless-Chrome adapter for loading documents
// and picking elements to convert.
type Browser = chrome.Browser
type Page = chrome.Page

func New() *Generator                           { return api.New() }
func NewWithRasterizer(r Rasterizer) *Generator { return api.NewWithRasterizer(r) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	NewOptions      = api.NewOptions
	WithContentSize = api.WithContentSize
	WithOutputType  = api.WithOutputType
	WithFilename    = api.WithFilename
	WithPosition    = api.WithPosition
	WithHeader      = api.WithHeader
	WithFooter      = api.WithFooter
	WithMode        = api.WithMode
	WithLayoutAttrs = api.WithLayoutAttrs
	WithDebug       = api.WithDebug

	// Parse and ParseString build pre-measured Snapshot trees from HTML
	// carrying data-width/data-height attributes.
	Parse       = dom.Parse
	ParseString = dom.ParseString

	// NewBrowser starts a lazily-connected headless Chrome session.
	NewBrowser = chrome.NewBrowser
)

var ErrInvalidElement = api.ErrInvalidElement

const (
	PageWidth  = api.PageWidth
	PageHeight = api.PageHeight

	OutputSave = api.OutputSave
	OutputFile = api.OutputFile

	ModeAdaptive = api.ModeAdaptive
	ModeFixed    = api.ModeFixed
)
