package main

import (
	"math"
	"os"

	flag "github.com/spf13/pflag"
)

// originSentinel detects whether --x/--y were explicitly set, since 0 is a
// valid origin coordinate.
var originSentinel = math.NaN()

// commonFlags holds flags shared across invocations.
type commonFlags struct {
	config  string
	verbose bool
	timeout string
}

// pageFlags holds content-band layout flags.
type pageFlags struct {
	contentWidth  float64
	contentHeight float64
	x             float64
	y             float64
}

// paginationFlags holds pagination strategy flags.
type paginationFlags struct {
	mode      string
	itemAttr  string
	groupAttr string
}

// bandFlags holds header/footer selection flags.
type bandFlags struct {
	headerSelector  string
	headerEveryPage bool
	footerSelector  string
	footerEveryPage bool
}

// cliFlags holds all flags for the command.
type cliFlags struct {
	common     commonFlags
	output     string
	outputType string
	selector   string
	page       pageFlags
	pagination paginationFlags
	bands      bandFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g. 30s, 2m)")
}

// addPageFlags adds content-band flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.Float64Var(&f.contentWidth, "content-width", 0, "content band width in points")
	fs.Float64Var(&f.contentHeight, "content-height", 0, "content band height in points")
	fs.Float64Var(&f.x, "x", originSentinel, "content box left origin (default: centered)")
	fs.Float64Var(&f.y, "y", originSentinel, "content box top origin (default: centered)")
}

// addPaginationFlags adds pagination flags to a FlagSet.
func addPaginationFlags(fs *flag.FlagSet, f *paginationFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "", "pagination mode: adaptive, fixed")
	fs.StringVar(&f.itemAttr, "item-attr", "", "attribute marking atomic elements")
	fs.StringVar(&f.groupAttr, "group-attr", "", "attribute marking container elements")
}

// addBandFlags adds header/footer flags to a FlagSet.
func addBandFlags(fs *flag.FlagSet, f *bandFlags) {
	fs.StringVar(&f.headerSelector, "header", "", "CSS selector of the header element")
	fs.BoolVar(&f.headerEveryPage, "header-every-page", false, "stamp header on every page")
	fs.StringVar(&f.footerSelector, "footer", "", "CSS selector of the footer element")
	fs.BoolVar(&f.footerEveryPage, "footer-every-page", false, "stamp footer on every page")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.outputType, "output-type", "", "artifact kind: save, file, or passthrough")
	fs.StringVarP(&f.selector, "selector", "s", "", "CSS selector of the content root (default: body)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addPaginationFlags(fs, &f.pagination)
	addBandFlags(fs, &f.bands)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
