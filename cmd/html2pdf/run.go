package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixiaohui100200/html2pdf/internal/chrome"
	"github.com/lixiaohui100200/html2pdf/pkg/api"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput   = errors.New("usage: html2pdf [flags] <input.html|input.md|url>")
	ErrReadInput = errors.New("failed to read input file")
)

// printUsage writes the usage banner and flag help.
func printUsage(w io.Writer, fs interface{ FlagUsages() string }) {
	fmt.Fprintln(w, "usage: html2pdf [flags] <input.html|input.md|url>")
	fmt.Fprint(w, fs.FlagUsages())
}

// run loads the input document in headless Chrome and generates the PDF.
func run(flags *cliFlags, args []string) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	input := args[0]

	cfg := DefaultConfig()
	if flags.common.config != "" {
		loaded, err := LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cfg, flags)
	if cfg.Output.Filename == "" {
		cfg.Output.Filename = defaultOutputName(input)
	}

	timeout := chrome.DefaultTimeout
	if flags.common.timeout != "" {
		d, err := time.ParseDuration(flags.common.timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		timeout = d
	}

	url, cleanup, err := resolveInput(input)
	if err != nil {
		return err
	}
	defer cleanup()

	browser := chrome.NewBrowser(timeout)
	defer browser.Close()

	ctx := context.Background()
	page, err := browser.Open(ctx, url)
	if err != nil {
		return err
	}
	defer page.Close()

	selector := cfg.Selector
	if selector == "" {
		selector = "body"
	}
	root, err := page.Element(selector)
	if err != nil {
		return err
	}

	opts := api.NewOptions(root,
		api.WithFilename(cfg.Output.Filename),
		api.WithDebug(flags.common.verbose),
	)
	if cfg.Output.Type != "" {
		opts.OutputType = cfg.Output.Type
	}
	if cfg.Page.ContentWidth > 0 {
		opts.ContentWidth = cfg.Page.ContentWidth
	}
	if cfg.Page.ContentHeight > 0 {
		opts.ContentHeight = cfg.Page.ContentHeight
	}
	opts.X = cfg.Page.X
	opts.Y = cfg.Page.Y
	if cfg.Pagination.Mode != "" {
		opts.Mode = cfg.Pagination.Mode
	}
	if cfg.Pagination.ItemAttr != "" {
		opts.ItemAttr = cfg.Pagination.ItemAttr
	}
	if cfg.Pagination.GroupAttr != "" {
		opts.GroupAttr = cfg.Pagination.GroupAttr
	}
	if cfg.Header.Selector != "" {
		header, err := page.Element(cfg.Header.Selector)
		if err != nil {
			return err
		}
		opts.Header = header
		opts.HeaderOnlyFirst = !cfg.Header.EveryPage
	}
	if cfg.Footer.Selector != "" {
		footer, err := page.Element(cfg.Footer.Selector)
		if err != nil {
			return err
		}
		opts.Footer = footer
		opts.FooterOnlyLast = !cfg.Footer.EveryPage
	}

	generator := api.NewWithRasterizer(chrome.NewRasterizer())
	result, err := generator.Generate(ctx, opts)
	if err != nil {
		return err
	}

	switch result.Kind {
	case api.OutputSave:
		fmt.Printf("Created %s\n", result.Path)
	case api.OutputFile:
		if err := os.WriteFile(result.File.Name, result.File.Data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", result.File.Name)
	default:
		if _, err := os.Stdout.Write(result.Data); err != nil {
			return err
		}
	}
	return nil
}

// resolveInput turns the CLI input argument into a URL Chrome can open.
// Markdown files are converted to a temporary HTML document first; the
// returned cleanup removes it.
func resolveInput(input string) (string, func(), error) {
	noop := func() {}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input, noop, nil
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	ext := strings.ToLower(filepath.Ext(abs))
	if ext != ".md" && ext != ".markdown" {
		return "file://" + abs, noop, nil
	}

	src, err := os.ReadFile(abs) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	html, err := markdownToHTML(src)
	if err != nil {
		return "", noop, err
	}

	tmp, err := os.CreateTemp("", "html2pdf-*.html")
	if err != nil {
		return "", noop, err
	}
	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", noop, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", noop, err
	}
	return "file://" + tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

// defaultOutputName derives the PDF name from the input path or URL.
func defaultOutputName(input string) string {
	base := filepath.Base(strings.TrimSuffix(input, "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	ext := filepath.Ext(base)
	if ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if base == "" || base == "." {
		return api.DefaultFilename
	}
	return base + ".pdf"
}
