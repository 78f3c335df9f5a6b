package main

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlShell wraps converted Markdown so Chrome lays it out as a full page.
const htmlShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body>%s</body>
</html>`

// markdownToHTML converts Markdown source into a standalone HTML document.
func markdownToHTML(src []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown conversion: %w", err)
	}
	return []byte(fmt.Sprintf(htmlShell, buf.String())), nil
}
