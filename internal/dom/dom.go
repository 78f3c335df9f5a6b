// Package dom defines the element-like node abstraction the pagination and
// rasterization pipeline operates on. Elements may come from a live browser
// page (internal/chrome) or from pre-measured HTML fixtures (Parse).
package dom

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Element is the minimal view of a document element the pipeline needs:
// identity, attributes, children in document order, and measured geometry in
// CSS pixels. Implementations must be safe for read-only use.
type Element interface {
	TagName() string
	Attr(name string) (string, bool)
	Children() []Element
	Width() float64
	Height() float64
}

// IsElement reports whether el is a usable element-like node.
func IsElement(el Element) bool {
	return el != nil && el.TagName() != ""
}

// Snapshot is an immutable, detached element tree with measured geometry.
// It is the concrete Element used by fixtures and by the chrome adapter's
// evaluated subtree snapshots.
type Snapshot struct {
	Tag   string
	Attrs map[string]string
	Kids  []*Snapshot
	W     float64
	H     float64
}

// TagName returns the lower-cased element tag.
func (s *Snapshot) TagName() string { return s.Tag }

// Attr returns the value of the named attribute.
func (s *Snapshot) Attr(name string) (string, bool) {
	v, ok := s.Attrs[name]
	return v, ok
}

// Children returns the element children in document order.
func (s *Snapshot) Children() []Element {
	children := make([]Element, len(s.Kids))
	for i, k := range s.Kids {
		children[i] = k
	}
	return children
}

// Width returns the measured width in CSS pixels.
func (s *Snapshot) Width() float64 { return s.W }

// Height returns the measured height in CSS pixels.
func (s *Snapshot) Height() float64 { return s.H }

// Geometry attribute names recognized by Parse. Live elements carry real
// layout geometry instead; these exist so fixture documents can state theirs.
const (
	widthAttr  = "data-width"
	heightAttr = "data-height"
)

// Parse reads an HTML document and returns the first element under <body> as
// a Snapshot tree. Geometry is taken from data-width/data-height attributes
// when present and defaults to zero, since a detached document has no layout.
func Parse(r io.Reader) (*Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	body := findBody(doc)
	if body == nil {
		return nil, ErrNoElement
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return convert(c), nil
		}
	}
	return nil, ErrNoElement
}

// ParseString parses an HTML fragment from a string.
func ParseString(content string) (*Snapshot, error) {
	return Parse(strings.NewReader(content))
}

// findBody locates the <body> element in a parsed document.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "body") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// convert builds a Snapshot from an html.Node element subtree.
func convert(n *html.Node) *Snapshot {
	s := &Snapshot{
		Tag:   strings.ToLower(n.Data),
		Attrs: make(map[string]string, len(n.Attr)),
	}
	for _, a := range n.Attr {
		s.Attrs[strings.ToLower(a.Key)] = a.Val
	}
	if v, ok := s.Attrs[widthAttr]; ok {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			s.W = w
		}
	}
	if v, ok := s.Attrs[heightAttr]; ok {
		if h, err := strconv.ParseFloat(v, 64); err == nil {
			s.H = h
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			s.Kids = append(s.Kids, convert(c))
		}
	}
	return s
}
