package chrome

import (
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"

	"github.com/lixiaohui100200/html2pdf/internal/dom"
)

// snapshotJS serializes an element subtree with its layout geometry. Geometry
// is read once here so the Go side walks a stable tree even if the page keeps
// mutating.
const snapshotJS = `() => {
	const snap = (el) => ({
		tag: el.tagName.toLowerCase(),
		attrs: Object.fromEntries(Array.from(el.attributes).map((a) => [a.name, a.value])),
		width: el.offsetWidth,
		height: el.offsetHeight,
		children: Array.from(el.children).map(snap),
	});
	return JSON.stringify(snap(this));
}`

// snapNode mirrors the JSON produced by snapshotJS.
type snapNode struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs"`
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`
	Children []*snapNode       `json:"children"`
}

// Element is a live browser element paired with a measured snapshot of its
// subtree. The snapshot serves the dom.Element interface; the live handle is
// kept for screenshots.
type Element struct {
	el   *rod.Element
	snap *dom.Snapshot
}

// Compile-time interface check
var _ dom.Element = (*Element)(nil)

// Element finds the first element matching the CSS selector and snapshots
// its subtree geometry.
func (p *Page) Element(selector string) (*Element, error) {
	el, err := p.page.Element(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrElementFind, selector, err)
	}
	return newElement(el)
}

// newElement wraps a rod element, evaluating the subtree snapshot.
func newElement(el *rod.Element) (*Element, error) {
	obj, err := el.Eval(snapshotJS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	var node snapNode
	if err := json.Unmarshal([]byte(obj.Value.Str()), &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	return &Element{el: el, snap: toSnapshot(&node)}, nil
}

// toSnapshot converts the decoded JSON tree to a dom.Snapshot tree.
func toSnapshot(n *snapNode) *dom.Snapshot {
	s := &dom.Snapshot{
		Tag:   n.Tag,
		Attrs: n.Attrs,
		W:     n.Width,
		H:     n.Height,
	}
	if s.Attrs == nil {
		s.Attrs = map[string]string{}
	}
	for _, c := range n.Children {
		s.Kids = append(s.Kids, toSnapshot(c))
	}
	return s
}

// TagName returns the lower-cased element tag.
func (e *Element) TagName() string { return e.snap.TagName() }

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) { return e.snap.Attr(name) }

// Children returns the measured element children in document order.
func (e *Element) Children() []dom.Element { return e.snap.Children() }

// Width returns the measured width in CSS pixels.
func (e *Element) Width() float64 { return e.snap.Width() }

// Height returns the measured height in CSS pixels.
func (e *Element) Height() float64 { return e.snap.Height() }
