package dom

import (
	"errors"
	"testing"
)

func TestParseString(t *testing.T) {
	html := `<!DOCTYPE html>
<html><body>
  <div id="root" data-group data-width="1100" data-height="2400">
    <section data-item data-height="600">First</section>
    <section data-item data-height="1800">
      <p>Untagged child</p>
    </section>
  </div>
</body></html>`

	root, err := ParseString(html)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if root.TagName() != "div" {
		t.Errorf("TagName() = %q, want %q", root.TagName(), "div")
	}
	if root.Width() != 1100 || root.Height() != 2400 {
		t.Errorf("geometry = (%v, %v), want (1100, 2400)", root.Width(), root.Height())
	}
	if _, ok := root.Attr("data-group"); !ok {
		t.Error("Attr(data-group) not found")
	}

	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(kids))
	}
	if kids[0].Height() != 600 {
		t.Errorf("first child height = %v, want 600", kids[0].Height())
	}
	if kids[1].Height() != 1800 {
		t.Errorf("second child height = %v, want 1800", kids[1].Height())
	}
	// Text nodes are dropped; only the <p> element survives.
	if got := len(kids[1].Children()); got != 1 {
		t.Errorf("nested children = %d, want 1", got)
	}
}

func TestParseStringNoElement(t *testing.T) {
	_, err := ParseString("just text, no elements")
	if !errors.Is(err, ErrNoElement) {
		t.Errorf("error = %v, want ErrNoElement", err)
	}
}

func TestParseStringMissingGeometryDefaultsToZero(t *testing.T) {
	root, err := ParseString(`<div data-item></div>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if root.Width() != 0 || root.Height() != 0 {
		t.Errorf("geometry = (%v, %v), want (0, 0)", root.Width(), root.Height())
	}
}

func TestIsElement(t *testing.T) {
	if IsElement(nil) {
		t.Error("IsElement(nil) = true, want false")
	}
	if IsElement(&Snapshot{}) {
		t.Error("IsElement(empty tag) = true, want false")
	}
	if !IsElement(&Snapshot{Tag: "div"}) {
		t.Error("IsElement(div) = false, want true")
	}
}
