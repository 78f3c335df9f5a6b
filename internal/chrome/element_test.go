package chrome

import (
	"encoding/json"
	"testing"
)

func TestToSnapshot(t *testing.T) {
	payload := `{
		"tag": "div",
		"attrs": {"id": "report", "data-group": ""},
		"width": 1100,
		"height": 2400,
		"children": [
			{"tag": "section", "attrs": {"data-item": ""}, "width": 1100, "height": 600, "children": []},
			{"tag": "section", "attrs": null, "width": 1100, "height": 1800, "children": null}
		]
	}`

	var node snapNode
	if err := json.Unmarshal([]byte(payload), &node); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	snap := toSnapshot(&node)

	if snap.TagName() != "div" {
		t.Errorf("TagName() = %q, want div", snap.TagName())
	}
	if snap.Width() != 1100 || snap.Height() != 2400 {
		t.Errorf("geometry = %vx%v, want 1100x2400", snap.Width(), snap.Height())
	}
	if _, ok := snap.Attr("data-group"); !ok {
		t.Error("data-group attribute lost in conversion")
	}

	kids := snap.Children()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	if _, ok := kids[0].Attr("data-item"); !ok {
		t.Error("child data-item attribute lost in conversion")
	}
	if kids[1].Height() != 1800 {
		t.Errorf("second child height = %v, want 1800", kids[1].Height())
	}
	// Null attrs from the page decode to an empty, queryable map.
	if _, ok := kids[1].Attr("anything"); ok {
		t.Error("Attr() on attribute-less element reported a value")
	}
	if len(kids[1].Children()) != 0 {
		t.Errorf("leaf children = %d, want 0", len(kids[1].Children()))
	}
}
