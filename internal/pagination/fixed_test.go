package pagination

import "testing"

func TestFixed(t *testing.T) {
	tests := []struct {
		name          string
		height        float64
		contentHeight float64
		wantPages     int
	}{
		{"remainder adds a page", 2000, 800, 3},
		{"exact multiple", 1600, 800, 2},
		{"shorter than one page", 500, 800, 1},
		{"exact single page", 800, 800, 1},
		{"zero height still yields one page", 0, 800, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fixed(tt.height, tt.contentHeight)
			if len(got) != tt.wantPages {
				t.Fatalf("Fixed() returned %d pages, want %d", len(got), tt.wantPages)
			}
			for i, h := range got {
				if h != tt.contentHeight {
					t.Errorf("page %d height = %v, want nominal %v", i, h, tt.contentHeight)
				}
			}
		})
	}
}

func TestEnginePaginateModeDispatch(t *testing.T) {
	// One 300pt item on a 550pt-wide root; rendered image 2000pt tall.
	root := group(550, item(300))

	tests := []struct {
		name string
		mode string
		want int
	}{
		{"adaptive by name", ModeAdaptive, 1},
		{"empty mode defaults to adaptive", "", 1},
		{"fixed by name", ModeFixed, 3},
		{"unrecognized mode falls back to fixed", "bogus", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			e.SetOptions(Options{
				ContentWidth:  550,
				ContentHeight: 800,
				Mode:          tt.mode,
			})
			got := e.Paginate(root, 2000)
			if len(got) != tt.want {
				t.Errorf("Paginate() returned %d pages, want %d", len(got), tt.want)
			}
		})
	}
}
