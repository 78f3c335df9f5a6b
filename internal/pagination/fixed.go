package pagination

import "math"

// Fixed slices a total content height into uniform pages of contentHeight
// each, ignoring content semantics. Every entry carries the nominal
// contentHeight; the compositor masks the shorter remainder on the last page
// instead of shortening the entry. At least one page is always produced.
func Fixed(height, contentHeight float64) []float64 {
	count := 1
	if contentHeight > 0 {
		count = int(math.Ceil(height / contentHeight))
		if count < 1 {
			count = 1
		}
	}

	pages := make([]float64, count)
	for i := range pages {
		pages[i] = contentHeight
	}
	return pages
}
