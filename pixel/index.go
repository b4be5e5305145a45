package pixel

import (
	"sort"

	"github.com/katalvlaran/skymask/polygon"
)

// Index buckets an already pixel-sorted slice of polygons (§4.4):
// Start[p] is the index of the first polygon belonging to pixel p, and
// Total[p] is how many polygons that pixel holds. Both are sized
// maxPixel+1 over the polygons Build saw; a pixel with Total[p]==0 holds
// no polygons and Start[p] is meaningless.
type Index struct {
	Start []int
	Total []int
}

// SortByPixel stably sorts polys ascending by Pixel (the driver's stage
// 0, §4.5). Stability preserves each polygon's relative input order
// among polygons sharing a pixel, which the fragmenter's i<j/i>j
// tie-break rule (§4.2) depends on.
func SortByPixel(polys []polygon.Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Pixel < polys[j].Pixel
	})
}

// Build constructs an Index over an already pixel-sorted polys slice.
// Complexity: O(n) given the sort has already run.
func Build(polys []polygon.Polygon) Index {
	maxPixel := -1
	for _, p := range polys {
		if p.Pixel > maxPixel {
			maxPixel = p.Pixel
		}
	}
	idx := Index{
		Start: make([]int, maxPixel+1),
		Total: make([]int, maxPixel+1),
	}
	for i, p := range polys {
		if idx.Total[p.Pixel] == 0 {
			idx.Start[p.Pixel] = i
		}
		idx.Total[p.Pixel]++
	}
	return idx
}

// Bucket returns the [begin, end) index range within the slice Build saw
// for pixel p. Returns (0, 0) for a pixel id outside the range Build
// observed, which callers treat as an empty bucket.
func (idx Index) Bucket(p int) (begin, end int) {
	if p < 0 || p >= len(idx.Total) {
		return 0, 0
	}
	return idx.Start[p], idx.Start[p] + idx.Total[p]
}
