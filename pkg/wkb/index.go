package wkb

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// batchIndex provides O(log n) element queries using an R-tree,
// compared to linear O(n) scan over element bounds.
type batchIndex struct {
	rtree *rtreego.Rtree
}

// indexedElement wraps one batch element for R-tree storage.
type indexedElement struct {
	index  int
	bounds Bounds
}

// Bounds implements rtreego.Spatial.
func (e *indexedElement) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinX, e.bounds.MinY}

	// R-tree requires non-zero dimensions; pad degenerate (point or
	// axis-aligned) boxes with a small epsilon.
	const epsilon = 0.0001
	xLength := e.bounds.MaxX - e.bounds.MinX
	yLength := e.bounds.MaxY - e.bounds.MinY
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	lengths := []float64{xLength, yLength}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// buildIndex creates the R-tree over every non-empty element.
// Must run after computeBounds.
func (b *Batch) buildIndex() {
	if b.Len() == 0 {
		return
	}

	rtree := rtreego.NewTree(2, 25, 50)
	inserted := 0
	for i := range b.elementBounds {
		if b.elementEmpty[i] {
			continue
		}
		rtree.Insert(&indexedElement{index: i, bounds: b.elementBounds[i]})
		inserted++
	}
	if inserted == 0 {
		return
	}

	b.index = &batchIndex{rtree: rtree}
}

// ElementsInBounds returns the indexes of batch elements whose bounding
// boxes intersect the given bounds, in ascending index order.
//
// Elements with no coordinates are never returned. Index i corresponds to
// identifier Identifiers()[i] and to row/element i of the shape accessors.
func (b *Batch) ElementsInBounds(bounds Bounds) []int {
	if b.index == nil || b.index.rtree == nil {
		return b.elementsInBoundsLinear(bounds)
	}

	point := rtreego.Point{bounds.MinX, bounds.MinY}
	lengths := []float64{
		bounds.MaxX - bounds.MinX,
		bounds.MaxY - bounds.MinY,
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		// Degenerate query box, fall back to the exact linear test
		return b.elementsInBoundsLinear(bounds)
	}

	spatials := b.index.rtree.SearchIntersect(queryRect)

	// The epsilon padding on degenerate rects can admit near misses;
	// re-check against the exact element bounds.
	result := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedElement)
		if bounds.Intersects(indexed.bounds) {
			result = append(result, indexed.index)
		}
	}
	sort.Ints(result)

	return result
}

// elementsInBoundsLinear scans element bounds directly when no R-tree is
// available.
func (b *Batch) elementsInBoundsLinear(bounds Bounds) []int {
	var result []int
	for i := range b.elementBounds {
		if b.elementEmpty[i] {
			continue
		}
		if bounds.Intersects(b.elementBounds[i]) {
			result = append(result, i)
		}
	}
	return result
}
