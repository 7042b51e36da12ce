package wkb

// Bounds is an axis-aligned bounding box in coordinate space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersects reports whether two bounds overlap, including edge contact.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// extend grows the bounds to cover o.
func (b Bounds) extend(o Bounds) Bounds {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// boundsOfCoords computes the bounding box of a coordinate run.
// ok is false when the run is empty.
func boundsOfCoords(coords []Coordinate) (bounds Bounds, ok bool) {
	for i, c := range coords {
		if i == 0 {
			bounds = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			ok = true
			continue
		}
		bounds = bounds.extend(Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y})
	}
	return bounds, ok
}

// boundsOfTables computes the bounding box across several coordinate runs.
func boundsOfTables(tables [][]Coordinate) (bounds Bounds, ok bool) {
	for _, table := range tables {
		tb, tok := boundsOfCoords(table)
		if !tok {
			continue
		}
		if !ok {
			bounds = tb
			ok = true
			continue
		}
		bounds = bounds.extend(tb)
	}
	return bounds, ok
}

// Bounds returns the bounding box covering every element of the batch.
//
// Elements with no coordinates (empty linestrings, empty multi-geometries)
// contribute nothing. The zero Bounds is returned when no element carries
// coordinates.
func (b *Batch) Bounds() Bounds {
	return b.bounds
}

// computeBounds fills in per-element bounding boxes and the overall batch
// bounds. Element i of a Point batch is its single merged-table row; for
// every other shape it is the i-th table, path, or ring group.
func (b *Batch) computeBounds() {
	n := b.Len()
	b.elementBounds = make([]Bounds, n)
	b.elementEmpty = make([]bool, n)

	covered := false
	for i := 0; i < n; i++ {
		var eb Bounds
		var ok bool

		switch b.geometryType {
		case GeometryTypePoint:
			c := b.mergedPoints[i]
			eb = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			ok = true
		case GeometryTypeMultiPoint:
			eb, ok = boundsOfCoords(b.pointTables[i])
		case GeometryTypeLineString, GeometryTypeMultiLineString:
			eb, ok = boundsOfTables(b.paths[i].Parts)
		case GeometryTypePolygon, GeometryTypeMultiPolygon:
			eb, ok = boundsOfTables(b.ringGroups[i].Rings)
		}

		b.elementBounds[i] = eb
		b.elementEmpty[i] = !ok

		if !ok {
			continue
		}
		if !covered {
			b.bounds = eb
			covered = true
			continue
		}
		b.bounds = b.bounds.extend(eb)
	}
}
