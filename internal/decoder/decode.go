package decoder

// DecodeGeometry parses a single WKB buffer into a Geometry.
//
// Decoding is a pure function of the buffer's bytes: strictly single-pass,
// left-to-right, with no side effects on the input. The buffer must be
// little-endian WKB encoding one of the six supported geometry kinds.
func DecodeGeometry(buf []byte) (Geometry, error) {
	c := newCursor(buf)
	return decodeGeometry(c)
}

// decodeGeometry reads one fully-headered geometry from the cursor,
// dispatching on the type code.
func decodeGeometry(c *cursor) (Geometry, error) {
	if err := c.readByteOrder(); err != nil {
		return Geometry{}, err
	}
	code, err := c.readUint32()
	if err != nil {
		return Geometry{}, err
	}

	switch GeometryType(code) {
	case GeometryTypePoint:
		coord, err := c.readCoordinate()
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypePoint, Point: coord}, nil

	case GeometryTypeLineString:
		line, err := readPointSequence(c)
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypeLineString, Line: line}, nil

	case GeometryTypePolygon:
		rings, err := readRings(c)
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypePolygon, Rings: rings}, nil

	case GeometryTypeMultiPoint:
		n, err := c.readCount()
		if err != nil {
			return Geometry{}, err
		}
		// Counts are untrusted; grow as reads succeed instead of
		// preallocating from the declared count.
		var points []Coordinate
		for i := 0; i < n; i++ {
			if err := readNestedHeader(c, GeometryTypePoint, i); err != nil {
				return Geometry{}, err
			}
			coord, err := c.readCoordinate()
			if err != nil {
				return Geometry{}, err
			}
			points = append(points, coord)
		}
		return Geometry{Type: GeometryTypeMultiPoint, Points: points}, nil

	case GeometryTypeMultiLineString:
		n, err := c.readCount()
		if err != nil {
			return Geometry{}, err
		}
		var lines [][]Coordinate
		for i := 0; i < n; i++ {
			if err := readNestedHeader(c, GeometryTypeLineString, i); err != nil {
				return Geometry{}, err
			}
			line, err := readPointSequence(c)
			if err != nil {
				return Geometry{}, err
			}
			lines = append(lines, line)
		}
		return Geometry{Type: GeometryTypeMultiLineString, Lines: lines}, nil

	case GeometryTypeMultiPolygon:
		n, err := c.readCount()
		if err != nil {
			return Geometry{}, err
		}
		var polygons [][][]Coordinate
		for i := 0; i < n; i++ {
			if err := readNestedHeader(c, GeometryTypePolygon, i); err != nil {
				return Geometry{}, err
			}
			rings, err := readRings(c)
			if err != nil {
				return Geometry{}, err
			}
			polygons = append(polygons, rings)
		}
		return Geometry{Type: GeometryTypeMultiPolygon, Polygons: polygons}, nil

	case geometryTypeCollection:
		return Geometry{}, &ErrUnsupportedGeometryType{Code: code}

	default:
		return Geometry{}, &ErrUnknownGeometryType{Code: code}
	}
}

// readNestedHeader consumes and validates the byte-order flag and type code
// that precede each sub-geometry of a multi-geometry. Byte order is
// re-validated per element even though the format makes it redundant.
func readNestedHeader(c *cursor, want GeometryType, index int) error {
	if err := c.readByteOrder(); err != nil {
		return err
	}
	code, err := c.readUint32()
	if err != nil {
		return err
	}
	got := GeometryType(code)
	if got == want {
		return nil
	}
	if got == geometryTypeCollection {
		return &ErrUnsupportedGeometryType{Code: code}
	}
	if code == 0 || code > uint32(geometryTypeCollection) {
		return &ErrUnknownGeometryType{Code: code}
	}
	return &ErrNestedTypeMismatch{Expected: want, Got: got, Index: index}
}

// readPointSequence reads a count-prefixed run of coordinate pairs.
// Shared by LineString, by each ring of a Polygon, and by the multi
// variants of both.
func readPointSequence(c *cursor) ([]Coordinate, error) {
	n, err := c.readCount()
	if err != nil {
		return nil, err
	}
	var coords []Coordinate
	for i := 0; i < n; i++ {
		coord, err := c.readCoordinate()
		if err != nil {
			return nil, err
		}
		coords = append(coords, coord)
	}
	return coords, nil
}

// readRings reads a count-prefixed run of rings, each a point sequence.
// Ring closure is not enforced here; see ValidateGeometry for the opt-in
// strict checks.
func readRings(c *cursor) ([][]Coordinate, error) {
	n, err := c.readCount()
	if err != nil {
		return nil, err
	}
	var rings [][]Coordinate
	for i := 0; i < n; i++ {
		ring, err := readPointSequence(c)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}
