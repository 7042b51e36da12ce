package decoder

// GeometryType identifies which WKB geometry kind a buffer encodes.
// Values match the OGC WKB type codes.
type GeometryType uint32

const (
	// GeometryTypePoint is a single coordinate pair (WKB code 1).
	GeometryTypePoint GeometryType = 1

	// GeometryTypeLineString is an ordered coordinate sequence (WKB code 2).
	GeometryTypeLineString GeometryType = 2

	// GeometryTypePolygon is a ring sequence; ring 0 is the exterior
	// boundary, the rest are holes (WKB code 3).
	GeometryTypePolygon GeometryType = 3

	// GeometryTypeMultiPoint is a sequence of fully-headered points (WKB code 4).
	GeometryTypeMultiPoint GeometryType = 4

	// GeometryTypeMultiLineString is a sequence of fully-headered
	// linestrings (WKB code 5).
	GeometryTypeMultiLineString GeometryType = 5

	// GeometryTypeMultiPolygon is a sequence of fully-headered polygons
	// (WKB code 6).
	GeometryTypeMultiPolygon GeometryType = 6

	// geometryTypeCollection (WKB code 7) is a recognized OGC type that
	// this decoder does not support.
	geometryTypeCollection GeometryType = 7
)

// String returns the OGC name of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	case GeometryTypeMultiLineString:
		return "MultiLineString"
	case GeometryTypeMultiPolygon:
		return "MultiPolygon"
	case geometryTypeCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Coordinate is one (x, y) position.
//
// Values are taken from the wire as-is; no range or finiteness check is
// applied during decoding.
type Coordinate struct {
	X, Y float64
}

// Geometry is a tagged union over the six supported WKB kinds.
//
// Type selects which variant field is populated; all other variant fields
// stay zero. Decoded geometries are never mutated after construction.
type Geometry struct {
	Type GeometryType

	// Point is set when Type == GeometryTypePoint.
	Point Coordinate

	// Line is set when Type == GeometryTypeLineString.
	// WKB permits zero-length encodings, so Line may be empty.
	Line []Coordinate

	// Rings is set when Type == GeometryTypePolygon. Ring 0 is the
	// exterior boundary; ring order is trusted as encoded.
	Rings [][]Coordinate

	// Points is set when Type == GeometryTypeMultiPoint.
	Points []Coordinate

	// Lines is set when Type == GeometryTypeMultiLineString.
	Lines [][]Coordinate

	// Polygons is set when Type == GeometryTypeMultiPolygon.
	// One ring sequence per polygon.
	Polygons [][][]Coordinate
}
