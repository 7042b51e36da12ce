package decoder

import (
	"fmt"
	"strconv"
)

// CRSUnknown marks a batch whose coordinate reference system was not
// supplied. The CRS is an opaque descriptor, passed through to the
// container builder without interpretation.
const CRSUnknown = "unknown"

// Batch is the aggregate result of decoding one homogeneous set of WKB
// buffers. Exactly one shape field is populated, selected by Type:
//
//   - Point: MergedPoints holds every input coordinate, in input order.
//   - MultiPoint: PointTables holds one coordinate table per input element.
//   - LineString / MultiLineString: Paths holds one path per element.
//   - Polygon / MultiPolygon: RingGroups holds one ring group per element.
//
// Plain MultiPoint batches deliberately stay split per input element while
// every other kind merges into a single combined container; the builder
// collaborator depends on that asymmetry.
type Batch struct {
	Type        GeometryType
	Identifiers []string
	CRS         string

	MergedPoints []Coordinate
	PointTables  [][]Coordinate
	Paths        []Path
	RingGroups   []RingGroup
}

// Path is one line element: an identifier and one or more point sequences.
// A LineString input yields a single part; a MultiLineString yields one
// part per member line.
type Path struct {
	Identifier string
	Parts      [][]Coordinate
}

// RingGroup is one polygon element: an identifier and its rings. A
// MultiPolygon input flattens its polygons' rings in encoded order.
type RingGroup struct {
	Identifier string
	Rings      [][]Coordinate
}

// DefaultIdentifiers returns the positional identifiers "1".."n".
func DefaultIdentifiers(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

// CheckBatchInput validates batch preconditions before any decoding is
// attempted. identifiers may be nil, in which case positional identifiers
// are assigned later.
func CheckBatchInput(buffers [][]byte, identifiers []string) error {
	if len(buffers) == 0 {
		return &ErrInvalidInput{Reason: "no buffers to decode"}
	}
	if identifiers != nil && len(identifiers) != len(buffers) {
		return &ErrInvalidInput{Reason: fmt.Sprintf(
			"%d identifiers for %d buffers", len(identifiers), len(buffers))}
	}
	for i, buf := range buffers {
		if buf == nil {
			return &ErrInvalidInput{Reason: fmt.Sprintf("buffer %d is nil", i)}
		}
	}
	return nil
}

// DecodeBatch decodes every buffer independently, checks the results share
// one geometry type, and folds them into the Batch shape for that type.
//
// identifiers may be nil (positional "1".."n" are assigned) and crs may be
// empty (CRSUnknown is used). Any failure aborts the whole batch; no
// partial result is ever returned.
func DecodeBatch(buffers [][]byte, identifiers []string, crs string) (*Batch, error) {
	if err := CheckBatchInput(buffers, identifiers); err != nil {
		return nil, err
	}
	if identifiers == nil {
		identifiers = DefaultIdentifiers(len(buffers))
	}
	if crs == "" {
		crs = CRSUnknown
	}

	geoms := make([]Geometry, len(buffers))
	for i, buf := range buffers {
		g, err := DecodeGeometry(buf)
		if err != nil {
			return nil, fmt.Errorf("element %d (%q): %w", i, identifiers[i], err)
		}
		geoms[i] = g
	}

	return Aggregate(geoms, identifiers, crs)
}

// Aggregate checks that all decoded geometries share one type and reshapes
// them into the Batch form for that type.
//
// geoms and identifiers must be in input order and of equal length; the
// homogeneity check needs the complete set of types, so Aggregate runs as
// a single-threaded reduction after all decodes complete.
func Aggregate(geoms []Geometry, identifiers []string, crs string) (*Batch, error) {
	if len(geoms) == 0 {
		return nil, &ErrInvalidInput{Reason: "no geometries to aggregate"}
	}
	if len(identifiers) != len(geoms) {
		return nil, &ErrInvalidInput{Reason: fmt.Sprintf(
			"%d identifiers for %d geometries", len(identifiers), len(geoms))}
	}

	first := geoms[0].Type
	for i := 1; i < len(geoms); i++ {
		if geoms[i].Type != first {
			return nil, &ErrMixedGeometryTypes{
				Expected:   first,
				Got:        geoms[i].Type,
				Index:      i,
				Identifier: identifiers[i],
			}
		}
	}

	batch := &Batch{Type: first, Identifiers: identifiers, CRS: crs}

	switch first {
	case GeometryTypePoint:
		// One combined point table; per-row pairing with identifiers is
		// positional from here on.
		batch.MergedPoints = make([]Coordinate, len(geoms))
		for i, g := range geoms {
			batch.MergedPoints[i] = g.Point
		}

	case GeometryTypeMultiPoint:
		// One independent table per input element.
		batch.PointTables = make([][]Coordinate, len(geoms))
		for i, g := range geoms {
			batch.PointTables[i] = g.Points
		}

	case GeometryTypeLineString:
		batch.Paths = make([]Path, len(geoms))
		for i, g := range geoms {
			batch.Paths[i] = Path{
				Identifier: identifiers[i],
				Parts:      [][]Coordinate{g.Line},
			}
		}

	case GeometryTypeMultiLineString:
		batch.Paths = make([]Path, len(geoms))
		for i, g := range geoms {
			batch.Paths[i] = Path{
				Identifier: identifiers[i],
				Parts:      g.Lines,
			}
		}

	case GeometryTypePolygon:
		batch.RingGroups = make([]RingGroup, len(geoms))
		for i, g := range geoms {
			batch.RingGroups[i] = RingGroup{
				Identifier: identifiers[i],
				Rings:      g.Rings,
			}
		}

	case GeometryTypeMultiPolygon:
		batch.RingGroups = make([]RingGroup, len(geoms))
		for i, g := range geoms {
			var rings [][]Coordinate
			for _, polygon := range g.Polygons {
				rings = append(rings, polygon...)
			}
			batch.RingGroups[i] = RingGroup{
				Identifier: identifiers[i],
				Rings:      rings,
			}
		}
	}

	return batch, nil
}
