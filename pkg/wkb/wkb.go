// Package wkb decodes the OGC Well-Known Binary geometry encoding into
// structured in-memory geometry values.
package wkb

import (
	"github.com/geofold/wkb/internal/decoder"
)

// Decoder decodes WKB buffers produced by databases, spatial file formats,
// or network services.
//
// Create a decoder with NewDecoder and use Decode for single buffers or
// DecodeBatch for homogeneous collections.
type Decoder interface {
	// Decode parses a single little-endian WKB buffer into a Geometry.
	//
	// Supported types are Point, LineString, Polygon, MultiPoint,
	// MultiLineString, and MultiPolygon. GeometryCollection, big-endian
	// encodings, and Z/M-dimensional variants are rejected with errors.
	Decode(buf []byte) (Geometry, error)

	// DecodeBatch decodes a collection of WKB buffers that must all
	// encode the same geometry type, and reshapes the results into the
	// aggregate form for that type. See Batch for the per-type shapes.
	//
	// Any decode failure, byte-order or type violation, or type mix
	// across the batch aborts the whole call; no partial result is
	// ever returned.
	DecodeBatch(buffers [][]byte, opts DecodeOptions) (*Batch, error)
}

// NewDecoder creates a WKB decoder.
//
// Example:
//
//	dec := wkb.NewDecoder()
//	geom, err := dec.Decode(buf)
func NewDecoder() Decoder {
	return &decoderWrapper{}
}

// decoderWrapper wraps the internal decoder and converts types.
type decoderWrapper struct{}

func (d *decoderWrapper) Decode(buf []byte) (Geometry, error) {
	g, err := decoder.DecodeGeometry(buf)
	if err != nil {
		return Geometry{}, err
	}
	return convertGeometry(g), nil
}

func (d *decoderWrapper) DecodeBatch(buffers [][]byte, opts DecodeOptions) (*Batch, error) {
	return decodeBatch(buffers, opts)
}

// Decode parses a single WKB buffer with a throwaway decoder.
//
// Convenience for callers that do not keep a Decoder around.
func Decode(buf []byte) (Geometry, error) {
	return NewDecoder().Decode(buf)
}

// DecodeBatch decodes a batch of WKB buffers with a throwaway decoder.
func DecodeBatch(buffers [][]byte, opts DecodeOptions) (*Batch, error) {
	return NewDecoder().DecodeBatch(buffers, opts)
}

// GeometryType identifies the WKB geometry kind. Values match the OGC
// type codes.
type GeometryType uint32

const (
	// GeometryTypePoint represents a single coordinate pair.
	GeometryTypePoint GeometryType = GeometryType(decoder.GeometryTypePoint)

	// GeometryTypeLineString represents an ordered coordinate sequence.
	GeometryTypeLineString GeometryType = GeometryType(decoder.GeometryTypeLineString)

	// GeometryTypePolygon represents a ring sequence; ring 0 is the
	// exterior boundary, subsequent rings are holes.
	GeometryTypePolygon GeometryType = GeometryType(decoder.GeometryTypePolygon)

	// GeometryTypeMultiPoint represents a sequence of points.
	GeometryTypeMultiPoint GeometryType = GeometryType(decoder.GeometryTypeMultiPoint)

	// GeometryTypeMultiLineString represents a sequence of linestrings.
	GeometryTypeMultiLineString GeometryType = GeometryType(decoder.GeometryTypeMultiLineString)

	// GeometryTypeMultiPolygon represents a sequence of polygons.
	GeometryTypeMultiPolygon GeometryType = GeometryType(decoder.GeometryTypeMultiPolygon)
)

// String returns the OGC name of the geometry type.
func (g GeometryType) String() string {
	return decoder.GeometryType(g).String()
}

// Coordinate is one (x, y) position.
type Coordinate struct {
	X, Y float64
}

// Geometry is the decoded form of one WKB buffer: a tagged union over the
// six supported kinds. Type selects which variant field is populated; all
// other variant fields stay zero.
type Geometry struct {
	// Type indicates which variant field below is populated.
	Type GeometryType

	// Point is set for GeometryTypePoint.
	Point Coordinate

	// Line is set for GeometryTypeLineString. May be empty; WKB permits
	// zero-length encodings.
	Line []Coordinate

	// Rings is set for GeometryTypePolygon. Ring 0 is the exterior
	// boundary. Closure and orientation are trusted as encoded.
	Rings [][]Coordinate

	// Points is set for GeometryTypeMultiPoint.
	Points []Coordinate

	// Lines is set for GeometryTypeMultiLineString.
	Lines [][]Coordinate

	// Polygons is set for GeometryTypeMultiPolygon, one ring sequence
	// per polygon.
	Polygons [][][]Coordinate
}

// Batch is the aggregate result of decoding one homogeneous collection of
// WKB buffers.
//
// The shape of the result depends on the common geometry type:
//
//   - Point: one combined point table, MergedPoints, in input order.
//   - MultiPoint: one independent table per input element, PointTables.
//   - LineString / MultiLineString: one identifier-tagged Path per element.
//   - Polygon / MultiPolygon: one identifier-tagged RingGroup per element.
//
// All fields are private to maintain encapsulation; use the accessor
// methods.
type Batch struct {
	geometryType GeometryType
	identifiers  []string
	crs          string

	mergedPoints []Coordinate
	pointTables  [][]Coordinate
	paths        []Path
	ringGroups   []RingGroup

	bounds        Bounds
	elementBounds []Bounds
	elementEmpty  []bool
	index         *batchIndex
}

// Path is one line element of a batch: an identifier and one or more
// point sequences. A LineString input yields one part; a MultiLineString
// yields one part per member line.
type Path struct {
	Identifier string
	Parts      [][]Coordinate
}

// RingGroup is one polygon element of a batch: an identifier and its
// rings. A MultiPolygon input contributes its polygons' rings flattened
// in encoded order.
type RingGroup struct {
	Identifier string
	Rings      [][]Coordinate
}

// GeometryType returns the common geometry type shared by every element
// of the batch.
func (b *Batch) GeometryType() GeometryType {
	return b.geometryType
}

// CRS returns the coordinate reference system descriptor supplied at
// decode time, or "unknown" when none was given. The descriptor is
// opaque; it is passed through without interpretation.
func (b *Batch) CRS() string {
	return b.crs
}

// Len returns the number of input elements in the batch.
func (b *Batch) Len() int {
	return len(b.identifiers)
}

// Identifiers returns the per-element identifiers, in input order.
func (b *Batch) Identifiers() []string {
	return b.identifiers
}

// MergedPoints returns the combined point table for a Point batch, one
// row per input element in input order. Nil for every other shape.
func (b *Batch) MergedPoints() []Coordinate {
	return b.mergedPoints
}

// PointTables returns one coordinate table per input element for a
// MultiPoint batch. Nil for every other shape.
func (b *Batch) PointTables() [][]Coordinate {
	return b.pointTables
}

// Paths returns one path per input element for a LineString or
// MultiLineString batch. Nil for every other shape.
func (b *Batch) Paths() []Path {
	return b.paths
}

// RingGroups returns one ring group per input element for a Polygon or
// MultiPolygon batch. Nil for every other shape.
func (b *Batch) RingGroups() []RingGroup {
	return b.ringGroups
}

// convertGeometry converts an internal geometry to the public API form.
func convertGeometry(g decoder.Geometry) Geometry {
	return Geometry{
		Type:     GeometryType(g.Type),
		Point:    Coordinate(g.Point),
		Line:     convertCoords(g.Line),
		Rings:    convertCoordTables(g.Rings),
		Points:   convertCoords(g.Points),
		Lines:    convertCoordTables(g.Lines),
		Polygons: convertRingSets(g.Polygons),
	}
}

func convertCoords(coords []decoder.Coordinate) []Coordinate {
	if coords == nil {
		return nil
	}
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = Coordinate(c)
	}
	return out
}

func convertCoordTables(tables [][]decoder.Coordinate) [][]Coordinate {
	if tables == nil {
		return nil
	}
	out := make([][]Coordinate, len(tables))
	for i, t := range tables {
		out[i] = convertCoords(t)
	}
	return out
}

func convertRingSets(sets [][][]decoder.Coordinate) [][][]Coordinate {
	if sets == nil {
		return nil
	}
	out := make([][][]Coordinate, len(sets))
	for i, s := range sets {
		out[i] = convertCoordTables(s)
	}
	return out
}

// newBatch converts an internal batch to the public API form and builds
// the element bounds and spatial index.
func newBatch(internal *decoder.Batch) *Batch {
	batch := &Batch{
		geometryType: GeometryType(internal.Type),
		identifiers:  internal.Identifiers,
		crs:          internal.CRS,
		mergedPoints: convertCoords(internal.MergedPoints),
		pointTables:  convertCoordTables(internal.PointTables),
	}

	if internal.Paths != nil {
		batch.paths = make([]Path, len(internal.Paths))
		for i, p := range internal.Paths {
			batch.paths[i] = Path{
				Identifier: p.Identifier,
				Parts:      convertCoordTables(p.Parts),
			}
		}
	}

	if internal.RingGroups != nil {
		batch.ringGroups = make([]RingGroup, len(internal.RingGroups))
		for i, rg := range internal.RingGroups {
			batch.ringGroups[i] = RingGroup{
				Identifier: rg.Identifier,
				Rings:      convertCoordTables(rg.Rings),
			}
		}
	}

	batch.computeBounds()
	batch.buildIndex()

	return batch
}
