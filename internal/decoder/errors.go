package decoder

import (
	"fmt"
)

// ErrTruncatedInput indicates a read past the end of the buffer.
type ErrTruncatedInput struct {
	Needed    int // Bytes the read required
	Remaining int // Bytes left in the buffer
	Offset    int // Read position when the shortfall was detected
}

func (e *ErrTruncatedInput) Error() string {
	return fmt.Sprintf("truncated WKB: need %d bytes at offset %d, %d remaining",
		e.Needed, e.Offset, e.Remaining)
}

// ErrUnsupportedByteOrder indicates a header declaring anything other than
// little-endian encoding. Big-endian WKB is rejected throughout, for
// top-level and nested headers alike.
type ErrUnsupportedByteOrder struct {
	Flag   byte
	Offset int
}

func (e *ErrUnsupportedByteOrder) Error() string {
	return fmt.Sprintf("unsupported byte order 0x%02X at offset %d (only little-endian WKB is supported)",
		e.Flag, e.Offset)
}

// ErrUnsupportedGeometryType indicates WKB code 7 (GeometryCollection),
// a recognized OGC type this decoder does not support.
type ErrUnsupportedGeometryType struct {
	Code uint32
}

func (e *ErrUnsupportedGeometryType) Error() string {
	return fmt.Sprintf("unsupported WKB geometry type %d (%v)",
		e.Code, GeometryType(e.Code))
}

// ErrUnknownGeometryType indicates a type code outside the OGC range 1..7.
type ErrUnknownGeometryType struct {
	Code uint32
}

func (e *ErrUnknownGeometryType) Error() string {
	return fmt.Sprintf("unknown WKB geometry type %d", e.Code)
}

// ErrNestedTypeMismatch indicates a sub-geometry inside a multi-geometry
// whose header declares a type other than the expected simple type.
type ErrNestedTypeMismatch struct {
	Expected GeometryType
	Got      GeometryType
	Index    int // Position of the sub-geometry within its parent
}

func (e *ErrNestedTypeMismatch) Error() string {
	return fmt.Sprintf("sub-geometry %d: expected %v, got %v",
		e.Index, e.Expected, e.Got)
}

// ErrMixedGeometryTypes indicates a batch whose decoded geometries do not
// all share one type.
type ErrMixedGeometryTypes struct {
	Expected   GeometryType // Type of the first element
	Got        GeometryType
	Index      int // Position of the first conflicting element
	Identifier string
}

func (e *ErrMixedGeometryTypes) Error() string {
	return fmt.Sprintf("mixed geometry types in batch: element %d (%q) decoded as %v, previous elements are %v",
		e.Index, e.Identifier, e.Got, e.Expected)
}

// ErrInvalidInput indicates the batch input violates a precondition
// (empty input, identifier count mismatch, nil buffer element).
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid batch input: %s", e.Reason)
}

// ErrInvalidGeometry indicates a decoded geometry failed the opt-in
// validity checks (open rings, too few points, non-finite coordinates).
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
}
