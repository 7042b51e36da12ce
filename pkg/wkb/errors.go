package wkb

import (
	"errors"

	"github.com/geofold/wkb/internal/decoder"
)

// Error classification predicates.
//
// Decode errors carry element context via wrapping, so match with these
// predicates rather than string comparison.

// IsTruncatedInput reports whether err indicates a read past the end of a
// buffer.
func IsTruncatedInput(err error) bool {
	var target *decoder.ErrTruncatedInput
	return errors.As(err, &target)
}

// IsUnsupportedByteOrder reports whether err indicates a header declaring
// non-little-endian byte order.
func IsUnsupportedByteOrder(err error) bool {
	var target *decoder.ErrUnsupportedByteOrder
	return errors.As(err, &target)
}

// IsUnsupportedGeometryType reports whether err indicates WKB type code 7
// (GeometryCollection), recognized but unsupported.
func IsUnsupportedGeometryType(err error) bool {
	var target *decoder.ErrUnsupportedGeometryType
	return errors.As(err, &target)
}

// IsUnknownGeometryType reports whether err indicates a type code outside
// the OGC range.
func IsUnknownGeometryType(err error) bool {
	var target *decoder.ErrUnknownGeometryType
	return errors.As(err, &target)
}

// IsNestedTypeMismatch reports whether err indicates a sub-geometry of a
// multi-geometry that decoded to an unexpected type.
func IsNestedTypeMismatch(err error) bool {
	var target *decoder.ErrNestedTypeMismatch
	return errors.As(err, &target)
}

// IsMixedGeometryTypes reports whether err indicates a batch whose
// elements do not share one geometry type.
func IsMixedGeometryTypes(err error) bool {
	var target *decoder.ErrMixedGeometryTypes
	return errors.As(err, &target)
}

// IsInvalidInput reports whether err indicates a batch precondition
// violation (empty input, identifier count mismatch, nil buffer).
func IsInvalidInput(err error) bool {
	var target *decoder.ErrInvalidInput
	return errors.As(err, &target)
}

// IsInvalidGeometry reports whether err comes from the opt-in geometry
// validity checks.
func IsInvalidGeometry(err error) bool {
	var target *decoder.ErrInvalidGeometry
	return errors.As(err, &target)
}
