package decoder

import (
	"fmt"
	"math"
)

// ValidateGeometry applies the opt-in strict validity checks:
// linestrings need at least 2 points, rings must be closed and carry at
// least 4 points, and all coordinates must be finite.
//
// The decoder itself trusts the wire: WKB permits zero-length linestrings,
// open rings, and non-finite doubles, and by default so does this package.
// These checks only run when the caller asks for them.
func ValidateGeometry(g *Geometry) error {
	if g == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	switch g.Type {
	case GeometryTypePoint:
		return validateCoordinate(g.Type, 0, g.Point)

	case GeometryTypeLineString:
		return validateLine(g.Type, g.Line)

	case GeometryTypePolygon:
		return validateRings(g.Type, g.Rings)

	case GeometryTypeMultiPoint:
		for i, coord := range g.Points {
			if err := validateCoordinate(g.Type, i, coord); err != nil {
				return err
			}
		}
		return nil

	case GeometryTypeMultiLineString:
		for i, line := range g.Lines {
			if err := validateLine(g.Type, line); err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
		}
		return nil

	case GeometryTypeMultiPolygon:
		for i, rings := range g.Polygons {
			if err := validateRings(g.Type, rings); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return nil

	default:
		return &ErrInvalidGeometry{Type: g.Type, Reason: "unrecognized geometry type"}
	}
}

func validateCoordinate(t GeometryType, index int, coord Coordinate) error {
	if math.IsNaN(coord.X) || math.IsInf(coord.X, 0) ||
		math.IsNaN(coord.Y) || math.IsInf(coord.Y, 0) {
		return &ErrInvalidGeometry{
			Type:   t,
			Reason: fmt.Sprintf("coordinate %d is not finite (%v, %v)", index, coord.X, coord.Y),
		}
	}
	return nil
}

func validateLine(t GeometryType, line []Coordinate) error {
	if len(line) < 2 {
		return &ErrInvalidGeometry{
			Type:   t,
			Reason: fmt.Sprintf("linestring has %d points, need at least 2", len(line)),
		}
	}
	for i, coord := range line {
		if err := validateCoordinate(t, i, coord); err != nil {
			return err
		}
	}
	return nil
}

func validateRings(t GeometryType, rings [][]Coordinate) error {
	for i, ring := range rings {
		if len(ring) < 4 {
			return &ErrInvalidGeometry{
				Type:   t,
				Reason: fmt.Sprintf("ring %d has %d points, need at least 4", i, len(ring)),
			}
		}
		for j, coord := range ring {
			if err := validateCoordinate(t, j, coord); err != nil {
				return fmt.Errorf("ring %d: %w", i, err)
			}
		}
		if ring[0] != ring[len(ring)-1] {
			return &ErrInvalidGeometry{
				Type:   t,
				Reason: fmt.Sprintf("ring %d is not closed", i),
			}
		}
	}
	return nil
}
