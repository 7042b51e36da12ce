package decoder

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"
	"testing"
)

// Wire fixture builders shared across the package tests. All output is
// little-endian WKB.

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

func appendFloat64(b []byte, v float64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return append(b, buf[:]...)
}

func appendHeader(b []byte, code uint32) []byte {
	b = append(b, byteOrderLittleEndian)
	return appendUint32(b, code)
}

func appendCoords(b []byte, coords []Coordinate) []byte {
	b = appendUint32(b, uint32(len(coords)))
	for _, c := range coords {
		b = appendFloat64(b, c.X)
		b = appendFloat64(b, c.Y)
	}
	return b
}

func pointWKB(x, y float64) []byte {
	b := appendHeader(nil, 1)
	b = appendFloat64(b, x)
	return appendFloat64(b, y)
}

func lineStringWKB(coords ...Coordinate) []byte {
	return appendCoords(appendHeader(nil, 2), coords)
}

func polygonWKB(rings ...[]Coordinate) []byte {
	b := appendHeader(nil, 3)
	b = appendUint32(b, uint32(len(rings)))
	for _, ring := range rings {
		b = appendCoords(b, ring)
	}
	return b
}

func multiPointWKB(coords ...Coordinate) []byte {
	b := appendHeader(nil, 4)
	b = appendUint32(b, uint32(len(coords)))
	for _, c := range coords {
		b = appendHeader(b, 1)
		b = appendFloat64(b, c.X)
		b = appendFloat64(b, c.Y)
	}
	return b
}

func multiLineStringWKB(lines ...[]Coordinate) []byte {
	b := appendHeader(nil, 5)
	b = appendUint32(b, uint32(len(lines)))
	for _, line := range lines {
		b = appendCoords(appendHeader(b, 2), line)
	}
	return b
}

func multiPolygonWKB(polygons ...[][]Coordinate) []byte {
	b := appendHeader(nil, 6)
	b = appendUint32(b, uint32(len(polygons)))
	for _, rings := range polygons {
		b = appendHeader(b, 3)
		b = appendUint32(b, uint32(len(rings)))
		for _, ring := range rings {
			b = appendCoords(b, ring)
		}
	}
	return b
}

// mustHex decodes a spaced hex string into bytes.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}
