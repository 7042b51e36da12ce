package decoder

import (
	"encoding/binary"
	"math"
)

// byteOrderLittleEndian is the only byte-order flag this decoder accepts.
// WKB also defines 0x00 for big-endian encodings, which is rejected.
const byteOrderLittleEndian = 0x01

// cursor reads sequentially through one WKB buffer.
//
// The position only moves forward; every buffer is consumed front-to-back
// exactly once. A cursor's lifetime is scoped to decoding a single buffer.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// readBytes returns the next n bytes and advances the position.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if remaining := len(c.buf) - c.pos; remaining < n {
		return nil, &ErrTruncatedInput{Needed: n, Remaining: remaining, Offset: c.pos}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// readByteOrder consumes the 1-byte byte-order flag and rejects anything
// other than the little-endian marker.
func (c *cursor) readByteOrder() error {
	b, err := c.readBytes(1)
	if err != nil {
		return err
	}
	if b[0] != byteOrderLittleEndian {
		return &ErrUnsupportedByteOrder{Flag: b[0], Offset: c.pos - 1}
	}
	return nil
}

// readUint32 reads a little-endian unsigned 32-bit integer, used for both
// type codes and count fields.
func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readCount reads a 4-byte count field (point count, ring count, or
// sub-geometry count). Counts are not validated beyond what truncation
// detection naturally bounds against the buffer size.
func (c *cursor) readCount() (int, error) {
	v, err := c.readUint32()
	return int(v), err
}

// readFloat64 reads a little-endian IEEE-754 double.
func (c *cursor) readFloat64() (float64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// readCoordinate reads one (x, y) pair.
func (c *cursor) readCoordinate() (Coordinate, error) {
	x, err := c.readFloat64()
	if err != nil {
		return Coordinate{}, err
	}
	y, err := c.readFloat64()
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: x, Y: y}, nil
}
