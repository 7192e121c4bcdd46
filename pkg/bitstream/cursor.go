package bitstream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// cursor is a random-access read position over a fully buffered input.
// Exact offsets matter: the container's bitstream section declares where
// it must end, and the decoder has to detect misses on either side.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor { return &cursor{buf: buf} }

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

// take returns the next n bytes without copying and advances the cursor.
func (c *cursor) take(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w",
			n, c.pos, c.remaining(), io.ErrUnexpectedEOF)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) u8() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
