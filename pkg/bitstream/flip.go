package bitstream

import (
	"encoding/binary"
	"fmt"
)

// Flip32 returns a copy of data with the byte order of every 32-bit
// word reversed, the layout SPI flash programmers expect. The length
// must be a multiple of 4.
func Flip32(data []byte) ([]byte, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("bitstream: flip of %d bytes, not a multiple of 4", len(data))
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(out[i:], binary.LittleEndian.Uint32(data[i:]))
	}
	return out, nil
}
