package bitstream

import (
	"encoding/binary"
	"io"
)

// idcodeRemap retargets images built for a larger Artix-7 die onto the
// XC7A15T (0x0362E093).
var idcodeRemap = map[uint32]uint32{
	0x0362C093: 0x0362E093, // XC7A50T
	0x0362D093: 0x0362E093, // XC7A35T
}

// Squeeze re-emits a container like Rewriter but drops CRC write
// packets and remaps the IDCODE write through idcodeRemap. Nop and read
// packets, and writes to any other register, pass through untouched.
type Squeeze struct {
	*Rewriter

	dropped  []uint32
	remapped int
}

// NewSqueeze creates a Squeeze emitting to w.
func NewSqueeze(w io.Writer) *Squeeze {
	return &Squeeze{Rewriter: NewRewriter(w)}
}

func (s *Squeeze) WritePacket(p Packet) error {
	switch p.Addr {
	case RegCRC:
		if len(p.Payload) == 4 {
			s.dropped = append(s.dropped, binary.BigEndian.Uint32(p.Payload))
		}
		return nil
	case RegIDCODE:
		if len(p.Payload) == 4 {
			id := binary.BigEndian.Uint32(p.Payload)
			if mapped, ok := idcodeRemap[id]; ok {
				buf := make([]byte, 4)
				binary.BigEndian.PutUint32(buf, mapped)
				p.Payload = buf
				s.remapped++
			}
		}
		return s.Rewriter.WritePacket(p)
	default:
		return s.Rewriter.WritePacket(p)
	}
}

// DroppedCRCs returns the payload word of every CRC write removed from
// the output, in stream order.
func (s *Squeeze) DroppedCRCs() []uint32 { return s.dropped }

// RemappedIDCodes reports how many IDCODE writes were substituted.
func (s *Squeeze) RemappedIDCodes() int { return s.remapped }
