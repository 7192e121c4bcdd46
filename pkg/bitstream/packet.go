package bitstream

import (
	"encoding/binary"
	"fmt"
)

// SyncWord marks the start of the configuration packet stream inside the
// bitstream section.
const SyncWord uint32 = 0xAA995566

// PacketType distinguishes the two configuration packet header
// encodings, selected by the top three header bits.
type PacketType uint8

const (
	Type1 PacketType = 1
	Type2 PacketType = 2
)

func (t PacketType) String() string {
	switch t {
	case Type1:
		return "type1"
	case Type2:
		return "type2"
	}
	return fmt.Sprintf("PacketType(%d)", uint8(t))
}

// Opcode is the two-bit operation field shared by both header types.
type Opcode uint8

const (
	OpNop      Opcode = 0
	OpRead     Opcode = 1
	OpWrite    Opcode = 2
	OpReserved Opcode = 3
)

func (o Opcode) String() string {
	switch o {
	case OpNop:
		return "nop"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpReserved:
		return "reserved"
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// Packet is one decoded configuration packet. Addr is the effective
// register address: a type 1 packet carries its own, a type 2 packet
// inherits the one most recently set by a type 1 header. Payload
// aliases the input buffer and is valid for the duration of the pass.
type Packet struct {
	Header  uint32
	Type    PacketType
	Op      Opcode
	Addr    Register
	Payload []byte
}

// WordCount reports the payload length in 32-bit words.
func (p Packet) WordCount() int { return len(p.Payload) / 4 }

// PacketStream decodes a configuration packet stream set and reports
// every event to its Sink.
type PacketStream struct {
	sink Sink

	// Address context set by the last type 1 header and inherited by
	// type 2 packets. Reset at sync acquisition; a CRC write ends it,
	// matching the hardware view of CRC packets as self-contained.
	addr    Register
	addrSet bool
}

// NewPacketStream creates a decoder reporting to sink.
func NewPacketStream(sink Sink) *PacketStream {
	return &PacketStream{sink: sink}
}

// Decode parses a raw configuration image (a BIN, or any buffer that
// contains the sync word) running to the end of data.
func (s *PacketStream) Decode(data []byte) error {
	return s.decode(newCursor(data), -1)
}

// decode runs the packet loop. endAt < 0 means the stream runs to the
// end of the buffer; otherwise the loop must stop at exactly that
// offset.
func (s *PacketStream) decode(c *cursor, endAt int) error {
	s.addr, s.addrSet = 0, false

	if err := s.scanSync(c, endAt); err != nil {
		return err
	}

	for {
		if endAt >= 0 {
			if c.pos >= endAt {
				if c.pos != endAt {
					return fmt.Errorf("%w: offset %d past declared end %d",
						ErrMisalignedEnd, c.pos, endAt)
				}
				break
			}
		} else if c.remaining() == 0 {
			break
		}

		hdrBytes, err := c.take(4)
		if err != nil {
			return fmt.Errorf("packet header: %w", err)
		}
		hdr := binary.BigEndian.Uint32(hdrBytes)

		var (
			p     Packet
			words int
		)
		switch hdr >> 29 {
		case 1:
			addrRaw := (hdr >> 13) & 0x7FF
			if addrRaw != addrRaw&0x1F {
				return fmt.Errorf("%w: header 0x%08X address field 0x%03X",
					ErrReservedAddressBits, hdr, addrRaw)
			}
			s.addr, s.addrSet = Register(addrRaw), true
			p = Packet{Header: hdr, Type: Type1, Op: Opcode((hdr >> 27) & 0x3), Addr: s.addr}
			words = int(hdr & 0x7FF)
		case 2:
			if !s.addrSet {
				return fmt.Errorf("%w: header 0x%08X", ErrNoAddress, hdr)
			}
			p = Packet{Header: hdr, Type: Type2, Op: Opcode((hdr >> 27) & 0x3), Addr: s.addr}
			words = int(hdr & 0x7FFFFFF)
		default:
			return fmt.Errorf("%w: header 0x%08X type %d", ErrUnknownPacketType, hdr, hdr>>29)
		}

		payload, err := c.take(words * 4)
		if err != nil {
			return fmt.Errorf("%w: %d words for header 0x%08X", ErrTruncatedPayload, words, hdr)
		}
		p.Payload = payload

		switch p.Op {
		case OpNop:
			err = s.sink.NopPacket(p)
		case OpRead:
			err = s.sink.ReadPacket(p)
		case OpWrite:
			err = s.sink.WritePacket(p)
			if p.Addr == RegCRC {
				s.addrSet = false
			}
		default:
			return fmt.Errorf("%w: header 0x%08X", ErrReservedOpcode, hdr)
		}
		if err != nil {
			return err
		}
	}

	return s.sink.EndOfStream()
}

// scanSync advances byte by byte until a rolling 32-bit window matches
// the sync word, then reports everything consumed so far, leading bytes
// included.
func (s *PacketStream) scanSync(c *cursor, endAt int) error {
	limit := len(c.buf)
	if endAt >= 0 && endAt < limit {
		limit = endAt
	}

	start := c.pos
	var window uint32
	for c.pos < limit {
		window = window<<8 | uint32(c.buf[c.pos])
		c.pos++
		if window == SyncWord {
			return s.sink.SyncFound(c.buf[start:c.pos])
		}
	}
	return fmt.Errorf("%w: scanned %d bytes", ErrSyncNotFound, c.pos-start)
}
