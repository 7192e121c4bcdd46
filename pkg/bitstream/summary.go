package bitstream

import "encoding/binary"

// Summary is a Sink that collects metadata and packet statistics for
// display. With Collect set it also retains every decoded packet, which
// the CLI uses for verbose listings.
type Summary struct {
	BaseSink

	Collect bool

	Records      []MetadataRecord
	UnknownKeys  []byte
	BitstreamLen uint32
	LeadBytes    int // bytes scanned before the sync word

	Nops      int
	Reads     int
	Writes    int
	CRCWrites int

	IDCode    uint32 // payload of the first one-word IDCODE write
	HasIDCode bool

	Packets []Packet
}

func (s *Summary) Metadata(rec MetadataRecord) error {
	s.Records = append(s.Records, rec)
	return nil
}

func (s *Summary) BitstreamStart(length uint32) error {
	s.BitstreamLen = length
	return nil
}

func (s *Summary) UnknownKey(key byte) error {
	s.UnknownKeys = append(s.UnknownKeys, key)
	return nil
}

func (s *Summary) SyncFound(raw []byte) error {
	s.LeadBytes = len(raw) - 4
	return nil
}

func (s *Summary) NopPacket(p Packet) error {
	s.Nops++
	s.keep(p)
	return nil
}

func (s *Summary) ReadPacket(p Packet) error {
	s.Reads++
	s.keep(p)
	return nil
}

func (s *Summary) WritePacket(p Packet) error {
	s.Writes++
	s.keep(p)
	switch p.Addr {
	case RegCRC:
		s.CRCWrites++
	case RegIDCODE:
		if !s.HasIDCode && len(p.Payload) == 4 {
			s.IDCode = binary.BigEndian.Uint32(p.Payload)
			s.HasIDCode = true
		}
	}
	return nil
}

func (s *Summary) keep(p Packet) {
	if s.Collect {
		s.Packets = append(s.Packets, p)
	}
}
