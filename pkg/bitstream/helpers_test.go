package bitstream

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Test fixtures are assembled from scratch so every byte is accounted
// for: the round-trip tests depend on knowing the exact input.

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// type1 builds a type 1 packet: header plus one word per payload value.
func type1(op Opcode, addr Register, payload ...uint32) []byte {
	hdr := uint32(1)<<29 | uint32(op)<<27 | uint32(addr)<<13 | uint32(len(payload))
	b := be32(hdr)
	for _, w := range payload {
		b = append(b, be32(w)...)
	}
	return b
}

// type2 builds a type 2 packet; the address is inherited at decode time.
func type2(op Opcode, payload ...uint32) []byte {
	hdr := uint32(2)<<29 | uint32(op)<<27 | uint32(len(payload))
	b := be32(hdr)
	for _, w := range payload {
		b = append(b, be32(w)...)
	}
	return b
}

// syncedStream prepends dummy pad words and the sync word, the way real
// bitstreams lead in.
func syncedStream(packets ...[]byte) []byte {
	b := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0xBB, 0x11, 0x22, 0x00, 0x44}
	b = append(b, be32(SyncWord)...)
	for _, p := range packets {
		b = append(b, p...)
	}
	return b
}

// metaRecord encodes one textual record including its NUL terminator.
func metaRecord(key byte, text string) []byte {
	b := []byte{key}
	b = append(b, be16(uint16(len(text)+1))...)
	b = append(b, text...)
	return append(b, 0x00)
}

var testBlob = []byte{0x0F, 0xF0, 0x0F, 0xF0, 0x0F, 0xF0, 0x0F, 0xF0, 0x00}

// buildContainer wraps a packet stream in a well-formed BIT container
// with the usual four metadata records.
func buildContainer(stream []byte) []byte {
	var b bytes.Buffer
	b.Write(be16(headerTagA))
	b.Write(testBlob)
	b.Write(be16(headerTagB))
	b.Write(metaRecord('a', "top;UserID=0XFFFFFFFF;Version=2020.2"))
	b.Write(metaRecord('b', "7a35tcsg324"))
	b.Write(metaRecord('c', "2020/03/14"))
	b.Write(metaRecord('d', "15:09:26"))
	b.WriteByte('e')
	b.Write(be32(uint32(len(stream))))
	b.Write(stream)
	return b.Bytes()
}

// typicalStream resembles the head and tail of a real configuration
// sequence: setup writes, the IDCODE write, a type 2 frame-data burst
// through FDRI, and a closing CRC check.
func typicalStream() []byte {
	return syncedStream(
		type1(OpNop, RegCRC),
		type1(OpWrite, RegTIMER, 0x00000000),
		type1(OpWrite, RegWBSTAR, 0x00000000),
		type1(OpWrite, RegCMD, 0x00000000),
		type1(OpNop, RegCRC),
		type1(OpWrite, RegIDCODE, 0x0362D093),
		type1(OpWrite, RegCMD, 0x00000007),
		type1(OpWrite, RegFDRI),
		type2(OpWrite, 0xDEADBEEF, 0x01234567, 0x89ABCDEF, 0x00FF00FF),
		type1(OpWrite, RegCRC, 0x9A3C5E7D),
		type1(OpNop, RegCRC),
	)
}

// eventLog records a compact trace of every Sink event for order and
// content assertions.
type eventLog struct {
	BaseSink
	events []string
}

func (l *eventLog) add(format string, args ...interface{}) error {
	l.events = append(l.events, fmt.Sprintf(format, args...))
	return nil
}

func (l *eventLog) ContainerStart(blob []byte) error {
	return l.add("container blob=%d", len(blob))
}

func (l *eventLog) KeyStart(key byte) error {
	return l.add("key %c", key)
}

func (l *eventLog) Metadata(rec MetadataRecord) error {
	return l.add("meta %s=%s", rec.Name, rec.Text)
}

func (l *eventLog) BitstreamStart(length uint32) error {
	return l.add("bin len=%d", length)
}

func (l *eventLog) UnknownKey(key byte) error {
	return l.add("unknown key 0x%02X", key)
}

func (l *eventLog) SyncFound(raw []byte) error {
	return l.add("sync raw=%d", len(raw))
}

func (l *eventLog) NopPacket(p Packet) error {
	return l.add("nop %s/%s words=%d", p.Type, p.Addr, p.WordCount())
}

func (l *eventLog) ReadPacket(p Packet) error {
	return l.add("read %s/%s words=%d", p.Type, p.Addr, p.WordCount())
}

func (l *eventLog) WritePacket(p Packet) error {
	return l.add("write %s/%s words=%d", p.Type, p.Addr, p.WordCount())
}

func (l *eventLog) EndOfStream() error {
	return l.add("end")
}
