package bitstream

import (
	"encoding/binary"
	"io"
)

// Rewriter is a Sink that re-emits every observed event verbatim.
// Feeding a well-formed container through ContainerReader with a
// Rewriter reproduces the input byte for byte; the verify pass relies
// on this to prove the decoder correct before any transform runs.
type Rewriter struct {
	w io.Writer
}

// NewRewriter creates a Rewriter emitting to w.
func NewRewriter(w io.Writer) *Rewriter {
	return &Rewriter{w: w}
}

func (r *Rewriter) write(b []byte) error {
	_, err := r.w.Write(b)
	return err
}

func (r *Rewriter) writeU16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return r.write(b[:])
}

func (r *Rewriter) writeU32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return r.write(b[:])
}

func (r *Rewriter) ContainerStart(blob []byte) error {
	if err := r.writeU16(uint16(len(blob))); err != nil {
		return err
	}
	if err := r.write(blob); err != nil {
		return err
	}
	return r.writeU16(headerTagB)
}

func (r *Rewriter) KeyStart(key byte) error {
	return r.write([]byte{key})
}

func (r *Rewriter) Metadata(rec MetadataRecord) error {
	if err := r.writeU16(uint16(len(rec.Text) + 1)); err != nil {
		return err
	}
	if err := r.write([]byte(rec.Text)); err != nil {
		return err
	}
	return r.write([]byte{0x00})
}

func (r *Rewriter) BitstreamStart(length uint32) error {
	return r.writeU32(length)
}

func (r *Rewriter) UnknownKey(byte) error { return nil }

func (r *Rewriter) SyncFound(raw []byte) error {
	return r.write(raw)
}

func (r *Rewriter) emitPacket(p Packet) error {
	if err := r.writeU32(p.Header); err != nil {
		return err
	}
	return r.write(p.Payload)
}

func (r *Rewriter) NopPacket(p Packet) error   { return r.emitPacket(p) }
func (r *Rewriter) ReadPacket(p Packet) error  { return r.emitPacket(p) }
func (r *Rewriter) WritePacket(p Packet) error { return r.emitPacket(p) }

func (r *Rewriter) EndOfStream() error { return nil }
