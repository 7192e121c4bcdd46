package bitstream

// Sink receives every event produced while decoding a container or a
// raw packet stream, in input order. The decoders never branch on the
// concrete Sink; all behavior differences live in the implementations.
//
// A non-nil error from any method aborts the pass immediately.
type Sink interface {
	// ContainerStart reports the validated header tags; blob is the
	// opaque data between them.
	ContainerStart(blob []byte) error

	// KeyStart reports a record key before the record is decoded.
	KeyStart(key byte) error

	// Metadata reports one decoded textual record.
	Metadata(rec MetadataRecord) error

	// BitstreamStart reports the declared bitstream section length.
	BitstreamStart(length uint32) error

	// UnknownKey reports a record key outside the known set. The parse
	// fails right after this event; see ErrUnknownKey.
	UnknownKey(key byte) error

	// SyncFound reports the bytes consumed while locating the sync
	// word, leading bytes and the sync word itself included.
	SyncFound(raw []byte) error

	NopPacket(p Packet) error
	ReadPacket(p Packet) error
	WritePacket(p Packet) error

	// EndOfStream reports normal termination of the packet loop.
	EndOfStream() error
}

// BaseSink ignores every event. Embed it to implement only the events a
// consumer cares about.
type BaseSink struct{}

func (BaseSink) ContainerStart([]byte) error   { return nil }
func (BaseSink) KeyStart(byte) error           { return nil }
func (BaseSink) Metadata(MetadataRecord) error { return nil }
func (BaseSink) BitstreamStart(uint32) error   { return nil }
func (BaseSink) UnknownKey(byte) error         { return nil }
func (BaseSink) SyncFound([]byte) error        { return nil }
func (BaseSink) NopPacket(Packet) error        { return nil }
func (BaseSink) ReadPacket(Packet) error       { return nil }
func (BaseSink) WritePacket(Packet) error      { return nil }
func (BaseSink) EndOfStream() error            { return nil }
