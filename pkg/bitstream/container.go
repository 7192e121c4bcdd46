package bitstream

import "fmt"

// BIT container framing:
//
//	u16(be)=9, 9 opaque bytes, u16(be)=1
//	then records: u8 key
//	  'a'..'d': u16(be) length, length bytes ending in 0x00
//	  'e':      u32(be) length, length bytes of configuration bitstream
//	            (terminal record)
const (
	headerTagA = 9
	headerTagB = 1
)

var metadataKeyNames = map[byte]string{
	'a': "Design",
	'b': "Part name",
	'c': "Date",
	'd': "Time",
}

// MetadataRecord is one textual record from the container header. Text
// excludes the terminating NUL.
type MetadataRecord struct {
	Key  byte
	Name string
	Text string
}

// BitstreamSection locates the embedded configuration bitstream within
// the container.
type BitstreamSection struct {
	Offset int
	Length uint32
}

// Container is the decoded outer framing of a BIT file.
type Container struct {
	Blob     []byte // opaque bytes between the two header tags
	Metadata []MetadataRecord
	Section  BitstreamSection
}

// ContainerReader decodes the BIT container framing and delegates the
// embedded bitstream to a PacketStream sharing the same Sink.
type ContainerReader struct {
	sink Sink
}

// NewContainerReader creates a reader reporting to sink.
func NewContainerReader(sink Sink) *ContainerReader {
	return &ContainerReader{sink: sink}
}

// Parse decodes a complete BIT file image. The returned Container holds
// the structural results; everything decoded is also reported to the
// Sink as it is encountered.
func (r *ContainerReader) Parse(data []byte) (*Container, error) {
	c := newCursor(data)

	a, err := c.u16()
	if err != nil {
		return nil, fmt.Errorf("container tag: %w", err)
	}
	if a != headerTagA {
		return nil, fmt.Errorf("%w: leading tag 0x%04X, want 0x%04X", ErrHeaderMismatch, a, headerTagA)
	}
	blob, err := c.take(int(a))
	if err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	b, err := c.u16()
	if err != nil {
		return nil, fmt.Errorf("container tag: %w", err)
	}
	if b != headerTagB {
		return nil, fmt.Errorf("%w: second tag 0x%04X, want 0x%04X", ErrHeaderMismatch, b, headerTagB)
	}

	cont := &Container{Blob: blob}
	if err := r.sink.ContainerStart(blob); err != nil {
		return nil, err
	}

	for c.remaining() > 0 {
		key, err := c.u8()
		if err != nil {
			return nil, err
		}
		if err := r.sink.KeyStart(key); err != nil {
			return nil, err
		}

		switch {
		case key == 'e':
			length, err := c.u32()
			if err != nil {
				return nil, fmt.Errorf("bitstream section length: %w", err)
			}
			if err := r.sink.BitstreamStart(length); err != nil {
				return nil, err
			}
			cont.Section = BitstreamSection{Offset: c.pos, Length: length}

			end := c.pos + int(length)
			if err := NewPacketStream(r.sink).decode(c, end); err != nil {
				return nil, err
			}
			if c.pos != end {
				return nil, fmt.Errorf("%w: bitstream section ended at offset %d, want %d",
					ErrMisalignedEnd, c.pos, end)
			}

		case key >= 'a' && key <= 'd':
			n, err := c.u16()
			if err != nil {
				return nil, fmt.Errorf("metadata record %q length: %w", key, err)
			}
			val, err := c.take(int(n))
			if err != nil {
				return nil, fmt.Errorf("metadata record %q: %w", key, err)
			}
			if n == 0 || val[n-1] != 0x00 {
				return nil, fmt.Errorf("%w: record %q", ErrUnterminatedMetadata, key)
			}
			rec := MetadataRecord{Key: key, Name: metadataKeyNames[key], Text: string(val[:n-1])}
			cont.Metadata = append(cont.Metadata, rec)
			if err := r.sink.Metadata(rec); err != nil {
				return nil, err
			}

		default:
			// The format gives unknown records no length, so there is
			// no way to resynchronize past one.
			if err := r.sink.UnknownKey(key); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: 0x%02X at offset %d", ErrUnknownKey, key, c.pos-1)
		}
	}

	return cont, nil
}
