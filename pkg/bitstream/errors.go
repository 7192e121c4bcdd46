package bitstream

import "errors"

// Decode errors are fatal to the pass that raised them; callers discard
// any partial output. Wrapped occurrences can be classified with
// errors.Is.
var (
	ErrHeaderMismatch       = errors.New("bitstream: container header mismatch")
	ErrUnterminatedMetadata = errors.New("bitstream: metadata value not NUL-terminated")
	ErrUnknownKey           = errors.New("bitstream: unknown metadata key")
	ErrSyncNotFound         = errors.New("bitstream: sync word not found")
	ErrUnknownPacketType    = errors.New("bitstream: unknown packet type")
	ErrReservedAddressBits  = errors.New("bitstream: reserved address bits set")
	ErrReservedOpcode       = errors.New("bitstream: reserved opcode")
	ErrNoAddress            = errors.New("bitstream: type 2 packet without a preceding type 1 address")
	ErrTruncatedPayload     = errors.New("bitstream: truncated packet payload")
	ErrMisalignedEnd        = errors.New("bitstream: packet stream misaligned with declared section end")
)
