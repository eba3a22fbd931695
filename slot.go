// Index-slot codec.
//
// The index table starts immediately after the header and holds capacity
// fixed-width slots, one per record: a big-endian u64 byte offset into
// the data region and a big-endian i32 length. Slots at positions >= size
// are zero-filled placeholders. A slot is written exactly once, by the
// append that claims it, and never updated.
package fixedlist

import (
	"encoding/binary"
	"fmt"
)

// SlotSize is the fixed size of one index slot in bytes.
const SlotSize = 12

// slot locates one record in the data region.
type slot struct {
	offset int64
	length int32
}

// slotPos returns the absolute byte position of slot index.
func slotPos(index int) int64 {
	return HeaderSize + int64(index)*SlotSize
}

func (s slot) encode() []byte {
	buf := make([]byte, SlotSize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(s.offset))
	binary.BigEndian.PutUint32(buf[8:12], uint32(s.length))
	return buf
}

func decodeSlot(buf []byte) slot {
	return slot{
		offset: int64(binary.BigEndian.Uint64(buf[0:8])),
		length: int32(binary.BigEndian.Uint32(buf[8:12])),
	}
}

// validate checks the invariants every occupied slot must satisfy: both
// fields positive and the extent inside the file. fileSize is the current
// length of the file in bytes.
func (s slot) validate(fileSize int64) error {
	if s.offset <= 0 {
		return fmt.Errorf("%w: slot offset %d", ErrCorrupt, s.offset)
	}
	if s.length <= 0 {
		return fmt.Errorf("%w: slot length %d", ErrCorrupt, s.length)
	}
	if s.offset+int64(s.length) > fileSize {
		return fmt.Errorf("%w: record extent %d+%d exceeds file size %d", ErrCorrupt, s.offset, s.length, fileSize)
	}
	return nil
}

// zero reports whether the slot is an untouched placeholder.
func (s slot) zero() bool {
	return s.offset == 0 && s.length == 0
}
