// Header codec for the list file.
//
// The header is exactly 16 bytes at offset 0: a big-endian u64 format
// version followed by two big-endian i32 fields, capacity and size. It is
// written once at creation and only the size field is ever rewritten,
// in place, when a writer flushes or closes.
package fixedlist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// CurrentVersion identifies the on-disk layout: record lengths are stored
// only in the index table, never inline in the data region. A reader
// refuses any other version.
const CurrentVersion = 1

// HeaderSize is the fixed size of the header in bytes.
const HeaderSize = 16

// sizeFieldPos is the byte offset of the size field within the header,
// used to rewrite it in place without touching version or capacity.
const sizeFieldPos = 12

// header holds the decoded file metadata.
type header struct {
	version  uint64
	capacity int32
	size     int32
}

// encode serialises the header to exactly HeaderSize bytes.
func (h header) encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint64(buf[0:8], h.version)
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.capacity))
	binary.BigEndian.PutUint32(buf[12:16], uint32(h.size))
	return buf
}

// readHeader reads and validates the header. Version is checked first so
// that a file from a different layout surfaces ErrVersionMismatch rather
// than a misleading corruption error from fields that moved.
func readHeader(f *os.File) (header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := f.ReadAt(buf, 0); err != nil {
		// A file too short to hold a header is damage; anything else is
		// a real I/O failure and passes through.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return header{}, fmt.Errorf("%w: short header", ErrCorrupt)
		}
		return header{}, err
	}

	h := header{
		version:  binary.BigEndian.Uint64(buf[0:8]),
		capacity: int32(binary.BigEndian.Uint32(buf[8:12])),
		size:     int32(binary.BigEndian.Uint32(buf[12:16])),
	}

	if h.version != CurrentVersion {
		return header{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, h.version, CurrentVersion)
	}
	if h.capacity <= 0 {
		return header{}, fmt.Errorf("%w: capacity %d", ErrCorrupt, h.capacity)
	}
	if h.size < 0 || h.size > h.capacity {
		return header{}, fmt.Errorf("%w: size %d exceeds capacity %d", ErrCorrupt, h.size, h.capacity)
	}
	return h, nil
}

// writeSize rewrites the size field in place.
func writeSize(f *os.File, size int32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(size))
	_, err := f.WriteAt(buf, sizeFieldPos)
	return err
}
