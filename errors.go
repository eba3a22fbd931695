// Package fixedlist provides a fixed-capacity, append-only list of opaque
// byte records backed by a single binary file. Records are addressed by
// index with O(1) reads and O(1) appends, so collections much larger than
// memory can be written and queried without ever loading them whole.
//
// The file holds three contiguous regions: a fixed 16-byte header
// (version, capacity, size), a preallocated index table of capacity
// offset/length slots, and an append-only data region of raw record
// bytes. Capacity is declared at creation and never changes. Records are
// never deleted, rewritten, or resized.
//
// A list instance is either a writer (Create) or a reader (Open). The
// header's size field is persisted at Close, not after every Append: a
// crash between the last append and close leaves the on-disk count
// understated — the record bytes are on disk but not counted on the next
// Open. Data is never corrupted by this, only undercounted. Callers who
// need the count durable mid-session can call Flush.
package fixedlist

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is
// to distinguish caller mistakes (ErrFull, ErrIndexOutOfRange) from
// damaged files (ErrCorrupt, ErrVersionMismatch).
var (
	ErrExists          = errors.New("file already exists")
	ErrNotFound        = errors.New("file not found")
	ErrInvalidPath     = errors.New("path is not a regular file")
	ErrVersionMismatch = errors.New("unsupported format version")
	ErrCorrupt         = errors.New("corrupt file")
	ErrFull            = errors.New("list is at capacity")
	ErrEmptyRecord     = errors.New("record cannot be empty")
	ErrRecordTooLarge  = errors.New("record exceeds maximum size")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrReadOnly        = errors.New("list is read-only")
	ErrClosed          = errors.New("list is closed")
	ErrLocked          = errors.New("file is locked by another process")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrDecompress      = errors.New("decompression failed")
)
