// Append path.
//
// Every record lands at the tail, the current end of file. The claiming
// slot is written first; if the record write then fails, the in-memory
// size is never bumped, so the half-written slot is invisible — it sits
// past size and the header flushed at Close does not count it.
package fixedlist

import (
	"fmt"
	"math"
)

// checkRecord validates a record's length before any bytes are written.
// The slot length field is an i32: a longer record would wrap and index
// the wrong extent, so it must be refused up front.
func checkRecord(n int64) error {
	if n == 0 {
		return ErrEmptyRecord
	}
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, n)
	}
	return nil
}

// Append adds a record at position Size(). The record becomes visible to
// Get on this instance immediately; the on-disk size field is updated at
// Flush or Close.
func (l *List) Append(record []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if l.readOnly {
		return ErrReadOnly
	}
	if l.size >= l.capacity {
		return fmt.Errorf("%w: %d records", ErrFull, l.capacity)
	}
	if err := checkRecord(int64(len(record))); err != nil {
		return err
	}

	s := slot{offset: l.tail, length: int32(len(record))}
	if _, err := l.f.WriteAt(s.encode(), slotPos(int(l.size))); err != nil {
		return err
	}
	if _, err := l.f.WriteAt(record, l.tail); err != nil {
		return err
	}

	l.tail += int64(len(record))
	l.size++

	if l.config.SyncWrites {
		return l.f.Sync()
	}
	return nil
}

// Flush persists the current size to the header and syncs the file,
// making the count crash-durable without closing the writer.
func (l *List) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if l.readOnly {
		return ErrReadOnly
	}
	if err := writeSize(l.f, l.size); err != nil {
		return err
	}
	return l.f.Sync()
}
