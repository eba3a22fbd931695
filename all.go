// Sequential enumeration in append order.
//
// Offsets are file-length snapshots taken at append time, so records sit
// in the data region in strictly increasing order. Enumeration exploits
// this: one buffered forward pass over the data region instead of a seek
// per record. Slots are still read and validated individually — the scan
// trusts the index table, never the data bytes.
package fixedlist

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Iterate yields every record in append order. The list's read lock is
// held for the duration of the walk; callers can break early to release
// it. Each range expression starts a fresh cursor.
func (l *List) Iterate() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()

		if l.closed {
			yield(nil, ErrClosed)
			return
		}
		n := int(l.size)
		if n == 0 {
			return
		}

		first, err := l.readSlot(0)
		if err != nil {
			yield(nil, err)
			return
		}
		if err := first.validate(l.tail); err != nil {
			yield(nil, err)
			return
		}

		section := io.NewSectionReader(l.f, first.offset, l.tail-first.offset)
		reader := bufio.NewReaderSize(section, l.config.ReadBuffer)
		pos := first.offset

		for i := 0; i < n; i++ {
			s, err := l.readSlot(i)
			if err != nil {
				yield(nil, err)
				return
			}
			if err := s.validate(l.tail); err != nil {
				yield(nil, err)
				return
			}
			if s.offset < pos {
				yield(nil, fmt.Errorf("%w: record %d overlaps previous record", ErrCorrupt, i))
				return
			}
			if skip := s.offset - pos; skip > 0 {
				if _, err := reader.Discard(int(skip)); err != nil {
					yield(nil, err)
					return
				}
				pos = s.offset
			}

			buf := make([]byte, s.length)
			if _, err := io.ReadFull(reader, buf); err != nil {
				yield(nil, err)
				return
			}
			pos += int64(s.length)

			if !yield(buf, nil) {
				return
			}
		}
	}
}

// GetAll returns every record in append order, materialised. Returns nil
// without touching the data region when the list is empty.
func (l *List) GetAll() ([][]byte, error) {
	var out [][]byte
	for record, err := range l.Iterate() {
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
