// Random-access reads.
//
// All reads go through ReadAt so concurrent readers never share a file
// cursor. Every slot is re-validated on each read: the index table is the
// only authority on record extents, and a damaged slot must surface
// ErrCorrupt rather than hand back bytes from the wrong place.
package fixedlist

import "fmt"

// Get returns the record at index as a freshly allocated buffer.
func (l *List) Get(index int) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= int(l.size) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}

	s, err := l.readSlot(index)
	if err != nil {
		return nil, err
	}
	if err := s.validate(l.tail); err != nil {
		return nil, err
	}

	buf := make([]byte, s.length)
	if _, err := l.f.ReadAt(buf, s.offset); err != nil {
		return nil, err
	}
	return buf, nil
}

// readSlot reads the index slot at index without bounds-checking against
// size; callers have already done so.
func (l *List) readSlot(index int) (slot, error) {
	buf := make([]byte, SlotSize)
	if _, err := l.f.ReadAt(buf, slotPos(index)); err != nil {
		return slot{}, err
	}
	return decodeSlot(buf), nil
}
