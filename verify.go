// Whole-file integrity verification.
//
// Get validates only the slot it touches. Verify walks every occupied
// slot and additionally checks what per-read validation cannot see:
// records must live inside the data region (not overlap the header or
// index table) and must not alias each other's byte ranges. It also
// counts orphans — valid records written by a writer that crashed before
// its size reached the header.
package fixedlist

import "fmt"

// Stats summarises the verified state of a list file.
type Stats struct {
	Version   uint64 `json:"version"`
	Capacity  int    `json:"capacity"`
	Size      int    `json:"size"`
	DataBytes int64  `json:"data_bytes"`
	FileBytes int64  `json:"file_bytes"`
	Orphans   int    `json:"orphans"`
}

// Verify checks every structural invariant of the file and returns a
// summary. It is read-only; a file that fails Verify must not be trusted
// and cannot be repaired in place.
func (l *List) Verify() (Stats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return Stats{}, ErrClosed
	}

	stats := Stats{
		Version:   CurrentVersion,
		Capacity:  int(l.capacity),
		Size:      int(l.size),
		FileBytes: l.tail,
	}

	pos := l.dataStart()
	for i := 0; i < int(l.size); i++ {
		s, err := l.readSlot(i)
		if err != nil {
			return Stats{}, err
		}
		if err := s.validate(l.tail); err != nil {
			return Stats{}, err
		}
		if err := l.checkRegion(i, s, pos); err != nil {
			return Stats{}, err
		}
		pos = s.offset + int64(s.length)
		stats.DataBytes += int64(s.length)
	}

	// Slots past size are normally zero. A run of valid non-zero slots
	// here means a previous writer appended records but crashed before
	// Close persisted the count. The records are intact, just uncounted.
	for i := int(l.size); i < int(l.capacity); i++ {
		s, err := l.readSlot(i)
		if err != nil {
			return Stats{}, err
		}
		if s.zero() {
			break
		}
		if s.validate(l.tail) != nil || l.checkRegion(i, s, pos) != nil {
			break
		}
		pos = s.offset + int64(s.length)
		stats.Orphans++
	}

	return stats, nil
}

// checkRegion rejects a slot whose record sits outside the data region
// or begins before the end of the previous record.
func (l *List) checkRegion(i int, s slot, pos int64) error {
	if s.offset < l.dataStart() {
		return fmt.Errorf("%w: record %d offset %d inside index region", ErrCorrupt, i, s.offset)
	}
	if s.offset < pos {
		return fmt.Errorf("%w: record %d at %d overlaps previous record ending at %d", ErrCorrupt, i, s.offset, pos)
	}
	return nil
}
