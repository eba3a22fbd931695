// Shutdown path.
//
// Close on a writer is where the size field finally reaches disk — until
// then only the in-memory counter knows how many records exist. The file
// handle is released on every exit path, even when the header flush
// fails, so a close never leaks the descriptor.
package fixedlist

// Close flushes the size to the header (writers only) and releases the
// file handle. After Close every other operation returns ErrClosed. A
// second Close is a no-op.
func (l *List) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	var errs []error
	if !l.readOnly {
		if err := writeSize(l.f, l.size); err != nil {
			errs = append(errs, err)
		}
		if err := l.f.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	if l.lock != nil {
		if err := l.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := l.f.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
