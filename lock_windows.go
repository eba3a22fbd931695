//go:build windows

package fixedlist

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func (l *fileLock) lock(mode lockMode) error {
	flags := uint32(windows.LOCKFILE_FAIL_IMMEDIATELY)
	if mode == lockExclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}

	// Lock the whole file region; the handle is the unit of ownership.
	var overlapped windows.Overlapped
	err := windows.LockFileEx(windows.Handle(l.f.Fd()), flags, 0, 0xFFFFFFFF, 0xFFFFFFFF, &overlapped)
	if err == windows.ERROR_LOCK_VIOLATION {
		return fmt.Errorf("%w: %s", ErrLocked, l.f.Name())
	}
	return err
}

func (l *fileLock) unlock() error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(l.f.Fd()), 0, 0xFFFFFFFF, 0xFFFFFFFF, &overlapped)
}
