//go:build unix

package fixedlist

import (
	"errors"
	"fmt"
	"syscall"
)

func (l *fileLock) lock(mode lockMode) error {
	op := syscall.LOCK_SH
	if mode == lockExclusive {
		op = syscall.LOCK_EX
	}
	// Non-blocking: a conflicting holder surfaces ErrLocked immediately.
	err := syscall.Flock(int(l.f.Fd()), op|syscall.LOCK_NB)
	if errors.Is(err, syscall.EWOULDBLOCK) {
		return fmt.Errorf("%w: %s", ErrLocked, l.f.Name())
	}
	return err
}

func (l *fileLock) unlock() error {
	return syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
}
