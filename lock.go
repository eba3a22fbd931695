// Opt-in OS-level file locking.
//
// With Config.LockFile set, a writer holds an exclusive advisory lock and
// a reader a shared one for the lifetime of the instance, so two writers
// (or a writer and a reader) on the same file fail fast with ErrLocked
// instead of silently corrupting each other. The default leaves locking
// off: the format assumes the caller coordinates access externally.
package fixedlist

import "os"

// lockMode selects shared (read) or exclusive (write) locking.
type lockMode int

const (
	lockShared lockMode = iota
	lockExclusive
)

// fileLock wraps a platform advisory lock on the list's file handle. The
// lock is acquired non-blocking: a held lock is a configuration error,
// not a queue to wait in.
type fileLock struct {
	f *os.File
}

func (l *fileLock) Lock(mode lockMode) error {
	return l.lock(mode)
}

func (l *fileLock) Unlock() error {
	return l.unlock()
}
