// Core list type and the two construction paths.
//
// Create builds a fresh writer: header plus a zero-filled index table,
// data region empty. Open recovers a reader from an existing file. The
// two modes expose disjoint capabilities — a reader never mutates the
// file and cannot be upgraded to a writer.
package fixedlist

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
)

// Config holds list configuration options. The zero value is a working
// default.
type Config struct {
	SyncWrites bool // Call fsync after every append
	LockFile   bool // Hold an advisory OS lock for the instance lifetime
	ReadBuffer int  // Buffer size for forward scans (default 64KB)
}

// List is a disk-backed fixed-capacity list of byte records. All methods
// are safe for concurrent use within one process; the file itself must
// not be written by anyone else while a writer holds it.
type List struct {
	f        *os.File
	lock     *fileLock // nil unless Config.LockFile
	config   Config
	capacity int32
	size     int32
	tail     int64 // current file length; append offset on a writer
	readOnly bool
	closed   bool
	mu       sync.RWMutex
}

// Create creates the file at path and returns a writer with the given
// capacity and size zero. Parent directories are created as needed. If
// anything fails after the file has been created, the partial file is
// removed so no corrupt artifact is left behind.
func Create(path string, capacity int, config Config) (*List, error) {
	// The header's capacity field is an i32; anything it cannot
	// represent is invalid, not truncatable.
	if capacity <= 0 || capacity > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	config = withDefaults(config)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// O_EXCL closes the window between the Stat above and the create.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return nil, err
	}

	fail := func(err error) (*List, error) {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	l := &List{
		f:        f,
		config:   config,
		capacity: int32(capacity),
		tail:     slotPos(capacity),
	}

	if config.LockFile {
		l.lock = &fileLock{f: f}
		if err := l.lock.Lock(lockExclusive); err != nil {
			return fail(err)
		}
	}

	// Header and zero-filled index table in one write.
	hdr := header{version: CurrentVersion, capacity: int32(capacity)}
	buf := make([]byte, slotPos(capacity))
	copy(buf, hdr.encode())
	if _, err := f.WriteAt(buf, 0); err != nil {
		return fail(err)
	}
	if config.SyncWrites {
		if err := f.Sync(); err != nil {
			return fail(err)
		}
	}

	return l, nil
}

// Open opens an existing file as a read-only list. The size and capacity
// are recovered from the header.
func Open(path string, config Config) (*List, error) {
	config = withDefaults(config)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	f, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &List{
		f:        f,
		config:   config,
		tail:     info.Size(),
		readOnly: true,
	}

	if config.LockFile {
		l.lock = &fileLock{f: f}
		if err := l.lock.Lock(lockShared); err != nil {
			f.Close()
			return nil, err
		}
	}

	hdr, err := readHeader(f)
	if err != nil {
		if l.lock != nil {
			l.lock.Unlock()
		}
		f.Close()
		return nil, err
	}
	if slotPos(int(hdr.capacity)) > info.Size() {
		if l.lock != nil {
			l.lock.Unlock()
		}
		f.Close()
		return nil, fmt.Errorf("%w: index table for capacity %d exceeds file size %d", ErrCorrupt, hdr.capacity, info.Size())
	}

	l.capacity = hdr.capacity
	l.size = hdr.size
	return l, nil
}

func withDefaults(config Config) Config {
	if config.ReadBuffer == 0 {
		config.ReadBuffer = 64 * 1024
	}
	return config
}

// Size returns the number of records currently in the list.
func (l *List) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int(l.size)
}

// Capacity returns the maximum number of records the list can ever hold.
func (l *List) Capacity() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int(l.capacity)
}

// dataStart returns the byte position where the data region begins.
func (l *List) dataStart() int64 {
	return slotPos(int(l.capacity))
}
