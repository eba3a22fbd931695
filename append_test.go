package fixedlist

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestAppendVisibleImmediately(t *testing.T) {
	list, _ := createTestList(t, 2)

	if err := list.Append([]byte("hello")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := list.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Errorf("Get = %q, want %q", got, "hello")
	}
}

func TestAppendSizeMonotonic(t *testing.T) {
	list, _ := createTestList(t, 10)
	records := randomRecords(10, 50)

	for i, record := range records {
		if list.Size() != i {
			t.Fatalf("Size before append %d = %d", i, list.Size())
		}
		if err := list.Append(record); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if list.Size() != i+1 {
			t.Fatalf("Size after append %d = %d, want %d", i, list.Size(), i+1)
		}
	}
}

func TestAppendEmptyRecord(t *testing.T) {
	list, _ := createTestList(t, 1)

	if err := list.Append(nil); !errors.Is(err, ErrEmptyRecord) {
		t.Errorf("Append(nil): got %v, want ErrEmptyRecord", err)
	}
	if err := list.Append([]byte{}); !errors.Is(err, ErrEmptyRecord) {
		t.Errorf("Append(empty): got %v, want ErrEmptyRecord", err)
	}
	if list.Size() != 0 {
		t.Errorf("Size = %d after rejected appends, want 0", list.Size())
	}
}

// The slot length field is an i32. A record of 2^31..2^32-1 bytes would
// encode as a negative length that Get rejects, and one of >=2^32 bytes
// would wrap to a small positive length and read back the wrong bytes —
// both after Append reported success. The guard runs before any write;
// it is exercised directly because pushing multi-gigabyte allocations
// through Append is not a reasonable test.
func TestAppendRecordTooLarge(t *testing.T) {
	if err := checkRecord(0); !errors.Is(err, ErrEmptyRecord) {
		t.Errorf("checkRecord(0): got %v, want ErrEmptyRecord", err)
	}
	if err := checkRecord(1); err != nil {
		t.Errorf("checkRecord(1): %v", err)
	}
	if err := checkRecord(math.MaxInt32); err != nil {
		t.Errorf("checkRecord(MaxInt32): %v", err)
	}

	// The negative-encoding band, the wrap point, and a wrapped length
	// that would silently truncate to 8 bytes.
	for _, n := range []int64{math.MaxInt32 + 1, 1 << 32, 1<<32 + 8} {
		if err := checkRecord(n); !errors.Is(err, ErrRecordTooLarge) {
			t.Errorf("checkRecord(%d): got %v, want ErrRecordTooLarge", n, err)
		}
	}
}

func TestAppendAtCapacity(t *testing.T) {
	list, _ := createTestList(t, 2)
	list.Append([]byte("a"))
	list.Append([]byte("b"))

	sizeBefore := list.Size()
	tailBefore := list.tail

	if err := list.Append([]byte("c")); !errors.Is(err, ErrFull) {
		t.Errorf("Append at capacity: got %v, want ErrFull", err)
	}
	if list.Size() != sizeBefore {
		t.Errorf("Size changed after rejected append: %d -> %d", sizeBefore, list.Size())
	}
	if list.tail != tailBefore {
		t.Errorf("tail changed after rejected append: %d -> %d", tailBefore, list.tail)
	}
}

func TestAppendOnReader(t *testing.T) {
	list, path := createTestList(t, 2)
	list.Append([]byte("a"))
	list.Close()

	reader := openTestList(t, path)
	if err := reader.Append([]byte("b")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Append on reader: got %v, want ErrReadOnly", err)
	}
}

// Flush makes the count durable mid-session: a reader opened before the
// writer closes must see every flushed record.
func TestFlushPersistsSize(t *testing.T) {
	list, path := createTestList(t, 3)
	list.Append([]byte("a"))
	list.Append([]byte("bb"))

	if err := list.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reader := openTestList(t, path)
	if reader.Size() != 2 {
		t.Errorf("Size after flush = %d, want 2", reader.Size())
	}
	got, err := reader.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("bb")) {
		t.Errorf("Get(1) = %q, want %q", got, "bb")
	}
}

func TestFlushOnReader(t *testing.T) {
	list, path := createTestList(t, 1)
	list.Append([]byte("a"))
	list.Close()

	reader := openTestList(t, path)
	if err := reader.Flush(); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Flush on reader: got %v, want ErrReadOnly", err)
	}
}

// Without Flush, the on-disk size lags the in-memory one until Close.
// This is the documented durability trade-off: a reader opened mid-write
// sees only what was last flushed.
func TestUnflushedSizeNotVisible(t *testing.T) {
	list, path := createTestList(t, 2)
	list.Append([]byte("a"))

	reader := openTestList(t, path)
	if reader.Size() != 0 {
		t.Errorf("Size before writer close = %d, want 0", reader.Size())
	}
}
