package fixedlist

import (
	"bytes"
	"errors"
	"testing"
)

func TestGetOutOfRange(t *testing.T) {
	list, _ := createTestList(t, 3)
	list.Append([]byte("a"))

	for _, index := range []int{-1, -100, 1, 2, 3} {
		if _, err := list.Get(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): got %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

// Indices between size and capacity point at zero-filled placeholder
// slots. They must be rejected as out of range before any slot is read,
// not reported as corruption.
func TestGetUnoccupiedSlot(t *testing.T) {
	list, _ := createTestList(t, 5)
	list.Append([]byte("a"))

	if _, err := list.Get(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(3): got %v, want ErrIndexOutOfRange", err)
	}
}

func TestGetEmptyList(t *testing.T) {
	list, _ := createTestList(t, 3)

	if _, err := list.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get on empty list: got %v, want ErrIndexOutOfRange", err)
	}
}

// Get must return a fresh buffer, never a view into shared state.
func TestGetReturnsCopy(t *testing.T) {
	list, _ := createTestList(t, 1)
	list.Append([]byte("abc"))

	first, _ := list.Get(0)
	first[0] = 'X'

	second, err := list.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(second, []byte("abc")) {
		t.Errorf("Get after mutating previous result = %q, want %q", second, "abc")
	}
}

func TestGetOnWriterAndReader(t *testing.T) {
	records := randomRecords(5, 64)
	list, path := createTestList(t, 5)
	for _, record := range records {
		list.Append(record)
	}

	// Writer sees its own appends.
	for i, want := range records {
		got, err := list.Get(i)
		if err != nil {
			t.Fatalf("writer Get(%d): %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("writer Get(%d) = %q, want %q", i, got, want)
		}
	}
	list.Close()

	// Reader sees the same bytes after reopen.
	reader := openTestList(t, path)
	for i, want := range records {
		got, err := reader.Get(i)
		if err != nil {
			t.Fatalf("reader Get(%d): %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("reader Get(%d) = %q, want %q", i, got, want)
		}
	}
}
