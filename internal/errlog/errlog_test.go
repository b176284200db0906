package errlog

import "testing"

func TestAppendKeepsOrder(t *testing.T) {
	log := New(4)
	log.Append("first")
	log.Append("second")

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "first" || entries[1].Message != "second" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestAppendEvictsOldestWhenFull(t *testing.T) {
	log := New(3)
	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		log.Append(msg)
	}

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"c", "d", "e"}
	for i, w := range want {
		if entries[i].Message != w {
			t.Fatalf("entry %d: expected %q, got %q", i, w, entries[i].Message)
		}
	}
}

func TestNilLogIsSafe(t *testing.T) {
	var log *Log
	log.Append("ignored")
	if log.Len() != 0 {
		t.Fatal("expected zero length")
	}
	if entries := log.Entries(); entries != nil {
		t.Fatalf("expected nil entries, got %v", entries)
	}
}

func TestDefaultCapacity(t *testing.T) {
	log := New(0)
	for i := 0; i < 20; i++ {
		log.Append("x")
	}
	if log.Len() != defaultCapacity {
		t.Fatalf("expected %d entries, got %d", defaultCapacity, log.Len())
	}
}
