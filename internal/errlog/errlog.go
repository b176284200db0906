// Package errlog keeps a small ring of recent fetch diagnostics for the
// dashboard's diagnostics view. The log is owned by whoever constructs the
// upstream client and passed in by reference, not a process-wide singleton.
package errlog

import (
	"sync"
	"time"
)

const defaultCapacity = 8

// Entry is one recorded diagnostic.
type Entry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// Log is a bounded, mutex-guarded append-only ring of diagnostics. Appends
// beyond capacity evict the oldest entry.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
	now     func() time.Time
}

// New constructs a Log. A non-positive capacity falls back to the default.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Log{
		entries: make([]Entry, 0, capacity),
		cap:     capacity,
		now:     time.Now,
	}
}

// Append records a message, evicting the oldest entry when full.
func (l *Log) Append(message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == l.cap {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.cap-1]
	}
	l.entries = append(l.entries, Entry{At: l.now(), Message: message})
}

// Entries returns a copy of the current entries, oldest first.
func (l *Log) Entries() []Entry {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
