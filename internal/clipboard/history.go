package clipboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity bounds the capture log when no capacity is given.
const DefaultHistoryCapacity = 50

// Entry is one captured clipboard text.
type Entry struct {
	// ID uniquely identifies the capture.
	ID string

	// Content is the captured text.
	Content string

	// CapturedAt records when the capture happened.
	CapturedAt time.Time
}

// History is a bounded most-recent-first log of clipboard captures. Older
// entries rotate out once capacity is reached.
type History struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

// NewHistory creates a history holding at most capacity entries.
// capacity < 1 falls back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Record captures content as the newest entry and returns it. A capture
// identical to the current newest entry is not duplicated; the existing
// entry is returned instead.
func (h *History) Record(content string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[0].Content == content {
		return h.entries[0]
	}

	entry := Entry{
		ID:         uuid.NewString(),
		Content:    content,
		CapturedAt: time.Now(),
	}

	// Newest first; rotate the oldest out at capacity.
	h.entries = append([]Entry{entry}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
	return entry
}

// Recent returns up to n entries, newest first. n < 1 returns all.
func (h *History) Recent(n int) []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n < 1 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, n)
	copy(out, h.entries[:n])
	return out
}

// Get returns the entry with the given ID.
func (h *History) Get(id string) (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
