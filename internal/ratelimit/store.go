package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Entry is a window counter.
type Entry struct {
	Count       int
	WindowStart time.Time
}

func (e Entry) expired(now time.Time, window time.Duration) bool {
	return now.Sub(e.WindowStart) >= window
}

// Store persists window counters.
type Store interface {
	// Get returns the entry for key and whether it exists.
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Reset starts a fresh zero-count window at start.
	Reset(ctx context.Context, key string, start time.Time, window time.Duration) error
	// Increment adds one to the current window, or starts a new window with
	// a count of one when the entry is missing or expired. It is atomic per key.
	Increment(ctx context.Context, key string, now time.Time, window time.Duration) (Entry, error)
}

// MemoryStore keeps counters in a process-local map. Counters are lost on
// restart and are not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	Entry
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return ent.Entry, true, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string, start time.Time, window time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &memoryEntry{
		Entry:     Entry{Count: 0, WindowStart: start},
		expiresAt: start.Add(window),
	}
	return nil
}

func (s *MemoryStore) Increment(_ context.Context, key string, now time.Time, window time.Duration) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || ent.expired(now, window) {
		ent = &memoryEntry{
			Entry:     Entry{Count: 0, WindowStart: now},
			expiresAt: now.Add(window),
		}
		s.entries[key] = ent
	}
	ent.Count++
	return ent.Entry, nil
}

// Cleanup drops entries whose window ended before now and returns how many
// were removed.
func (s *MemoryStore) Cleanup(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, ent := range s.entries {
		if !ent.expiresAt.After(now) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ Store = (*MemoryStore)(nil)
