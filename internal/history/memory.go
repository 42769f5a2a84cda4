// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package history

import "sync"

// MemoryStore is a bounded in-memory history with ring-buffer semantics:
// appends are O(1), and once the configured capacity is reached the oldest
// entry is evicted with each append. Entries are never reordered.
//
// Stores are constructed explicitly and passed to their users rather than
// held in package-level state, so tests can run isolated instances.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []Entry // ring storage, len == capacity once full
	head     int     // index of the oldest entry
	count    int
	capacity int
	nextID   int64
}

// NewMemoryStore creates a store retaining at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		entries:  make([]Entry, capacity),
		capacity: capacity,
		nextID:   1,
	}
}

// Append implements Store.
func (s *MemoryStore) Append(entry Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++

	if s.count == s.capacity {
		// Overwrite the oldest slot.
		s.entries[s.head] = entry
		s.head = (s.head + 1) % s.capacity
	} else {
		s.entries[(s.head+s.count)%s.capacity] = entry
		s.count++
	}

	return entry, nil
}

// List implements Store.
func (s *MemoryStore) List(limit, offset int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(limit, offset, ""), nil
}

// Get implements Store.
func (s *MemoryStore) Get(id int64) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.count; i++ {
		entry := s.entries[(s.head+i)%s.capacity]
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, ErrNotFound
}

// Search implements Store.
func (s *MemoryStore) Search(query string, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(limit, 0, query), nil
}

// Clear implements Store.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.head = 0
	s.count = 0
	return nil
}

// Len implements Store.
func (s *MemoryStore) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

// collect walks entries newest-first. Callers hold s.mu.
func (s *MemoryStore) collect(limit, offset int, query string) []Entry {
	result := make([]Entry, 0, s.count)
	skipped := 0
	for i := s.count - 1; i >= 0; i-- {
		entry := s.entries[(s.head+i)%s.capacity]
		if !entry.Matches(query) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, entry)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

var _ Store = (*MemoryStore)(nil)
