// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package history

import "errors"

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = errors.New("history entry not found")

// DefaultCapacity bounds a store when no capacity is configured.
const DefaultCapacity = 500

// Store persists command history. Implementations must serialize Append
// so it is safe under concurrent writers. List and Search are pure:
// calling them repeatedly without intervening writes returns identical
// results, newest first.
type Store interface {
	// Append records an entry, evicting the oldest entry first when the
	// store is at capacity. It returns the entry with its assigned id.
	Append(entry Entry) (Entry, error)

	// List returns up to limit entries newest-first, skipping offset
	// entries. A non-positive limit means no limit.
	List(limit, offset int) ([]Entry, error)

	// Get returns the entry with the given id, or ErrNotFound.
	Get(id int64) (Entry, error)

	// Search returns up to limit entries whose action or argv match the
	// query, newest first.
	Search(query string, limit int) ([]Entry, error)

	// Clear removes all entries.
	Clear() error

	// Len returns the number of retained entries.
	Len() (int, error)
}
