// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lburgey/svnrun/internal/db"
)

// setupSQLiteStore creates a SQLiteStore backed by an in-memory database.
func setupSQLiteStore(t *testing.T, capacity int) *SQLiteStore {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(database) })

	require.NoError(t, db.RunMigrations(database))

	return NewSQLiteStore(database, capacity)
}

func TestSQLiteStore_AppendAndGet(t *testing.T) {
	s := setupSQLiteStore(t, 10)

	entry := Entry{
		Action:     "commit",
		Args:       []string{"commit", "--non-interactive", "-m", "fix", "/repo"},
		Bound:      map[string]string{"path": "/repo", "message": "fix"},
		ExitCode:   0,
		Stdout:     "Committed revision 42.\n",
		DurationMS: 120,
		StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	appended, err := s.Append(entry)
	require.NoError(t, err)
	assert.Positive(t, appended.ID)

	got, err := s.Get(appended.ID)
	require.NoError(t, err)
	assert.Equal(t, "commit", got.Action)
	assert.Equal(t, entry.Args, got.Args)
	assert.Equal(t, entry.Bound, got.Bound)
	assert.Equal(t, "Committed revision 42.\n", got.Stdout)
	assert.Equal(t, int64(120), got.DurationMS)
	assert.True(t, got.StartedAt.Equal(entry.StartedAt))
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := setupSQLiteStore(t, 10)

	_, err := s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	s := setupSQLiteStore(t, 10)

	for _, action := range []string{"status", "update", "commit"} {
		_, err := s.Append(testEntry(action))
		require.NoError(t, err)
	}

	entries, err := s.List(0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "commit", entries[0].Action)
	assert.Equal(t, "status", entries[2].Action)
}

func TestSQLiteStore_CapacityEviction(t *testing.T) {
	s := setupSQLiteStore(t, 2)

	for _, action := range []string{"a", "b", "c"} {
		_, err := s.Append(testEntry(action))
		require.NoError(t, err)
	}

	entries, err := s.List(0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Action)
	assert.Equal(t, "b", entries[1].Action)
}

func TestSQLiteStore_ListLimitOffset(t *testing.T) {
	s := setupSQLiteStore(t, 10)
	for i := 0; i < 5; i++ {
		_, err := s.Append(testEntry(fmt.Sprintf("action-%d", i)))
		require.NoError(t, err)
	}

	entries, err := s.List(2, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "action-3", entries[0].Action)
	assert.Equal(t, "action-2", entries[1].Action)
}

func TestSQLiteStore_Search(t *testing.T) {
	s := setupSQLiteStore(t, 10)
	_, err := s.Append(testEntry("status"))
	require.NoError(t, err)
	_, err = s.Append(testEntry("update"))
	require.NoError(t, err)

	entries, err := s.Search("stat", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "status", entries[0].Action)
}

func TestSQLiteStore_ClearAndLen(t *testing.T) {
	s := setupSQLiteStore(t, 10)
	_, err := s.Append(testEntry("status"))
	require.NoError(t, err)

	count, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.Clear())

	count, err = s.Len()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLiteStore_RoundTripsFlags(t *testing.T) {
	s := setupSQLiteStore(t, 10)

	entry := testEntry("update")
	entry.ExitCode = -1
	entry.TimedOut = true
	entry.Truncated = true

	appended, err := s.Append(entry)
	require.NoError(t, err)

	got, err := s.Get(appended.ID)
	require.NoError(t, err)
	assert.True(t, got.TimedOut)
	assert.True(t, got.Truncated)
	assert.False(t, got.Cancelled)
	assert.Equal(t, -1, got.ExitCode)
	assert.Equal(t, OutcomeTimedOut, got.Outcome())
}
