// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lburgey/svnrun/internal/dispatch"
	"github.com/lburgey/svnrun/internal/history"
	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/testutil"
)

// createTestModel creates a test model preloaded with count entries.
func createTestModel(count int, height int) Model {
	store := history.NewMemoryStore(count + 10)
	for i := 0; i < count; i++ {
		entry := testutil.NewTestEntry(
			testutil.WithAction(fmt.Sprintf("action-%d", i)),
			testutil.WithStartedAt(time.Now().Add(-time.Duration(count-i) * time.Minute)),
		)
		if _, err := store.Append(entry); err != nil {
			panic(err)
		}
	}

	d := dispatch.New(registry.New(), testutil.NewMockRunner(), store)
	m := NewModel(d)
	m.height = height
	m.width = 100

	entries, err := store.List(0, 0)
	if err != nil {
		panic(err)
	}
	m.entries = entries
	m.refreshVisible()
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNavigationDown_ScrollsWhenCursorPastVisible(t *testing.T) {
	m := createTestModel(50, 16) // 16 - 6 reserved = 10 visible rows

	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}
	if m.viewportOffset != 0 {
		t.Errorf("expected viewportOffset at 0, got %d", m.viewportOffset)
	}

	for i := 0; i < 15; i++ {
		newModel, _ := m.Update(keyRune('j'))
		m = newModel.(Model)
	}

	if m.cursor != 15 {
		t.Errorf("expected cursor at 15, got %d", m.cursor)
	}

	rows := m.visibleRows()
	if m.cursor < m.viewportOffset || m.cursor >= m.viewportOffset+rows {
		t.Errorf("cursor %d not visible in viewport (offset=%d, rows=%d)",
			m.cursor, m.viewportOffset, rows)
	}
}

func TestNavigation_ClampsAtBounds(t *testing.T) {
	m := createTestModel(3, 20)

	newModel, _ := m.Update(keyRune('k'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor moved above 0: %d", m.cursor)
	}

	for i := 0; i < 10; i++ {
		newModel, _ := m.Update(keyRune('j'))
		m = newModel.(Model)
	}
	if m.cursor != 2 {
		t.Errorf("cursor moved past last entry: %d", m.cursor)
	}
}

func TestNavigation_JumpKeys(t *testing.T) {
	m := createTestModel(30, 16)

	newModel, _ := m.Update(keyRune('G'))
	m = newModel.(Model)
	if m.cursor != 29 {
		t.Errorf("G should jump to last entry, cursor at %d", m.cursor)
	}

	newModel, _ = m.Update(keyRune('g'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("g should jump to first entry, cursor at %d", m.cursor)
	}
	if m.viewportOffset != 0 {
		t.Errorf("viewport should follow cursor to top, offset at %d", m.viewportOffset)
	}
}

func TestNavigation_EmptyHistory(t *testing.T) {
	m := createTestModel(0, 16)

	for _, r := range []rune{'j', 'k', 'g', 'G'} {
		newModel, _ := m.Update(keyRune(r))
		m = newModel.(Model)
		if m.cursor != 0 {
			t.Errorf("cursor moved on empty history after %q: %d", r, m.cursor)
		}
	}
}

func TestSearch_FiltersEntries(t *testing.T) {
	m := createTestModel(5, 20)

	newModel, _ := m.Update(keyRune('/'))
	m = newModel.(Model)
	if !m.searchMode {
		t.Fatal("expected search mode after /")
	}

	for _, r := range "action-3" {
		newModel, _ = m.Update(keyRune(r))
		m = newModel.(Model)
	}
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if m.searchMode {
		t.Error("expected search mode to end on enter")
	}
	if len(m.Visible()) != 1 {
		t.Fatalf("expected 1 matching entry, got %d", len(m.Visible()))
	}
	if m.Visible()[0].Action != "action-3" {
		t.Errorf("unexpected match: %s", m.Visible()[0].Action)
	}
}

func TestSearch_EscapeClearsFilter(t *testing.T) {
	m := createTestModel(5, 20)

	newModel, _ := m.Update(keyRune('/'))
	m = newModel.(Model)
	for _, r := range "action-3" {
		newModel, _ = m.Update(keyRune(r))
		m = newModel.(Model)
	}
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = newModel.(Model)

	if len(m.Visible()) != 5 {
		t.Errorf("escape should restore all entries, got %d", len(m.Visible()))
	}
}

func TestQuit(t *testing.T) {
	m := createTestModel(1, 20)
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
