// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package tui provides the Bubble Tea history browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lburgey/svnrun/internal/dispatch"
	"github.com/lburgey/svnrun/internal/export"
	"github.com/lburgey/svnrun/internal/history"
)

// ModalType represents the type of modal currently displayed.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalDetail
	ModalConfirmClear
	ModalHelp
)

// Model is the main TUI model for the history browser.
type Model struct {
	// Data
	entries  []history.Entry // all loaded entries, newest first
	visible  []history.Entry // entries after search filtering
	dispatch *dispatch.Dispatcher

	// UI state
	cursor         int
	viewportOffset int

	// Modals
	activeModal   ModalType
	selectedEntry *history.Entry

	// Search
	searchMode  bool
	searchQuery string

	// Async state
	rerunning bool

	// Dimensions
	width, height int

	// Messages
	lastError     error
	statusMessage string

	// Styles
	styles Styles
}

// EntriesLoadedMsg is sent when history entries have been loaded.
type EntriesLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// RerunCompleteMsg is sent when a rerun finishes.
type RerunCompleteMsg struct {
	Entry history.Entry
	Err   error
}

// ClearedMsg is sent when the history has been cleared.
type ClearedMsg struct {
	Err error
}

// ExportCompleteMsg is sent when the history has been exported to a file.
type ExportCompleteMsg struct {
	Filename string
	Err      error
}

// NewModel creates a new TUI model over the dispatcher's history store.
func NewModel(d *dispatch.Dispatcher) Model {
	return Model{
		dispatch:    d,
		activeModal: ModalNone,
		styles:      DefaultStyles(),
	}
}

// Init implements tea.Model. It loads the history on startup.
func (m Model) Init() tea.Cmd {
	return m.loadEntries()
}

// loadEntries returns a command that reads all entries from the store.
func (m Model) loadEntries() tea.Cmd {
	store := m.dispatch.Store()
	return func() tea.Msg {
		entries, err := store.List(0, 0)
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

// rerunEntry returns a command that re-issues the entry and reloads.
func (m Model) rerunEntry(id int64) tea.Cmd {
	d := m.dispatch
	return func() tea.Msg {
		entry, err := d.Rerun(context.Background(), id)
		return RerunCompleteMsg{Entry: entry, Err: err}
	}
}

// clearHistory returns a command that removes all entries.
func (m Model) clearHistory() tea.Cmd {
	store := m.dispatch.Store()
	return func() tea.Msg {
		return ClearedMsg{Err: store.Clear()}
	}
}

// exportHistory returns a command that writes the visible entries to a
// timestamped JSON file.
func (m Model) exportHistory() tea.Cmd {
	entries := m.visible
	return func() tea.Msg {
		filename, err := export.Export(entries)
		return ExportCompleteMsg{Filename: filename, Err: err}
	}
}

// refreshVisible reapplies the search query and clamps the cursor.
func (m *Model) refreshVisible() {
	if m.searchQuery == "" {
		m.visible = m.entries
	} else {
		m.visible = nil
		for _, entry := range m.entries {
			if entry.Matches(m.searchQuery) {
				m.visible = append(m.visible, entry)
			}
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampViewport()
}

// Visible exposes the filtered entries for testing.
func (m Model) Visible() []history.Entry {
	return m.visible
}

// Cursor exposes the cursor position for testing.
func (m Model) Cursor() int {
	return m.cursor
}

// ActiveModal exposes the current modal for testing.
func (m Model) ActiveModal() ModalType {
	return m.activeModal
}
