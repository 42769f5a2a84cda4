// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampViewport()
	case EntriesLoadedMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
		} else {
			m.entries = msg.Entries
			m.lastError = nil
			m.refreshVisible()
		}
	case RerunCompleteMsg:
		m.rerunning = false
		if msg.Err != nil {
			m.lastError = msg.Err
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Reran %s: %s", msg.Entry.Action, msg.Entry.Outcome())
		return m, m.loadEntries()
	case ClearedMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
			return m, nil
		}
		m.statusMessage = "History cleared"
		return m, m.loadEntries()
	case ExportCompleteMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
		} else {
			m.statusMessage = fmt.Sprintf("Exported to %s", msg.Filename)
		}
	}
	return m, nil
}

// handleKeyMsg routes key messages to the appropriate handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.handleSearchInput(msg)
	}

	if m.activeModal != ModalNone {
		return m.handleModalKeys(msg)
	}

	return m.handleMainViewKeys(msg)
}

// handleSearchInput handles key input when in search mode.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searchMode = false
		m.searchQuery = ""
		m.refreshVisible()
		return m, nil

	case tea.KeyEnter:
		m.searchMode = false
		m.refreshVisible()
		return m, nil

	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.refreshVisible()
		}
		return m, nil

	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.refreshVisible()
		return m, nil

	case tea.KeySpace:
		m.searchQuery += " "
		m.refreshVisible()
		return m, nil
	}

	return m, nil
}

// handleModalKeys handles key input when a modal is active.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.activeModal = ModalNone
		m.selectedEntry = nil
		return m, nil

	case "enter", "y":
		if m.activeModal == ModalConfirmClear {
			m.activeModal = ModalNone
			return m, m.clearHistory()
		}
		m.activeModal = ModalNone
		m.selectedEntry = nil
		return m, nil

	case "n":
		if m.activeModal == ModalConfirmClear {
			m.activeModal = ModalNone
		}
		return m, nil

	case "r":
		if m.activeModal == ModalDetail && m.selectedEntry != nil && !m.rerunning {
			id := m.selectedEntry.ID
			m.activeModal = ModalNone
			m.selectedEntry = nil
			m.rerunning = true
			return m, m.rerunEntry(id)
		}
		return m, nil
	}

	return m, nil
}

// handleMainViewKeys handles key input in the main history list view.
func (m Model) handleMainViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Navigation keys
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.visible)-1)
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampViewport()
		return m, nil

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
		m.clampViewport()
		return m, nil

	case "g":
		m.cursor = 0
		m.clampViewport()
		return m, nil

	case "G":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
		m.clampViewport()
		return m, nil

	case "pgdown":
		m.cursor = min(m.cursor+m.visibleRows(), max(len(m.visible)-1, 0))
		m.clampViewport()
		return m, nil

	case "pgup":
		m.cursor = max(m.cursor-m.visibleRows(), 0)
		m.clampViewport()
		return m, nil

	// Search mode
	case "/":
		m.searchMode = true
		m.searchQuery = ""
		return m, nil

	// Action keys
	case "enter":
		if len(m.visible) > 0 && m.cursor < len(m.visible) {
			entry := m.visible[m.cursor]
			m.selectedEntry = &entry
			m.activeModal = ModalDetail
		}
		return m, nil

	case "r":
		if len(m.visible) > 0 && m.cursor < len(m.visible) && !m.rerunning {
			m.rerunning = true
			return m, m.rerunEntry(m.visible[m.cursor].ID)
		}
		return m, nil

	case "c":
		if len(m.entries) > 0 {
			m.activeModal = ModalConfirmClear
		}
		return m, nil

	case "e":
		if len(m.visible) > 0 {
			return m, m.exportHistory()
		}
		m.statusMessage = "Nothing to export"
		return m, nil

	// Meta keys
	case "?":
		m.activeModal = ModalHelp
		return m, nil

	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.refreshVisible()
		}
		return m, nil
	}

	return m, nil
}

// visibleRows returns how many table rows fit the current height.
func (m Model) visibleRows() int {
	rows := m.height - reservedRows
	if rows < 1 {
		return 5
	}
	return rows
}

// clampViewport keeps the cursor inside the visible window.
func (m *Model) clampViewport() {
	rows := m.visibleRows()
	if m.cursor < m.viewportOffset {
		m.viewportOffset = m.cursor
	}
	if m.cursor >= m.viewportOffset+rows {
		m.viewportOffset = m.cursor - rows + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}
