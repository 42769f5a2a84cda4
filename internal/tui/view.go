// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lburgey/svnrun/internal/history"
)

// reservedRows is the number of terminal rows taken by header, table
// header and footer.
const reservedRows = 6

// View implements tea.Model and renders the complete TUI.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderTableHeader(),
		m.renderTableBody(),
		m.renderFooter(),
	}

	if m.lastError != nil {
		errMsg := m.styles.Error.Render(fmt.Sprintf("Error: %s", m.lastError.Error()))
		sections = append([]string{errMsg}, sections...)
	}

	if m.searchMode {
		searchBar := m.styles.SearchBar.Render(
			fmt.Sprintf("/ %s (%d matches)_", m.searchQuery, len(m.visible)),
		)
		sections = append([]string{sections[0], searchBar}, sections[1:]...)
	}

	view := strings.Join(sections, "\n")

	if m.activeModal != ModalNone {
		var modalContent string
		switch m.activeModal {
		case ModalDetail:
			modalContent = m.renderDetailModal()
		case ModalConfirmClear:
			modalContent = m.renderClearModal()
		case ModalHelp:
			modalContent = m.renderHelpModal()
		default:
			modalContent = m.styles.ModalBorder.Render("Unknown modal")
		}
		view = lipgloss.JoinVertical(lipgloss.Left, view, modalContent)
	}

	return view
}

// renderHeader renders the title line with entry counts.
func (m Model) renderHeader() string {
	title := m.styles.HeaderTitle.Render("svnrun history")
	info := fmt.Sprintf(" - %d entries", len(m.visible))
	if m.searchQuery != "" {
		info = fmt.Sprintf(" - %d of %d entries (filter: %q)", len(m.visible), len(m.entries), m.searchQuery)
	}
	return title + m.styles.HeaderInfo.Render(info+"  [? Help]")
}

// renderTableHeader renders the table column headers.
func (m Model) renderTableHeader() string {
	header := fmt.Sprintf("%4s | %-19s | %-9s | %8s | %s",
		"ID", "STARTED", "OUTCOME", "TIME", "COMMAND")
	return m.styles.TableHeader.Width(m.width).Render(header)
}

// renderTableBody renders the history table body.
func (m Model) renderTableBody() string {
	if len(m.visible) == 0 {
		if m.searchQuery != "" {
			return m.styles.HeaderInfo.Render("No entries match the filter")
		}
		return m.styles.HeaderInfo.Render("No history yet")
	}

	startIdx := m.viewportOffset
	endIdx := min(startIdx+m.visibleRows(), len(m.visible))

	var rows []string
	for i := startIdx; i < endIdx; i++ {
		entry := m.visible[i]

		style := m.styles.TableRow
		if i == m.cursor {
			style = m.styles.SelectedRow
		}

		duration := (time.Duration(entry.DurationMS) * time.Millisecond).Round(time.Millisecond)
		row := fmt.Sprintf("%4d | %-19s | %-9s | %8s | %s",
			entry.ID,
			entry.StartedAt.Format("2006-01-02 15:04:05"),
			m.renderOutcome(entry, i == m.cursor),
			duration,
			truncateString(entry.CommandLine(), max(m.width-52, 20)),
		)

		rows = append(rows, style.Width(m.width).Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderOutcome renders the outcome column with its status color. The
// selected row keeps the row background, so it stays unstyled.
func (m Model) renderOutcome(entry history.Entry, selected bool) string {
	outcome := string(entry.Outcome())
	if selected {
		return outcome
	}

	switch entry.Outcome() {
	case history.OutcomeFailed:
		return m.styles.OutcomeFailed.Render(outcome)
	case history.OutcomeTimedOut:
		return m.styles.OutcomeTimedOut.Render(outcome)
	case history.OutcomeCancelled:
		return m.styles.OutcomeCancelled.Render(outcome)
	default:
		return m.styles.OutcomeOK.Render(outcome)
	}
}

// renderFooter renders the footer with keybinding hints and status.
func (m Model) renderFooter() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"pgup/pgdn", "page"},
		{"enter", "details"},
		{"/", "search"},
		{"r", "rerun"},
		{"e", "export"},
		{"c", "clear"},
		{"q", "quit"},
	}

	var parts []string
	for i, b := range bindings {
		key := m.styles.HelpKey.Render(b.key)
		desc := m.styles.HelpDesc.Render(b.desc)
		parts = append(parts, fmt.Sprintf("%s %s", key, desc))
		if i < len(bindings)-1 {
			parts = append(parts, m.styles.HelpDesc.Render(" | "))
		}
	}

	keybindings := m.styles.SearchBar.Render(strings.Join(parts, ""))

	statusBar := ""
	switch {
	case m.rerunning:
		statusBar = m.styles.HelpKey.Render("Rerunning...")
	case m.statusMessage != "":
		statusBar = m.styles.Success.Render(m.statusMessage)
	}

	if statusBar == "" {
		return keybindings
	}
	return lipgloss.JoinVertical(lipgloss.Left, keybindings, statusBar)
}

// truncateString truncates a string to the specified length, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
