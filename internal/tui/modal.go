// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lburgey/svnrun/internal/svn"
)

// maxOutputLines is the maximum number of output lines shown in the
// detail modal before trailing lines are elided.
const maxOutputLines = 20

// renderDetailModal renders the invocation detail modal.
func (m Model) renderDetailModal() string {
	if m.selectedEntry == nil {
		return m.styles.ModalBorder.Render("No entry selected")
	}
	entry := *m.selectedEntry

	var lines []string
	lines = append(lines, m.styles.ModalTitle.Render(fmt.Sprintf("Invocation #%d - %s", entry.ID, entry.Action)))
	lines = append(lines, strings.Repeat("-", 50))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Command:  %s", entry.CommandLine()))
	lines = append(lines, fmt.Sprintf("Started:  %s", entry.StartedAt.Format("2006-01-02 15:04:05")))

	duration := (time.Duration(entry.DurationMS) * time.Millisecond).Round(time.Millisecond)
	outcome := fmt.Sprintf("Outcome:  %s (exit %d, %s)", entry.Outcome(), entry.ExitCode, duration)
	if entry.Failed() || entry.TimedOut {
		lines = append(lines, m.styles.Error.Render(outcome))
	} else {
		lines = append(lines, outcome)
	}

	if entry.Truncated {
		lines = append(lines, m.styles.HeaderInfo.Render("Output was truncated at the capture limit"))
	}

	if out := strings.TrimRight(entry.Stdout, "\n"); out != "" {
		lines = append(lines, "", "Output:")
		lines = append(lines, m.renderOutputLines(out)...)
	}

	if errOut := strings.TrimRight(entry.Stderr, "\n"); errOut != "" {
		lines = append(lines, "", m.styles.Error.Render("Stderr:"))
		lines = append(lines, m.renderOutputLines(errOut)...)
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.HelpKey.Render("[r] rerun  [esc] close"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.ModalBorder.Render(content)
}

// renderOutputLines indents captured output and highlights conflict
// markers, eliding past maxOutputLines.
func (m Model) renderOutputLines(output string) []string {
	all := strings.Split(output, "\n")
	shown := all
	if len(shown) > maxOutputLines {
		shown = shown[:maxOutputLines]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, line := range shown {
		if svn.IsConflictLine(line) {
			lines = append(lines, "  "+m.styles.Conflict.Render(line))
			continue
		}
		lines = append(lines, "  "+line)
	}

	if len(all) > maxOutputLines {
		lines = append(lines, m.styles.HeaderInfo.Render(fmt.Sprintf("  ... (%d more lines)", len(all)-maxOutputLines)))
	}

	return lines
}

// renderClearModal renders the clear-history confirmation modal.
func (m Model) renderClearModal() string {
	var lines []string
	lines = append(lines, m.styles.ModalTitle.Render("Clear History"))
	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Delete all %d recorded invocation%s?", len(m.entries), pluralize(len(m.entries))))
	lines = append(lines, "This cannot be undone.")
	lines = append(lines, "")
	lines = append(lines, m.styles.HelpKey.Render("Continue? [y/N]"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.ModalBorder.Render(content)
}

// renderHelpModal renders the keybinding help modal.
func (m Model) renderHelpModal() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"j / down", "move down"},
		{"k / up", "move up"},
		{"g / G", "jump to top / bottom"},
		{"pgup / pgdn", "page up / down"},
		{"/", "search action or command"},
		{"enter", "show invocation details"},
		{"r", "rerun selected invocation"},
		{"e", "export visible entries to JSON"},
		{"c", "clear history"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var lines []string
	lines = append(lines, m.styles.ModalTitle.Render("Keybindings"))
	lines = append(lines, strings.Repeat("-", 40))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%s  %s",
			m.styles.HelpKey.Render(fmt.Sprintf("%-12s", b.key)),
			m.styles.HelpDesc.Render(b.desc),
		))
	}
	lines = append(lines, "")
	lines = append(lines, m.styles.HelpDesc.Render("Press esc to close"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.ModalBorder.Render(content)
}

// pluralize returns "s" if count != 1, empty string otherwise.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
