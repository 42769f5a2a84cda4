// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Status colors for invocation outcomes.
const (
	ColorOK        = lipgloss.Color("#00FF00") // Green - successful invocations
	ColorFailed    = lipgloss.Color("#FF0000") // Red - non-zero exits
	ColorTimedOut  = lipgloss.Color("#FFFF00") // Yellow - timeouts
	ColorCancelled = lipgloss.Color("#808080") // Gray - cancelled
)

// UI colors for general interface elements.
const (
	ColorPrimary   = lipgloss.Color("#7D56F4") // Purple accent
	ColorSecondary = lipgloss.Color("#FFFDF5") // Off-white text
	ColorMuted     = lipgloss.Color("#626262") // Muted text
	ColorBorder    = lipgloss.Color("#383838") // Border color
	ColorConflict  = lipgloss.Color("#FF4500") // Orange-red for conflicts
)

// Styles contains all lipgloss style definitions for the TUI.
type Styles struct {
	// Header styles
	HeaderTitle lipgloss.Style
	HeaderInfo  lipgloss.Style

	// Search bar
	SearchBar lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	SelectedRow lipgloss.Style

	// Outcome indicators
	OutcomeOK        lipgloss.Style
	OutcomeFailed    lipgloss.Style
	OutcomeTimedOut  lipgloss.Style
	OutcomeCancelled lipgloss.Style

	// Modal styles
	ModalBorder  lipgloss.Style
	ModalTitle   lipgloss.Style
	ModalContent lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Message styles
	Error   lipgloss.Style
	Success lipgloss.Style

	// Conflict highlight inside detail modals
	Conflict lipgloss.Style
}

// DefaultStyles creates a new Styles instance with default styling.
func DefaultStyles() Styles {
	return Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(ColorMuted),

		SearchBar: lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1),

		TableHeader: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			BorderBottom(true).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1),

		SelectedRow: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1),

		OutcomeOK: lipgloss.NewStyle().
			Foreground(ColorOK),

		OutcomeFailed: lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true),

		OutcomeTimedOut: lipgloss.NewStyle().
			Foreground(ColorTimedOut).
			Bold(true),

		OutcomeCancelled: lipgloss.NewStyle().
			Foreground(ColorCancelled),

		ModalBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1),

		ModalContent: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Error: lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true),

		Conflict: lipgloss.NewStyle().
			Foreground(ColorConflict).
			Bold(true),
	}
}
