// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package export provides export functionality for invocation history.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lburgey/svnrun/internal/analyze"
	"github.com/lburgey/svnrun/internal/history"
)

// ExportData represents the complete export structure.
type ExportData struct {
	ExportedAt time.Time       `json:"exported_at"`
	Total      int             `json:"total"`
	Summary    analyze.Summary `json:"summary"`
	Entries    []ExportedEntry `json:"entries"`
}

// ExportedEntry represents a single invocation in the export.
type ExportedEntry struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	Command    string    `json:"command"`
	Outcome    string    `json:"outcome"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
	Truncated  bool      `json:"truncated,omitempty"`
	StartedAt  time.Time `json:"started_at"`
}

// Export writes history entries as JSON to a timestamped file.
// Returns the filename on success or an empty string with an error on failure.
func Export(entries []history.Entry) (string, error) {
	filename := fmt.Sprintf("svnrun-history-%s.json", time.Now().Format("2006-01-02-150405"))
	if err := Write(entries, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// Write marshals the entries into the export envelope and writes them to
// the given path.
func Write(entries []history.Entry, path string) error {
	exported := make([]ExportedEntry, 0, len(entries))
	for _, entry := range entries {
		exported = append(exported, ExportedEntry{
			ID:         entry.ID,
			Action:     entry.Action,
			Command:    entry.CommandLine(),
			Outcome:    string(entry.Outcome()),
			ExitCode:   entry.ExitCode,
			DurationMS: entry.DurationMS,
			Truncated:  entry.Truncated,
			StartedAt:  entry.StartedAt,
		})
	}

	data := ExportData{
		ExportedAt: time.Now(),
		Total:      len(entries),
		Summary:    analyze.Summarize(entries),
		Entries:    exported,
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export data: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}
