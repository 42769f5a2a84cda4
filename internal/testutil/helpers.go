// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package testutil

import (
	"time"

	"github.com/lburgey/svnrun/internal/history"
)

// EntryOption is a functional option for configuring test history entries.
type EntryOption func(*history.Entry)

// NewTestEntry creates a history Entry with sensible defaults for testing.
// Use the With* option functions to customize specific fields.
func NewTestEntry(opts ...EntryOption) history.Entry {
	entry := history.Entry{
		Action:     "status",
		Args:       []string{"status", "/repo"},
		Bound:      map[string]string{"path": "/repo"},
		ExitCode:   0,
		Stdout:     "M  main.c\n",
		DurationMS: 40,
		StartedAt:  time.Now().Add(-time.Minute),
	}

	for _, opt := range opts {
		opt(&entry)
	}

	return entry
}

// WithAction sets the action id and a matching argv.
func WithAction(action string) EntryOption {
	return func(e *history.Entry) {
		e.Action = action
		e.Args = []string{action, "/repo"}
	}
}

// WithArgs sets the resolved argv.
func WithArgs(args ...string) EntryOption {
	return func(e *history.Entry) {
		e.Args = args
	}
}

// WithBound sets the placeholder bindings.
func WithBound(bound map[string]string) EntryOption {
	return func(e *history.Entry) {
		e.Bound = bound
	}
}

// WithExitCode sets the exit code.
func WithExitCode(code int) EntryOption {
	return func(e *history.Entry) {
		e.ExitCode = code
	}
}

// WithOutput sets the captured stdout and stderr.
func WithOutput(stdout, stderr string) EntryOption {
	return func(e *history.Entry) {
		e.Stdout = stdout
		e.Stderr = stderr
	}
}

// WithTimedOut marks the entry as timed out with the sentinel exit code.
func WithTimedOut() EntryOption {
	return func(e *history.Entry) {
		e.TimedOut = true
		e.ExitCode = -1
	}
}

// WithCancelled marks the entry as cancelled with the sentinel exit code.
func WithCancelled() EntryOption {
	return func(e *history.Entry) {
		e.Cancelled = true
		e.ExitCode = -1
	}
}

// WithStartedAt sets the wall-clock timestamp.
func WithStartedAt(t time.Time) EntryOption {
	return func(e *history.Entry) {
		e.StartedAt = t
	}
}
