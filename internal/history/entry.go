// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package history records past invocations and their outcomes.
package history

import (
	"strings"
	"time"

	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/runner"
)

// Outcome classifies how an invocation ended.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeFailed    Outcome = "failed"
	OutcomeTimedOut  Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
)

// Entry pairs an invocation with its execution result and a wall-clock
// timestamp. Entries are appended, never mutated.
type Entry struct {
	ID         int64             `json:"id"`
	Action     string            `json:"action"`
	Args       []string          `json:"args"`
	Bound      map[string]string `json:"bound,omitempty"`
	ExitCode   int               `json:"exit_code"`
	Stdout     string            `json:"stdout,omitempty"`
	Stderr     string            `json:"stderr,omitempty"`
	DurationMS int64             `json:"duration_ms"`
	TimedOut   bool              `json:"timed_out,omitempty"`
	Cancelled  bool              `json:"cancelled,omitempty"`
	Truncated  bool              `json:"truncated,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
}

// NewEntry builds an Entry from a completed (or timed-out) invocation.
func NewEntry(inv registry.Invocation, result runner.Result, startedAt time.Time) Entry {
	return Entry{
		Action:     inv.ActionID,
		Args:       inv.Args,
		Bound:      inv.Bound,
		ExitCode:   result.ExitCode,
		Stdout:     string(result.Stdout),
		Stderr:     string(result.Stderr),
		DurationMS: result.Duration.Milliseconds(),
		TimedOut:   result.TimedOut,
		Cancelled:  result.Cancelled,
		Truncated:  result.Truncated,
		StartedAt:  startedAt,
	}
}

// Outcome classifies the entry for display and aggregation.
func (e Entry) Outcome() Outcome {
	switch {
	case e.Cancelled:
		return OutcomeCancelled
	case e.TimedOut:
		return OutcomeTimedOut
	case e.ExitCode != 0:
		return OutcomeFailed
	default:
		return OutcomeOK
	}
}

// Failed reports whether the command ran and exited non-zero.
func (e Entry) Failed() bool {
	return !e.TimedOut && !e.Cancelled && e.ExitCode != 0
}

// CommandLine renders the recorded argv for display.
func (e Entry) CommandLine() string {
	return strings.Join(e.Args, " ")
}

// Matches reports whether the entry matches a search query. The query is
// checked against the action id and the resolved argv, case-insensitively.
func (e Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Action), q) {
		return true
	}
	return strings.Contains(strings.ToLower(e.CommandLine()), q)
}
