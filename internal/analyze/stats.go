// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package analyze aggregates history entries into per-action statistics.
package analyze

import (
	"slices"
	"strings"

	"github.com/lburgey/svnrun/internal/history"
	"github.com/lburgey/svnrun/internal/svn"
)

// ActionStats aggregates all recorded invocations of one action.
type ActionStats struct {
	Action    string `json:"action"`
	Total     int    `json:"total"`
	Failed    int    `json:"failed"`
	TimedOut  int    `json:"timed_out"`
	Cancelled int    `json:"cancelled"`
	Conflicts int    `json:"conflicts"`
	TotalMS   int64  `json:"total_ms"`
	SlowestMS int64  `json:"slowest_ms"`
}

// AverageMS returns the mean duration of the action's invocations.
func (s ActionStats) AverageMS() int64 {
	if s.Total == 0 {
		return 0
	}
	return s.TotalMS / int64(s.Total)
}

// FailureRate returns the share of invocations that did not succeed,
// counting failures, timeouts and cancellations.
func (s ActionStats) FailureRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Failed+s.TimedOut+s.Cancelled) / float64(s.Total)
}

// Summary holds statistics over a set of history entries.
type Summary struct {
	Total     int           `json:"total"`
	Failed    int           `json:"failed"`
	TimedOut  int           `json:"timed_out"`
	Cancelled int           `json:"cancelled"`
	Conflicts int           `json:"conflicts"`
	Actions   []ActionStats `json:"actions"`
}

// Summarize computes per-action statistics over the entries. Actions are
// ordered by invocation count, most used first, ties broken by name.
func Summarize(entries []history.Entry) Summary {
	byAction := make(map[string]*ActionStats)
	var summary Summary

	for _, entry := range entries {
		stats, ok := byAction[entry.Action]
		if !ok {
			stats = &ActionStats{Action: entry.Action}
			byAction[entry.Action] = stats
		}

		summary.Total++
		stats.Total++
		stats.TotalMS += entry.DurationMS
		if entry.DurationMS > stats.SlowestMS {
			stats.SlowestMS = entry.DurationMS
		}

		switch entry.Outcome() {
		case history.OutcomeFailed:
			summary.Failed++
			stats.Failed++
		case history.OutcomeTimedOut:
			summary.TimedOut++
			stats.TimedOut++
		case history.OutcomeCancelled:
			summary.Cancelled++
			stats.Cancelled++
		}

		if len(svn.ConflictLines(entry.Stdout)) > 0 {
			summary.Conflicts++
			stats.Conflicts++
		}
	}

	summary.Actions = make([]ActionStats, 0, len(byAction))
	for _, stats := range byAction {
		summary.Actions = append(summary.Actions, *stats)
	}
	slices.SortFunc(summary.Actions, func(a, b ActionStats) int {
		if a.Total != b.Total {
			return b.Total - a.Total
		}
		return strings.Compare(a.Action, b.Action)
	})

	return summary
}
