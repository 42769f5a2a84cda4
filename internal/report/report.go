// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package report renders completed invocations as indented text blocks
// for terminal output.
package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lburgey/svnrun/internal/history"
	"github.com/lburgey/svnrun/internal/svn"
)

// indent prefixes every body line under a section header.
const indent = "    "

// Colors for report sections.
const (
	colorHeader   = lipgloss.Color("#7D56F4") // Purple accent
	colorConflict = lipgloss.Color("#FF4500") // Orange-red for conflicts
	colorError    = lipgloss.Color("#FF0000") // Bright red
	colorMuted    = lipgloss.Color("#626262") // Muted text
)

// Options controls how a report is rendered.
type Options struct {
	// RawCommand prints the substituted argv instead of the action name
	// in the Command section.
	RawCommand bool
	// Color enables lipgloss styling. Off for piped output.
	Color bool
}

// Renderer renders invocation reports.
type Renderer struct {
	opts     Options
	header   lipgloss.Style
	conflict lipgloss.Style
	errStyle lipgloss.Style
	muted    lipgloss.Style
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	r := &Renderer{opts: opts}
	if opts.Color {
		r.header = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
		r.conflict = lipgloss.NewStyle().Bold(true).Foreground(colorConflict)
		r.errStyle = lipgloss.NewStyle().Foreground(colorError)
		r.muted = lipgloss.NewStyle().Foreground(colorMuted)
	} else {
		r.header = lipgloss.NewStyle()
		r.conflict = r.header
		r.errStyle = r.header
		r.muted = r.header
	}
	return r
}

// Render formats one history entry as an indented report. Sections with
// no content are omitted.
func (r *Renderer) Render(entry history.Entry) string {
	var b strings.Builder

	b.WriteString(r.header.Render("Command:"))
	b.WriteByte('\n')
	if r.opts.RawCommand {
		b.WriteString(indent + entry.CommandLine() + "\n")
	} else {
		b.WriteString(indent + entry.Action + "\n")
	}

	if len(entry.Bound) > 0 {
		b.WriteString(r.header.Render("Arguments:"))
		b.WriteByte('\n')
		for _, name := range sortedKeys(entry.Bound) {
			b.WriteString(fmt.Sprintf("%s%s: %s\n", indent, name, entry.Bound[name]))
		}
	}

	if out := strings.TrimRight(entry.Stdout, "\n"); out != "" {
		b.WriteString(r.header.Render("Output:"))
		b.WriteByte('\n')
		r.writeBody(&b, out)
	}

	if errOut := strings.TrimRight(entry.Stderr, "\n"); errOut != "" {
		b.WriteString(r.errStyle.Render("Error:"))
		b.WriteByte('\n')
		r.writeBody(&b, errOut)
	}

	if conflicts := svn.ConflictLines(entry.Stdout); len(conflicts) > 0 {
		b.WriteString(r.conflict.Render("Conflicts:"))
		b.WriteByte('\n')
		for _, line := range conflicts {
			b.WriteString(indent + r.conflict.Render(line) + "\n")
		}
	}

	if entry.Truncated {
		b.WriteString(r.muted.Render("(output truncated)"))
		b.WriteByte('\n')
	}

	b.WriteString(r.header.Render("Completed:"))
	b.WriteString(" " + r.statusLine(entry) + "\n")

	return b.String()
}

// RenderList formats entries as one-line summaries, newest first.
func (r *Renderer) RenderList(entries []history.Entry) string {
	var b strings.Builder
	for _, entry := range entries {
		line := fmt.Sprintf("%4d  %-19s  %-9s  %s",
			entry.ID,
			entry.StartedAt.Format("2006-01-02 15:04:05"),
			entry.Outcome(),
			entry.Action,
		)
		if entry.Failed() {
			line = r.errStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (r *Renderer) statusLine(entry history.Entry) string {
	duration := (time.Duration(entry.DurationMS) * time.Millisecond).Round(time.Millisecond)
	switch entry.Outcome() {
	case history.OutcomeTimedOut:
		return r.errStyle.Render(fmt.Sprintf("timed out after %s", duration))
	case history.OutcomeCancelled:
		return r.muted.Render(fmt.Sprintf("cancelled after %s", duration))
	case history.OutcomeFailed:
		return r.errStyle.Render(fmt.Sprintf("exit code %d in %s", entry.ExitCode, duration))
	default:
		return fmt.Sprintf("ok in %s", duration)
	}
}

func (r *Renderer) writeBody(b *strings.Builder, body string) {
	for _, line := range strings.Split(body, "\n") {
		if svn.IsConflictLine(line) {
			b.WriteString(indent + r.conflict.Render(line) + "\n")
			continue
		}
		b.WriteString(indent + line + "\n")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
