// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package svn

import (
	"regexp"
	"strings"
)

// Item status codes from the first column of svn status output.
const (
	StatusModified    = 'M'
	StatusAdded       = 'A'
	StatusDeleted     = 'D'
	StatusConflicted  = 'C'
	StatusUnversioned = '?'
	StatusMissing     = '!'
)

// conflictPattern matches status lines whose conflict marker sits past
// the first column, as produced for tree and property conflicts.
var conflictPattern = regexp.MustCompile(`^ +C `)

// FileStatus is one line of svn status output.
type FileStatus struct {
	// Code is the full status column block, at least one character.
	Code string
	// Path is the file the status applies to.
	Path string
}

// Conflicted reports whether the file is in any conflict state.
func (f FileStatus) Conflicted() bool {
	return strings.ContainsRune(f.Code, StatusConflicted)
}

// ParseStatus parses the plain-text output of svn status. Lines that do
// not carry a status column, such as changelist separators and the
// "Summary of conflicts" trailer, are skipped.
func ParseStatus(output string) []FileStatus {
	var files []FileStatus
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 9 || strings.TrimSpace(line[:8]) == "" {
			continue
		}
		code := strings.TrimRight(line[:8], " ")
		if !isStatusCode(code) {
			continue
		}
		files = append(files, FileStatus{Code: code, Path: line[8:]})
	}
	return files
}

// IsConflictLine reports whether a raw output line marks a conflicted
// item, covering both first-column and indented conflict markers.
func IsConflictLine(line string) bool {
	if strings.HasPrefix(line, "C") {
		return true
	}
	return conflictPattern.MatchString(line)
}

// ConflictLines extracts the conflicted entries from raw command output.
func ConflictLines(output string) []string {
	var conflicts []string
	for _, line := range strings.Split(output, "\n") {
		if IsConflictLine(line) {
			conflicts = append(conflicts, line)
		}
	}
	return conflicts
}

func isStatusCode(code string) bool {
	for _, r := range code {
		switch r {
		case 'A', 'C', 'D', 'I', 'M', 'R', 'X', '?', '!', '~', ' ', '+', 'L', 'K', 'O', 'T', 'B', '*':
		default:
			return false
		}
	}
	return code != ""
}
