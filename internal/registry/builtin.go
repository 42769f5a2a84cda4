// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package registry

// Dialect selects which built-in template set a registry is seeded with.
type Dialect string

const (
	// DialectSVN builds plain `svn` command lines.
	DialectSVN Dialect = "svn"

	// DialectTortoise builds TortoiseProc `/command:x /path:y` command
	// lines. TortoiseProc joins multiple paths with '*' in a single
	// /path argument, so callers pre-join paths for this dialect.
	DialectTortoise Dialect = "tortoise"
)

// svnSpecs are the built-in actions for the svn command-line client.
// Non-interactive is forced so a misconfigured working copy cannot hang
// the executor waiting for input.
var svnSpecs = []Spec{
	{ID: "status", Description: "Show working copy status", Template: []string{"status", "{path}"}},
	{ID: "update", Description: "Update working copy", Template: []string{"update", "--non-interactive", "{path}"}, Mutating: true},
	{ID: "commit", Description: "Commit local changes", Template: []string{"commit", "--non-interactive", "-m", "{message}", "{path}"}, Mutating: true},
	{ID: "diff", Description: "Diff local changes", Template: []string{"diff", "{path}"}},
	{ID: "diff-previous", Description: "Diff against the previous revision", Template: []string{"diff", "-r", "{startrev}:{endrev}", "{path}"}},
	{ID: "log", Description: "Show commit log", Template: []string{"log", "--non-interactive", "-l", "{limit}", "{path}"}},
	{ID: "blame", Description: "Annotate lines with revision info", Template: []string{"blame", "--non-interactive", "{path}"}},
	{ID: "revert", Description: "Discard local changes", Template: []string{"revert", "-R", "{path}"}, Mutating: true},
	{ID: "add", Description: "Schedule paths for addition", Template: []string{"add", "{path}"}, Mutating: true},
	{ID: "delete", Description: "Schedule paths for deletion", Template: []string{"delete", "{path}"}, Mutating: true},
	{ID: "cleanup", Description: "Clean up the working copy", Template: []string{"cleanup", "{path}"}, Mutating: true},
	{ID: "info", Description: "Show entry information", Template: []string{"info", "{path}"}},
}

// tortoiseSpecs mirror the original TortoiseProc command set. closeonend
// controls whether the progress dialog closes itself: "0" keeps it open,
// "3" closes it when no errors, conflicts or merges occurred.
var tortoiseSpecs = []Spec{
	{ID: "status", Description: "Check for modifications dialog", Template: []string{"/command:repostatus", "/path:{path}"}},
	{ID: "update", Description: "Update dialog", Template: []string{"/command:update", "/path:{path}", "/closeonend:{closeonend}"}, Mutating: true},
	{ID: "commit", Description: "Commit dialog", Template: []string{"/command:commit", "/path:{path}", "/closeonend:{closeonend}"}, Mutating: true},
	{ID: "diff", Description: "Diff dialog", Template: []string{"/command:diff", "/path:{path}"}},
	{ID: "diff-previous", Description: "Diff against the previous revision", Template: []string{"/command:diff", "/path:{path}", "/startrev:{startrev}", "/endrev:{endrev}"}},
	{ID: "log", Description: "Log dialog", Template: []string{"/command:log", "/path:{path}"}},
	{ID: "blame", Description: "Blame dialog", Template: []string{"/command:blame", "/path:{path}"}},
	{ID: "revert", Description: "Revert dialog", Template: []string{"/command:revert", "/path:{path}"}, Mutating: true},
	{ID: "add", Description: "Add dialog", Template: []string{"/command:add", "/path:{path}"}, Mutating: true},
	{ID: "delete", Description: "Remove dialog", Template: []string{"/command:remove", "/path:{path}"}, Mutating: true},
	{ID: "cleanup", Description: "Cleanup dialog", Template: []string{"/command:cleanup", "/path:{path}"}, Mutating: true},
	{ID: "info", Description: "Properties dialog", Template: []string{"/command:properties", "/path:{path}"}},
}

// Builtin returns the built-in specs for a dialect. Unknown dialects fall
// back to the svn command-line set.
func Builtin(dialect Dialect) []Spec {
	if dialect == DialectTortoise {
		return tortoiseSpecs
	}
	return svnSpecs
}
