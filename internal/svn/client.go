// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package svn provides a wrapper around the svn and svnversion binaries
// for querying working copy metadata.
package svn

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Custom error types for common svn failures.
var (
	// ErrNotWorkingCopy indicates the path is not an svn working copy.
	ErrNotWorkingCopy = errors.New("not an svn working copy")

	// ErrNoRevision indicates the working copy metadata carried no
	// usable revision number.
	ErrNoRevision = errors.New("no revision found")
)

// lastChangedPattern matches the "Last Changed Rev" line of svn info.
var lastChangedPattern = regexp.MustCompile(`Last Changed Rev: (\d+)`)

// revisionPattern matches revision numbers in svnversion output such as
// "4168", "4123:4168" or "4168MS".
var revisionPattern = regexp.MustCompile(`\d+`)

// Client wraps the svn binaries to query working copy state.
type Client struct {
	tool     string
	executor CommandExecutor
}

// NewClient creates a client with the provided executor.
func NewClient(tool string, executor CommandExecutor) *Client {
	return &Client{tool: tool, executor: executor}
}

// NewDefaultClient creates a client using the real svn binaries.
func NewDefaultClient(tool string) *Client {
	return &Client{tool: tool, executor: &RealExecutor{}}
}

// LastChangedRevision returns the last changed revision of the path as
// reported by svn info.
func (c *Client) LastChangedRevision(path string) (int, error) {
	output, err := c.executor.Execute(c.tool, "info", "--non-interactive", path)
	if err != nil {
		return 0, c.wrapError(err, "querying info for %s", path)
	}

	match := lastChangedPattern.FindSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("%w in svn info output for %s", ErrNoRevision, path)
	}

	rev, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return 0, fmt.Errorf("parsing revision %q: %w", match[1], err)
	}

	return rev, nil
}

// WorkingCopyRevision returns the revision of the working copy as
// reported by svnversion. Mixed-revision and modified working copies
// report a range or modifier suffix; the highest number wins.
func (c *Client) WorkingCopyRevision(path string) (int, error) {
	output, err := c.executor.Execute("svnversion", path)
	if err != nil {
		return 0, c.wrapError(err, "querying svnversion for %s", path)
	}

	matches := revisionPattern.FindAll(output, -1)
	if matches == nil {
		return 0, fmt.Errorf("%w in svnversion output %q", ErrNoRevision, strings.TrimSpace(string(output)))
	}

	rev, err := strconv.Atoi(string(matches[len(matches)-1]))
	if err != nil {
		return 0, fmt.Errorf("parsing revision %q: %w", matches[len(matches)-1], err)
	}

	return rev, nil
}

// PreviousDiffRange computes the revision range for diffing the working
// copy against the change before the most recent one: from one revision
// below the last changed revision up to the current working copy
// revision.
func (c *Client) PreviousDiffRange(path string) (start, end int, err error) {
	last, err := c.LastChangedRevision(path)
	if err != nil {
		return 0, 0, err
	}
	if last <= 1 {
		return 0, 0, fmt.Errorf("%w: revision %d has no predecessor", ErrNoRevision, last)
	}

	current, err := c.WorkingCopyRevision(path)
	if err != nil {
		return 0, 0, err
	}

	return last - 1, current, nil
}

// Status returns the per-file status of the working copy.
func (c *Client) Status(path string) ([]FileStatus, error) {
	output, err := c.executor.Execute(c.tool, "status", "--non-interactive", path)
	if err != nil {
		return nil, c.wrapError(err, "querying status for %s", path)
	}

	return ParseStatus(string(output)), nil
}

// wrapError converts exec errors into typed errors where the svn error
// code is recognizable, otherwise wraps with context.
func (c *Client) wrapError(err error, format string, args ...any) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := string(exitErr.Stderr)
		// E155007: not a working copy. E155036: working copy format
		// too old for this client.
		if strings.Contains(stderr, "E155007") {
			return fmt.Errorf(format+": %w", append(args, ErrNotWorkingCopy)...)
		}
		if line := firstLine(stderr); line != "" {
			return fmt.Errorf(format+": %s: %w", append(args, line, err)...)
		}
	}

	return fmt.Errorf(format+": %w", append(args, err)...)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
