// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package runner executes resolved invocations as external processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/lburgey/svnrun/internal/registry"
)

// DefaultTimeout bounds command execution when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// DefaultOutputLimit caps captured stdout and stderr, each, in bytes.
const DefaultOutputLimit = 1 << 20

// SentinelExitCode is reported when the process did not exit on its own:
// timed out, cancelled, or never started.
const SentinelExitCode = -1

// ErrSpawn indicates the external program could not be launched at all
// (not found, permission denied). This is distinct from a non-zero exit
// code, which is a normal, reportable result.
var ErrSpawn = errors.New("spawn failure")

// Result holds the outcome of a single invocation. It is immutable after
// creation.
type Result struct {
	ExitCode  int
	Stdout    []byte
	Stderr    []byte
	Duration  time.Duration
	TimedOut  bool // process exceeded the timeout and was killed
	Cancelled bool // caller cancelled before the timeout
	Truncated bool // output exceeded the buffer cap; excess was discarded
}

// CommandRunner runs resolved invocations. The abstraction enables mocking
// in tests without spawning real processes.
type CommandRunner interface {
	Run(ctx context.Context, inv registry.Invocation) (Result, error)
}

// ExecRunner implements CommandRunner using os/exec. The zero value is not
// usable; construct with New.
type ExecRunner struct {
	tool        string
	timeout     time.Duration
	outputLimit int
	log         *slog.Logger
}

// New creates an ExecRunner for the given external tool. Zero timeout and
// output limit fall back to the package defaults.
func New(tool string, timeout time.Duration, outputLimit int) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if outputLimit <= 0 {
		outputLimit = DefaultOutputLimit
	}
	return &ExecRunner{
		tool:        tool,
		timeout:     timeout,
		outputLimit: outputLimit,
		log:         slog.Default().With("component", "runner"),
	}
}

// Tool returns the configured external program.
func (r *ExecRunner) Tool() string {
	return r.tool
}

// Run spawns the external program with the invocation's argument vector,
// never via a shell, so path arguments containing shell metacharacters
// cannot inject commands. Stdout and stderr are captured independently up
// to the configured cap. A process that outlives the timeout is killed and
// reported with TimedOut=true; cancellation of ctx kills it and reports
// Cancelled=true. Neither is an error. The only error Run returns wraps
// ErrSpawn.
func (r *ExecRunner) Run(ctx context.Context, inv registry.Invocation) (Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.tool, inv.Args...)
	stdout := newCappedBuffer(r.outputLimit)
	stderr := newCappedBuffer(r.outputLimit)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.log.Debug("running command", "action", inv.ActionID, "tool", r.tool, "args", inv.Args)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := Result{
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.Bytes(),
		Duration:  duration,
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}

	// Launch failures happen before the process ran; report them as a
	// typed error rather than a result.
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		r.log.Error("command could not be launched", "tool", r.tool, "error", err)
		return Result{}, fmt.Errorf("launching %s: %w: %v", r.tool, ErrSpawn, err)
	}

	switch {
	case ctx.Err() != nil:
		// The caller's context went away first: cancellation, not timeout.
		result.Cancelled = true
		result.ExitCode = SentinelExitCode
	case runCtx.Err() != nil:
		result.TimedOut = true
		result.ExitCode = SentinelExitCode
		r.log.Warn("command timed out", "action", inv.ActionID, "timeout", r.timeout)
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else if err != nil {
			// I/O errors after a successful start; surface as spawn-class.
			return Result{}, fmt.Errorf("running %s: %w: %v", r.tool, ErrSpawn, err)
		}
	}

	r.log.Debug("command finished",
		"action", inv.ActionID,
		"exit_code", result.ExitCode,
		"duration_ms", duration.Milliseconds(),
		"timed_out", result.TimedOut,
		"cancelled", result.Cancelled,
	)

	return result, nil
}

var _ CommandRunner = (*ExecRunner)(nil)
