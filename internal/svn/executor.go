// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package svn

import (
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds metadata queries against the working copy.
const DefaultTimeout = 60 * time.Second

// CommandExecutor is an interface for running svn metadata commands.
// This abstraction enables mocking in tests without a real working copy.
type CommandExecutor interface {
	Execute(name string, args ...string) ([]byte, error)
}

// RealExecutor implements CommandExecutor using os/exec.
type RealExecutor struct {
	Timeout time.Duration
}

// Execute runs the command and returns its standard output.
// Commands are executed with a timeout to prevent indefinite blocking.
func (r *RealExecutor) Execute(name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return exec.CommandContext(ctx, name, args...).Output()
}
