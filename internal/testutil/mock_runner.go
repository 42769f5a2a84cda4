// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities and helpers for svnrun.
package testutil

import (
	"context"
	"sync"

	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/runner"
)

// MockRunner implements runner.CommandRunner for testing. It allows
// configuring responses and records all invocations for verification.
type MockRunner struct {
	mu      sync.Mutex
	RunFunc func(ctx context.Context, inv registry.Invocation) (runner.Result, error)
	Calls   []registry.Invocation
}

// NewMockRunner creates a MockRunner that reports success with empty
// output unless RunFunc is set.
func NewMockRunner() *MockRunner {
	return &MockRunner{Calls: make([]registry.Invocation, 0)}
}

// Run records the invocation and delegates to RunFunc when configured.
func (m *MockRunner) Run(ctx context.Context, inv registry.Invocation) (runner.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, inv)
	fn := m.RunFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, inv)
	}
	return runner.Result{}, nil
}

// Reset clears all recorded invocations.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([]registry.Invocation, 0)
}

// CallCount returns the number of Run calls made.
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// GetCall returns the invocation at the given index, or a zero value if
// out of range.
func (m *MockRunner) GetCall(index int) registry.Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.Calls) {
		return registry.Invocation{}
	}
	return m.Calls[index]
}

var _ runner.CommandRunner = (*MockRunner)(nil)
