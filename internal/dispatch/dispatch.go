// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package dispatch wires the registry, runner and history store together.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lburgey/svnrun/internal/history"
	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/runner"
)

// Dispatcher resolves logical actions, executes them, and records the
// outcome. It is safe for concurrent use: concurrently dispatched
// invocations run as independent processes and only share the store,
// whose Append serializes writers.
type Dispatcher struct {
	registry *registry.Registry
	runner   runner.CommandRunner
	store    history.Store
	log      *slog.Logger
}

// New creates a Dispatcher. All collaborators are injected so tests can
// run isolated instances.
func New(reg *registry.Registry, run runner.CommandRunner, store history.Store) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		runner:   run,
		store:    store,
		log:      slog.Default().With("component", "dispatch"),
	}
}

// Registry exposes the dispatcher's registry for listing actions.
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// Store exposes the dispatcher's history store.
func (d *Dispatcher) Store() history.Store {
	return d.store
}

// Do resolves the action, runs it, and appends a history entry. Resolution
// failures and spawn failures return an error without a history entry:
// only invocations that completed, timed out, or were cancelled are
// recorded. A non-zero exit code is a normal outcome, not an error.
func (d *Dispatcher) Do(ctx context.Context, actionID string, args map[string]string) (history.Entry, error) {
	inv, err := d.registry.Resolve(actionID, args)
	if err != nil {
		return history.Entry{}, err
	}

	startedAt := time.Now()
	result, err := d.runner.Run(ctx, inv)
	if err != nil {
		return history.Entry{}, err
	}

	entry, err := d.store.Append(history.NewEntry(inv, result, startedAt))
	if err != nil {
		// The command already ran; losing the record is worth surfacing
		// but the result itself is intact.
		d.log.Error("failed to record history entry", "action", actionID, "error", err)
		return history.NewEntry(inv, result, startedAt), fmt.Errorf("recording history: %w", err)
	}

	d.log.Info("command dispatched",
		"action", actionID,
		"outcome", string(entry.Outcome()),
		"exit_code", entry.ExitCode,
		"duration_ms", entry.DurationMS,
	)

	return entry, nil
}

// Rerun re-issues a recorded invocation through the registry with its
// recorded argument bindings. The action is re-resolved against the
// current templates, so a changed template changes the rerun.
func (d *Dispatcher) Rerun(ctx context.Context, id int64) (history.Entry, error) {
	previous, err := d.store.Get(id)
	if err != nil {
		return history.Entry{}, fmt.Errorf("looking up entry %d: %w", id, err)
	}

	d.log.Debug("rerunning entry", "id", id, "action", previous.Action)
	return d.Do(ctx, previous.Action, previous.Bound)
}
