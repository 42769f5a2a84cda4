// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package registry maps logical SVN actions to command-line templates.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Sentinel errors for resolution failures. Both are caller-input errors
// and are never retried.
var (
	// ErrUnknownAction indicates the requested action id is not registered.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingArgument indicates a required placeholder has no supplied value.
	ErrMissingArgument = errors.New("missing argument")
)

// placeholderPattern matches {name} tokens inside a template element.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// Spec describes a registered action: its id and the argument template
// it expands to. Specs are immutable after registration.
type Spec struct {
	ID          string
	Description string
	Template    []string // literal tokens, possibly containing {placeholder}s
	Mutating    bool     // true for actions that change the working copy
}

// Placeholders returns the set of placeholder names the template requires,
// sorted for deterministic output.
func (s Spec) Placeholders() []string {
	seen := make(map[string]bool)
	for _, token := range s.Template {
		for _, m := range placeholderPattern.FindAllStringSubmatch(token, -1) {
			seen[m[1]] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invocation is a Spec bound to concrete argument values: a fully resolved,
// ready-to-execute argument vector. It never passes through a shell.
type Invocation struct {
	ActionID string
	Args     []string          // resolved argv, excluding the tool path
	Bound    map[string]string // the placeholder values used to resolve
}

// Registry holds the known action specs. It is populated at construction
// time and read-only afterwards, so Resolve is safe for concurrent use.
type Registry struct {
	specs map[string]Spec
}

// New creates a registry from the given specs. Later specs with the same
// id override earlier ones, which lets custom actions shadow built-ins.
func New(specs ...Spec) *Registry {
	r := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, spec := range specs {
		r.specs[spec.ID] = spec
	}
	return r
}

// Resolve binds the given argument values into the action's template.
// It fails with ErrUnknownAction for unregistered ids and ErrMissingArgument
// when a required placeholder has no value. Resolution is pure: the same
// inputs always produce the same argument sequence.
func (r *Registry) Resolve(actionID string, args map[string]string) (Invocation, error) {
	spec, ok := r.specs[actionID]
	if !ok {
		return Invocation{}, fmt.Errorf("resolving %q: %w", actionID, ErrUnknownAction)
	}

	resolved := make([]string, 0, len(spec.Template))
	for _, token := range spec.Template {
		var missing string
		expanded := placeholderPattern.ReplaceAllStringFunc(token, func(match string) string {
			name := match[1 : len(match)-1]
			value, ok := args[name]
			if !ok || value == "" {
				if missing == "" {
					missing = name
				}
				return match
			}
			return value
		})
		if missing != "" {
			return Invocation{}, fmt.Errorf("resolving %q: placeholder %q: %w", actionID, missing, ErrMissingArgument)
		}
		resolved = append(resolved, expanded)
	}

	bound := make(map[string]string, len(args))
	for k, v := range args {
		bound[k] = v
	}

	return Invocation{ActionID: actionID, Args: resolved, Bound: bound}, nil
}

// Lookup returns the spec for an action id.
func (r *Registry) Lookup(actionID string) (Spec, bool) {
	spec, ok := r.specs[actionID]
	return spec, ok
}

// Actions returns all registered specs sorted by id.
func (r *Registry) Actions() []Spec {
	specs := make([]Spec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

// TemplateString renders a template for display, e.g. "status {path}".
func TemplateString(template []string) string {
	return strings.Join(template, " ")
}
