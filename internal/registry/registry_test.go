// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SubstitutesPlaceholders(t *testing.T) {
	r := New(Spec{ID: "status", Template: []string{"status", "{path}"}})

	inv, err := r.Resolve("status", map[string]string{"path": "/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "/repo"}, inv.Args)
	assert.Equal(t, "status", inv.ActionID)
}

func TestResolve_UnknownAction(t *testing.T) {
	r := New(Builtin(DialectSVN)...)

	_, err := r.Resolve("frobnicate", map[string]string{"path": "/repo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestResolve_MissingArgument(t *testing.T) {
	r := New(Spec{ID: "diff-previous", Template: []string{"diff", "-r", "{startrev}:{endrev}", "{path}"}})

	_, err := r.Resolve("diff-previous", map[string]string{"path": "/repo", "startrev": "41"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), "endrev")
}

func TestResolve_EmptyValueCountsAsMissing(t *testing.T) {
	r := New(Spec{ID: "status", Template: []string{"status", "{path}"}})

	_, err := r.Resolve("status", map[string]string{"path": ""})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestResolve_EmbeddedPlaceholders(t *testing.T) {
	r := New(Spec{ID: "diff-previous", Template: []string{"diff", "-r", "{startrev}:{endrev}", "{path}"}})

	inv, err := r.Resolve("diff-previous", map[string]string{
		"path":     "/repo/file.c",
		"startrev": "41",
		"endrev":   "42",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"diff", "-r", "41:42", "/repo/file.c"}, inv.Args)
}

func TestResolve_NoUnresolvedTokensRemain(t *testing.T) {
	r := New(Builtin(DialectSVN)...)

	for _, spec := range r.Actions() {
		args := map[string]string{}
		for _, name := range spec.Placeholders() {
			args[name] = "value-" + name
		}
		inv, err := r.Resolve(spec.ID, args)
		require.NoError(t, err, "action %s", spec.ID)
		for _, arg := range inv.Args {
			assert.False(t, strings.ContainsAny(arg, "{}"),
				"action %s left unresolved token in %q", spec.ID, arg)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := New(Builtin(DialectSVN)...)
	args := map[string]string{"path": "/repo"}

	first, err := r.Resolve("status", args)
	require.NoError(t, err)
	second, err := r.Resolve("status", args)
	require.NoError(t, err)
	assert.Equal(t, first.Args, second.Args)
}

func TestResolve_DoesNotInterpretShellMetacharacters(t *testing.T) {
	r := New(Builtin(DialectSVN)...)

	inv, err := r.Resolve("status", map[string]string{"path": "/repo; rm -rf /"})
	require.NoError(t, err)
	// The argv carries the raw value; there is no shell to interpret it.
	assert.Equal(t, []string{"status", "/repo; rm -rf /"}, inv.Args)
}

func TestPlaceholders(t *testing.T) {
	spec := Spec{ID: "x", Template: []string{"diff", "-r", "{startrev}:{endrev}", "{path}"}}
	assert.Equal(t, []string{"endrev", "path", "startrev"}, spec.Placeholders())
}

func TestNew_LaterSpecsShadowEarlier(t *testing.T) {
	specs := append(Builtin(DialectSVN), Spec{ID: "status", Template: []string{"status", "-v", "{path}"}})
	r := New(specs...)

	inv, err := r.Resolve("status", map[string]string{"path": "/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "-v", "/repo"}, inv.Args)
}

func TestBuiltin_TortoiseDialect(t *testing.T) {
	r := New(Builtin(DialectTortoise)...)

	inv, err := r.Resolve("update", map[string]string{"path": `C:\repo`, "closeonend": "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/command:update", `/path:C:\repo`, "/closeonend:3"}, inv.Args)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.yaml")
	content := `actions:
  - id: annotate
    description: Blame with revision range
    template: ["blame", "-r", "{startrev}:{endrev}", "{path}"]
  - id: status
    template: ["status", "--verbose", "{path}"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	specs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "annotate", specs[0].ID)
	assert.Equal(t, []string{"blame", "-r", "{startrev}:{endrev}", "{path}"}, specs[0].Template)

	// Loaded specs shadow built-ins when appended after them.
	r := New(append(Builtin(DialectSVN), specs...)...)
	inv, err := r.Resolve("status", map[string]string{"path": "/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "--verbose", "/repo"}, inv.Args)
}

func TestLoadFile_Missing(t *testing.T) {
	specs, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, specs)
}

func TestLoadFile_InvalidAction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  - id: broken\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty template")
}
