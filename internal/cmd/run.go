// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lburgey/svnrun/internal/db"
	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/report"
	"github.com/lburgey/svnrun/internal/svn"
)

// exitCode carries the exit code of the dispatched command out to main.
var exitCode int

// ExitCode returns the exit code the process should terminate with. It
// is zero unless a dispatched command failed.
func ExitCode() int {
	return exitCode
}

var runCmd = &cobra.Command{
	Use:   "run <action> [path] [name=value ...]",
	Short: "Run an action against a working copy",
	Long: `Run resolves the action's template with the given arguments and executes
it. The first positional argument after the action is bound to the path
placeholder; further arguments are name=value pairs for the remaining
placeholders.

The diff-previous action computes its revision range from the working
copy when startrev and endrev are not given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actionID := args[0]
		bound, err := parseRunArgs(args[1:])
		if err != nil {
			return err
		}

		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		if err := fillDefaults(dispatcher.Registry(), actionID, bound); err != nil {
			return err
		}

		entry, err := dispatcher.Do(cmd.Context(), actionID, bound)
		if err != nil {
			return err
		}

		renderer := report.New(report.Options{
			RawCommand: cfg.RawCommand,
			Color:      os.Getenv("NO_COLOR") == "",
		})
		fmt.Print(renderer.Render(entry))

		if entry.ExitCode != 0 {
			exitCode = entry.ExitCode
			if entry.ExitCode < 0 {
				exitCode = 1
			}
		}
		return nil
	},
}

// parseRunArgs splits positional arguments into placeholder bindings. A
// bare argument binds the path placeholder; name=value pairs bind the
// named placeholder.
func parseRunArgs(args []string) (map[string]string, error) {
	bound := make(map[string]string)
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			if _, dup := bound["path"]; dup {
				return nil, fmt.Errorf("path given twice: %q", arg)
			}
			bound["path"] = arg
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("invalid argument %q: empty name", arg)
		}
		bound[name] = value
	}

	if _, ok := bound["path"]; !ok {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		bound["path"] = wd
	}

	return bound, nil
}

// fillDefaults supplies placeholder values the user did not give:
// the tortoise closeonend setting and the diff-previous revision range.
func fillDefaults(reg *registry.Registry, actionID string, bound map[string]string) error {
	spec, ok := reg.Lookup(actionID)
	if !ok {
		// Resolution reports the unknown action with its own error.
		return nil
	}

	for _, placeholder := range spec.Placeholders() {
		if _, ok := bound[placeholder]; ok {
			continue
		}

		switch placeholder {
		case "closeonend":
			bound[placeholder] = cfg.CloseOnEnd
		case "startrev", "endrev":
			if err := fillRevisionRange(bound); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillRevisionRange queries the working copy for the diff-previous
// revision range.
func fillRevisionRange(bound map[string]string) error {
	client := svn.NewDefaultClient(cfg.SVNPath)
	start, end, err := client.PreviousDiffRange(bound["path"])
	if err != nil {
		return fmt.Errorf("computing revision range: %w", err)
	}

	if _, ok := bound["startrev"]; !ok {
		bound["startrev"] = strconv.Itoa(start)
	}
	if _, ok := bound["endrev"]; !ok {
		bound["endrev"] = strconv.Itoa(end)
	}
	return nil
}
