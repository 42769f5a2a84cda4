// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lburgey/svnrun/internal/analyze"
	"github.com/lburgey/svnrun/internal/db"
	"github.com/lburgey/svnrun/internal/export"
	"github.com/lburgey/svnrun/internal/report"
	"github.com/lburgey/svnrun/internal/tui"
)

// Flag variables for the history commands.
var (
	historyLimit  int
	historyOffset int
	historyQuery  string
	forceClear    bool
	exportPath    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and replay recorded invocations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded invocations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		store := dispatcher.Store()
		entries, err := store.List(historyLimit, historyOffset)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}
		if historyQuery != "" {
			entries, err = store.Search(historyQuery, historyLimit)
			if err != nil {
				return fmt.Errorf("searching history: %w", err)
			}
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history yet")
			return nil
		}

		renderer := report.New(report.Options{Color: os.Getenv("NO_COLOR") == ""})
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderList(entries))
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full record of one invocation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		entry, err := dispatcher.Store().Get(id)
		if err != nil {
			return fmt.Errorf("looking up entry %d: %w", id, err)
		}

		renderer := report.New(report.Options{
			RawCommand: true,
			Color:      os.Getenv("NO_COLOR") == "",
		})
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(entry))
		return nil
	},
}

var historyRerunCmd = &cobra.Command{
	Use:   "rerun <id>",
	Short: "Re-issue a recorded invocation",
	Long: `Rerun resolves the recorded action against the current templates with
the recorded argument bindings and executes it as a new invocation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		entry, err := dispatcher.Rerun(cmd.Context(), id)
		if err != nil {
			return err
		}

		renderer := report.New(report.Options{
			RawCommand: cfg.RawCommand,
			Color:      os.Getenv("NO_COLOR") == "",
		})
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(entry))

		if entry.ExitCode > 0 {
			exitCode = entry.ExitCode
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		store := dispatcher.Store()
		count, err := store.Len()
		if err != nil {
			return fmt.Errorf("counting history: %w", err)
		}
		if count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "History is already empty")
			return nil
		}

		if !forceClear {
			fmt.Printf("This will delete %d recorded invocations.\n", count)
			fmt.Print("Type 'yes' to confirm: ")

			reader := bufio.NewReader(os.Stdin)
			confirmation, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading confirmation: %w", err)
			}
			if strings.TrimSpace(strings.ToLower(confirmation)) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d invocations\n", count)
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		entries, err := dispatcher.Store().List(0, 0)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}

		filename := exportPath
		if filename == "" {
			filename, err = export.Export(entries)
		} else {
			err = export.Write(entries, filename)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d invocations to %s\n", len(entries), filename)
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-action statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		entries, err := dispatcher.Store().List(0, 0)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}

		summary := analyze.Summarize(entries)
		if summary.Total == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history yet")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d invocations: %d failed, %d timed out, %d cancelled, %d with conflicts\n\n",
			summary.Total, summary.Failed, summary.TimedOut, summary.Cancelled, summary.Conflicts)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "ACTION\tRUNS\tFAILED\tAVG\tSLOWEST")
		for _, stats := range summary.Actions {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
				stats.Action,
				stats.Total,
				stats.Failed+stats.TimedOut+stats.Cancelled,
				time.Duration(stats.AverageMS())*time.Millisecond,
				time.Duration(stats.SlowestMS)*time.Millisecond,
			)
		}

		return nil
	},
}

var historyBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the history interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher, database, err := buildDispatcher()
		if err != nil {
			return err
		}
		if database != nil {
			defer db.Close(database)
		}

		model := tui.NewModel(dispatcher)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running history browser: %w", err)
		}
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	historyListCmd.Flags().IntVar(&historyOffset, "offset", 0, "Skip this many newest entries")
	historyListCmd.Flags().StringVarP(&historyQuery, "search", "s", "", "Only show entries matching this query")
	historyClearCmd.Flags().BoolVar(&forceClear, "force", false, "Skip confirmation prompt")
	historyExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Write to this file instead of a timestamped one")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRerunCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyBrowseCmd)
}
