// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lburgey/svnrun/internal/registry"
)

var showTemplates bool

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List available actions",
	Long:  `List the actions of the configured dialect plus any custom actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		for _, spec := range reg.Actions() {
			mutating := ""
			if spec.Mutating {
				mutating = "mutating"
			}

			if showTemplates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					spec.ID, registry.TemplateString(spec.Template), strings.Join(spec.Placeholders(), ","), mutating)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", spec.ID, spec.Description, mutating)
		}

		return nil
	},
}

func init() {
	actionsCmd.Flags().BoolVarP(&showTemplates, "templates", "t", false, "Show templates and placeholders instead of descriptions")
}
