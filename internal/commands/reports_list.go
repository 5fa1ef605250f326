// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"
)

func newReportsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all loaded report definitions",
		Long: `List the report definitions found in the project's reports directory.
Displays report names, titles, and section/group/formula counts.`,
		Example: `  # List reports
  rpt2rdf reports list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runReportsList(ctx)
		},
	}

	return cmd
}

func runReportsList(ctx *session.Context) error {
	if len(ctx.Reports) == 0 {
		fmt.Println("No report definitions loaded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTITLE\tSECTIONS\tGROUPS\tFORMULAS\tPARAMETERS")

	for _, rep := range ctx.Reports {
		title := rep.Title
		if utf8.RuneCountInString(title) > 40 {
			title = string([]rune(title)[:37]) + "..."
		}
		if title == "" {
			title = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			rep.Name, title, len(rep.Sections), len(rep.Groups), len(rep.Formulas), len(rep.Parameters))
	}

	return w.Flush()
}
