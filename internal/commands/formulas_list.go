// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"
)

type formulasListOptions struct {
	report string
}

func newFormulasListCmd() *cobra.Command {
	opts := &formulasListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List formulas across the loaded reports",
		Long: `List the calculated formulas defined in the loaded reports,
with their declared return types and expression text.`,
		Example: `  # List every formula
  rpt2rdf formulas list

  # List formulas of one report
  rpt2rdf formulas list --report orders`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFormulasList(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "Limit to one report")

	return cmd
}

func runFormulasList(ctx *session.Context, opts *formulasListOptions) error {
	reports := ctx.Reports
	if opts.report != "" {
		rep := ctx.Report(opts.report)
		if rep == nil {
			return fmt.Errorf("report %q not found", opts.report)
		}
		reports = []*rpt.Report{rep}
	}

	total := 0
	for _, rep := range reports {
		total += len(rep.Formulas)
	}
	if total == 0 {
		fmt.Println("No formulas defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REPORT\tFORMULA\tRETURNS\tEXPRESSION")

	for _, rep := range reports {
		for _, f := range rep.Formulas {
			text := f.Text
			if utf8.RuneCountInString(text) > 50 {
				text = string([]rune(text)[:47]) + "..."
			}
			returns := string(f.ReturnType)
			if returns == "" {
				returns = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rep.Name, f.Name, returns, text)
		}
	}

	return w.Flush()
}
