// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/prompts"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"
)

type describeOptions struct {
	report string
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show a report definition overview with sections and groups",
		Long: `Show a summary of one report definition: its metadata, page geometry,
sections, grouping rules, formulas, and parameters.`,
		Example: `  # Pick a report interactively
  rpt2rdf describe

  # Describe a specific report
  rpt2rdf describe --report orders`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runDescribe(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "Report name")

	return cmd
}

func runDescribe(ctx *session.Context, opts *describeOptions) error {
	name := opts.report
	if name == "" {
		if len(ctx.Reports) == 1 {
			name = ctx.Reports[0].Name
		} else if err := prompts.RunDescribeForm(&name, ctx.Reports); err != nil {
			return err
		}
	}

	rep := ctx.Report(name)
	if rep == nil {
		return fmt.Errorf("report %q not found", name)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Name", Value: rep.Name},
		{Label: "Title", Value: rep.Title},
		{Label: "Page", Value: fmt.Sprintf("%.0f x %.0f %s", rep.PageWidth, rep.PageHeight, pageUnit(rep))},
	}, "")

	prompts.PrintResult([]prompts.ResultField{{Label: "Sections", Value: ""}}, "")
	if err := printSections(rep); err != nil {
		return err
	}

	if len(rep.Groups) > 0 {
		prompts.PrintResult([]prompts.ResultField{{Label: "Groups", Value: ""}}, "")
		if err := printGroups(rep); err != nil {
			return err
		}
	}

	if len(rep.Formulas) > 0 {
		prompts.PrintResult([]prompts.ResultField{{Label: "Formulas", Value: ""}}, "")
		if err := runFormulasList(ctx, &formulasListOptions{report: rep.Name}); err != nil {
			return err
		}
	}

	if len(rep.Parameters) > 0 {
		prompts.PrintResult([]prompts.ResultField{{Label: "Parameters", Value: ""}}, "")
		return printParameters(rep)
	}
	return nil
}

func pageUnit(rep *rpt.Report) string {
	if rep.Unit != "" {
		return rep.Unit
	}
	return "twips"
}

func printSections(rep *rpt.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tROLE\tHEIGHT\tFIELDS\tSUPPRESSED")

	for _, sec := range rep.Sections {
		role := string(sec.EffectiveRole())
		if sec.GroupIndex > 0 {
			role = fmt.Sprintf("%s %d", role, sec.GroupIndex)
		}
		suppressed := "-"
		if sec.Suppress {
			suppressed = "always"
		} else if sec.SuppressCondition != "" {
			suppressed = "conditional"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.0f\t%d\t%s\n", sec.Name, role, sec.Height, len(sec.Fields), suppressed)
	}

	return w.Flush()
}

func printGroups(rep *rpt.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "LEVEL\tNAME\tFIELD\tSORT")

	for i, g := range rep.Groups {
		dir := string(g.SortDirection)
		if dir == "" {
			dir = string(rpt.SortAscending)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, g.Name, g.FieldName, dir)
	}

	return w.Flush()
}

func printParameters(rep *rpt.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tPROMPT\tDEFAULT")

	for _, p := range rep.Parameters {
		kind := string(p.ValueType)
		if kind == "" {
			kind = "-"
		}
		def := p.DefaultValue
		if def == "" {
			def = "-"
		}
		prompt := p.Prompt
		if prompt == "" {
			prompt = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, kind, prompt, def)
	}

	return w.Flush()
}
