// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/config"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/expr"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/units"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/emit"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/prompts"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"

	// Import emitters to auto-register
	_ "github.com/kevdc82/RPT-to-RDF-sub000/internal/emit/plsql"
	_ "github.com/kevdc82/RPT-to-RDF-sub000/internal/emit/rdfxml"
)

type convertOptions struct {
	report  string
	format  string
	output  string
	all     bool
	verbose bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert report definitions to the target document model",
		Long: fmt.Sprintf(`Convert loaded report definitions: translate their formulas and
suppress conditions, synthesize the target frame layout, and write one
output document per report.

Available formats: %s`, strings.Join(emit.Available(), ", ")),
		Example: `  # Interactive mode
  rpt2rdf convert

  # Convert specific reports
  rpt2rdf convert --report orders
  rpt2rdf convert --report orders,invoices

  # Convert all reports
  rpt2rdf convert --all

  # Program-unit sources only, to a custom directory
  rpt2rdf convert --all --format plsql --output review`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "Report name(s), comma-separated")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(emit.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Convert all reports")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print every warning, not just counts")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// Validate mutually exclusive flags
	if opts.all && opts.report != "" {
		return fmt.Errorf("--all and --report are mutually exclusive")
	}

	var selected []string
	if opts.all {
		selected = ctx.ReportNames()
	} else if opts.report != "" {
		for _, n := range strings.Split(opts.report, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if ctx.Report(n) == nil {
				return fmt.Errorf("report %q not found", n)
			}
			selected = append(selected, n)
		}
	}

	format := opts.format
	if format == "" {
		format = ctx.Config.Format
	}
	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}

	// Prompt for anything the flags and config left open
	if len(selected) == 0 {
		err = prompts.RunConvertForm(
			&selected, &format, &output,
			!cmd.Flags().Changed("output") && ctx.Config.Output == "",
			ctx.Reports, emit.Available(),
		)
		if err != nil {
			return err
		}
	}

	if len(selected) == 0 {
		return fmt.Errorf("no reports selected")
	}
	if output == "" {
		output = "out"
	}

	emitter, err := emit.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(emit.Available(), ", "))
	}

	engineOpts, err := engineOptions(ctx.Config)
	if err != nil {
		return err
	}
	converter := convert.New(engineOpts)

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Converting %d report(s) to %s...\n", len(selected), format)

	var total convert.Stats
	var failures []string

	for _, name := range selected {
		rep := ctx.Report(name)

		res, convErr := converter.Convert(rep)
		if convErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, convErr))
			fmt.Printf("  %s %s: %v\n", color.RedString("failed"), name, convErr)
			continue
		}

		data, emitErr := emitter.Emit(res)
		if emitErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, emitErr))
			fmt.Printf("  %s %s: %v\n", color.RedString("failed"), name, emitErr)
			continue
		}

		outFile := filepath.Join(output, name+emitter.FileExtension())
		if writeErr := os.WriteFile(outFile, data, 0o600); writeErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, writeErr))
			fmt.Printf("  %s %s: %v\n", color.RedString("failed"), name, writeErr)
			continue
		}

		printOutcome(res, outFile, opts.verbose)
		total.Converted += res.Stats.Converted
		total.Placeholders += res.Stats.Placeholders
		total.Failed += res.Stats.Failed
		if res.Stats.Outcome() == convert.OutcomeFailed {
			failures = append(failures, fmt.Sprintf("%s: no element translated", name))
		}
	}

	fmt.Printf("\n%s (%.0f%% complete)\n", total.String(), total.Percent())

	if len(failures) > 0 {
		fmt.Println("\nErrors:")
		for _, f := range failures {
			fmt.Printf("  - %s\n", f)
		}
		return fmt.Errorf("failed to convert %d report(s)", len(failures))
	}

	return nil
}

// printOutcome prints one per-report result line, colored by outcome, and
// the warning details when asked for.
func printOutcome(res *convert.Result, outFile string, verbose bool) {
	var outcome string
	switch res.Stats.Outcome() {
	case convert.OutcomeConverted:
		outcome = color.GreenString("converted")
	case convert.OutcomePartial:
		outcome = color.YellowString("partial")
	default:
		outcome = color.RedString("failed")
	}

	fmt.Printf("  %s %s -> %s (%s)\n", outcome, res.Report, outFile, res.Stats.String())

	if verbose {
		for _, w := range res.Warnings {
			fmt.Printf("      warning: %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Printf("      error: %s\n", e)
		}
	} else if n := len(res.Warnings) + len(res.Errors); n > 0 {
		fmt.Printf("      %d warning(s); rerun with --verbose to list them\n", n)
	}
}

// engineOptions maps the project configuration onto the engine's option
// surface. Empty config fields keep the engine defaults.
func engineOptions(cfg *config.Config) (convert.Options, error) {
	opts := convert.DefaultOptions()

	if cfg.Engine.FormulaPrefix != "" {
		opts.Expr.FormulaPrefix = cfg.Engine.FormulaPrefix
	}
	if cfg.Engine.ParameterPrefix != "" {
		opts.Expr.ParameterPrefix = cfg.Engine.ParameterPrefix
	}
	if cfg.Engine.TriggerPrefix != "" {
		opts.Expr.TriggerPrefix = cfg.Engine.TriggerPrefix
	}
	if cfg.Engine.OnUnsupported != "" {
		policy := expr.Policy(cfg.Engine.OnUnsupported)
		if !policy.Known() {
			return opts, fmt.Errorf("unknown unsupported-formula policy %q", cfg.Engine.OnUnsupported)
		}
		opts.Expr.Policy = policy
	}

	if cfg.Engine.Unit != "" {
		unit, err := units.Parse(cfg.Engine.Unit)
		if err != nil {
			return opts, err
		}
		opts.Layout.Target = unit
	}
	if cfg.Engine.FieldPrefix != "" {
		opts.Layout.FieldPrefix = cfg.Engine.FieldPrefix
	}
	if cfg.Engine.FontName != "" {
		opts.Layout.DefaultFontName = cfg.Engine.FontName
	}
	if cfg.Engine.FontSize > 0 {
		opts.Layout.DefaultFontSize = cfg.Engine.FontSize
	}

	return opts, nil
}
