// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/config"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/emit"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/prompts"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"
)

type initOptions struct {
	reportsDir     string
	outputDir      string
	format         string
	unit           string
	policy         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rpt2rdf project",
		Long: `Initialize a new rpt2rdf project with an rpt2rdf.yaml configuration file
and a directory for extracted report definitions.`,
		Example: `  # Interactive mode
  rpt2rdf init

  # Non-interactive
  rpt2rdf init --reports ./reports --non-interactive
  rpt2rdf init --reports ./reports --unit centimeter --on-unsupported skip --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.reportsDir, "reports", "r", "reports", "Directory holding *.rpt.yaml / *.rpt.json definitions")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "out", "Directory converted documents are written to")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "rdfxml", "Default output format")
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "point", "Layout unit for converted coordinates (point, inch, centimeter)")
	cmd.Flags().StringVar(&opts.policy, "on-unsupported", "placeholder", "What untranslatable formulas produce (placeholder, skip, or fail)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("rpt2rdf.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(
			&opts.reportsDir,
			&opts.outputDir,
			&opts.format,
			&opts.unit,
			&opts.policy,
			emit.Available(),
		); err != nil {
			return err
		}
	}

	cfg := config.Default()
	cfg.Reports = opts.reportsDir
	cfg.Output = opts.outputDir
	cfg.Format = opts.format
	cfg.Engine.Unit = opts.unit
	cfg.Engine.OnUnsupported = opts.policy

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := emit.Get(cfg.Format); err != nil {
		return err
	}

	reportsDir := opts.reportsDir
	if !filepath.IsAbs(reportsDir) {
		reportsDir = filepath.Join(cwd, reportsDir)
	}
	if err := os.MkdirAll(reportsDir, 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Reports", Value: opts.reportsDir},
		{Label: "Output", Value: opts.outputDir},
		{Label: "Format", Value: opts.format},
	}, "Initialization completed")

	return nil
}
