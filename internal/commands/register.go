// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rpt2rdf",
		Short: "Migrate report definitions to the target platform's document model",
	}

	registerInitCmd(rootCmd)
	registerDescribeCmd(rootCmd)
	registerReportsCmd(rootCmd)
	registerFormulasCmd(rootCmd)
	registerConvertCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerReportsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "reports",
		Short:             "Manage loaded report definitions",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerReportsListCmd(cmd)

	parent.AddCommand(cmd)
}

func registerFormulasCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "formulas",
		Short:             "Inspect report formulas",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerFormulasListCmd(cmd)

	parent.AddCommand(cmd)
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerDescribeCmd(parent *cobra.Command) {
	parent.AddCommand(newDescribeCmd())
}

func registerReportsListCmd(parent *cobra.Command) {
	parent.AddCommand(newReportsListCmd())
}

func registerFormulasListCmd(parent *cobra.Command) {
	parent.AddCommand(newFormulasListCmd())
}

func registerConvertCmd(parent *cobra.Command) {
	parent.AddCommand(newConvertCmd())
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
