// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(reportsDir, outputDir, format, unit, policy *string, formats []string) error {
	formatOptions := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		formatOptions[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reports directory").
				Description("Where extracted *.rpt.yaml / *.rpt.json definitions live").
				Placeholder("./reports").
				Validate(requiredValidator("reports directory")).
				Value(reportsDir),
			huh.NewInput().
				Title("Output directory").
				Placeholder("./out").
				Validate(requiredValidator("output directory")).
				Value(outputDir),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(format),
			huh.NewSelect[string]().
				Title("Layout unit").
				Options(
					huh.NewOption("Points (recommended)", "point"),
					huh.NewOption("Inches", "inch"),
					huh.NewOption("Centimeters", "centimeter"),
				).
				Value(unit),
			huh.NewSelect[string]().
				Title("Unsupported formulas").
				Options(
					huh.NewOption("Emit placeholder stubs (recommended)", "placeholder"),
					huh.NewOption("Skip them", "skip"),
					huh.NewOption("Fail the expression", "fail"),
				).
				Value(policy),
		),
	).WithTheme(Theme()).Run()
}
