// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// RunConvertForm prompts for any convert inputs the flags left empty:
// report selection, output format, and output directory. promptOutput
// controls whether the output directory group is shown.
func RunConvertForm(selected *[]string, format, output *string, promptOutput bool, reports []*rpt.Report, formats []string) error {
	reportOptions := make([]huh.Option[string], 0, len(reports))
	for _, rep := range reports {
		label := rep.Name
		if rep.Title != "" && rep.Title != rep.Name {
			label = fmt.Sprintf("%s - %s", rep.Name, rep.Title)
		}
		reportOptions = append(reportOptions, huh.NewOption(label, rep.Name))
	}

	formatOptions := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		formatOptions[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Reports to convert").
				Options(reportOptions...).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return errors.New("select at least one report")
					}
					return nil
				}).
				Value(selected).
				Height(10),
		).WithHideFunc(func() bool { return len(*selected) > 0 }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(format),
		).WithHideFunc(func() bool { return *format != "" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Validate(requiredValidator("output directory")).
				Value(output),
		).WithHideFunc(func() bool { return !promptOutput }),
	).WithTheme(Theme()).Run()
}
