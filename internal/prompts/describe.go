// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// RunDescribeForm prompts the user to select a report to describe.
func RunDescribeForm(value *string, reports []*rpt.Report) error {
	options := make([]huh.Option[string], 0, len(reports))
	for _, rep := range reports {
		label := rep.Name
		if rep.Title != "" && rep.Title != rep.Name {
			label = fmt.Sprintf("%s - %s", rep.Name, rep.Title)
		}
		options = append(options, huh.NewOption(label, rep.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select report to describe").
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}
