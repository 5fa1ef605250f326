// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import "fmt"

// Stats counts translated elements by outcome. Every formula and trigger
// attempt lands in exactly one bucket, so Total always reconciles with
// the number of attempts.
type Stats struct {
	// Converted elements translated cleanly.
	Converted int
	// Placeholders translated to a manual-follow-up stub.
	Placeholders int
	// Failed elements produced no usable code.
	Failed int
}

func (s *Stats) observe(success, placeholder bool) {
	switch {
	case !success:
		s.Failed++
	case placeholder:
		s.Placeholders++
	default:
		s.Converted++
	}
}

// Total is the number of translation attempts.
func (s Stats) Total() int {
	return s.Converted + s.Placeholders + s.Failed
}

// Percent is the share of attempts that produced code, placeholders
// included. An empty run is complete by definition.
func (s Stats) Percent() float64 {
	if s.Total() == 0 {
		return 100
	}
	return float64(s.Converted+s.Placeholders) / float64(s.Total()) * 100
}

// Outcome grades a whole conversion run.
type Outcome string

const (
	// OutcomeConverted: every element translated cleanly.
	OutcomeConverted Outcome = "converted"
	// OutcomePartial: output was produced but some elements need manual
	// follow-up or failed.
	OutcomePartial Outcome = "partial"
	// OutcomeFailed: nothing translated.
	OutcomeFailed Outcome = "failed"
)

// Outcome grades the run. An empty run counts as converted: a report
// with no expressions has nothing left to follow up.
func (s Stats) Outcome() Outcome {
	switch {
	case s.Failed == 0 && s.Placeholders == 0:
		return OutcomeConverted
	case s.Converted > 0 || s.Placeholders > 0:
		return OutcomePartial
	default:
		return OutcomeFailed
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d converted, %d with placeholders, %d failed",
		s.Converted, s.Placeholders, s.Failed)
}
