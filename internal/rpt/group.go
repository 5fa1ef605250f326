// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

// SortDirection orders group instances.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Group is one grouping rule. Groups form an ordered list whose position
// defines nesting depth: the group at index 0 is outermost and the detail
// section nests innermost. The list order is the only nesting structure;
// there are no parent/child pointers.
type Group struct {
	Name          string
	FieldName     string
	SortDirection SortDirection
	KeepTogether  bool
	RepeatHeader  bool
}
