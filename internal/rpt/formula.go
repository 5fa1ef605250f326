// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

// Formula is a named, typed calculated expression in the source formula
// language. Text is the single-expression body; multi-statement scripts
// are not part of the document model.
type Formula struct {
	Name       string
	Text       string
	ReturnType ValueKind
}
