// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

// Parameter is a prompt value the report asks for at run time.
type Parameter struct {
	Name         string
	Prompt       string
	ValueType    ValueKind
	DefaultValue string
}
