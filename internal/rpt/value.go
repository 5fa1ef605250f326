// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

// ValueKind tags the value type of a column, formula, or parameter as
// declared in the source report definition.
type ValueKind string

const (
	ValueString   ValueKind = "string"
	ValueNumber   ValueKind = "number"
	ValueCurrency ValueKind = "currency"
	ValueDate     ValueKind = "date"
	ValueDateTime ValueKind = "datetime"
	ValueBoolean  ValueKind = "boolean"
	ValueMemo     ValueKind = "memo"
)

// Known reports whether k is one of the declared value kinds.
func (k ValueKind) Known() bool {
	switch k {
	case ValueString, ValueNumber, ValueCurrency, ValueDate, ValueDateTime, ValueBoolean, ValueMemo:
		return true
	default:
		return false
	}
}
