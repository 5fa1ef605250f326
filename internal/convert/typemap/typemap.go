// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typemap maps source value kinds and display format masks to the
// target platform's type declarations and masks.
package typemap

import (
	"fmt"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// TypeDecl is a target type declaration as written in generated program
// units and column definitions.
type TypeDecl struct {
	Name      string
	Length    int
	Precision int
	Scale     int
}

// String renders the declaration, e.g. VARCHAR2(255) or NUMBER(15,2).
func (d TypeDecl) String() string {
	switch {
	case d.Length > 0:
		return fmt.Sprintf("%s(%d)", d.Name, d.Length)
	case d.Precision > 0:
		return fmt.Sprintf("%s(%d,%d)", d.Name, d.Precision, d.Scale)
	default:
		return d.Name
	}
}

// Size overrides the sizing of a mapped type. A non-nil override replaces
// the table defaults wholesale; defaults and overrides are never merged.
type Size struct {
	Length    int
	Precision int
	Scale     int
}

var typeTable = map[rpt.ValueKind]TypeDecl{
	rpt.ValueString:   {Name: "VARCHAR2", Length: 255},
	rpt.ValueMemo:     {Name: "VARCHAR2", Length: 4000},
	rpt.ValueNumber:   {Name: "NUMBER"},
	rpt.ValueCurrency: {Name: "NUMBER", Precision: 15, Scale: 2},
	rpt.ValueDate:     {Name: "DATE"},
	rpt.ValueDateTime: {Name: "DATE"},
	rpt.ValueBoolean:  {Name: "BOOLEAN"},
}

// wideText is the fallback for unknown or unset kinds.
var wideText = TypeDecl{Name: "VARCHAR2", Length: 4000}

// MapType resolves the target declaration for a source value kind.
// Unknown and unset kinds map to a wide text type so no element is ever
// dropped for lack of a declared type.
func MapType(kind rpt.ValueKind, override *Size) TypeDecl {
	decl, ok := typeTable[kind]
	if !ok {
		decl = wideText
	}
	if override != nil {
		decl.Length = override.Length
		decl.Precision = override.Precision
		decl.Scale = override.Scale
	}
	return decl
}

// ColumnDatatype returns the column datatype tag used by the target XML
// document model. The target has no boolean column datatype, so booleans
// are declared as character columns.
func ColumnDatatype(kind rpt.ValueKind) string {
	switch kind {
	case rpt.ValueNumber, rpt.ValueCurrency:
		return "number"
	case rpt.ValueDate, rpt.ValueDateTime:
		return "date"
	default:
		return "character"
	}
}
