// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import "strings"

// FieldKind says what a placed field draws its value from.
type FieldKind string

const (
	KindColumn    FieldKind = "column"
	KindFormula   FieldKind = "formula"
	KindParameter FieldKind = "parameter"
	KindSpecial   FieldKind = "special"
	KindLiteral   FieldKind = "literal"
)

// Known reports whether k is one of the declared kinds.
func (k FieldKind) Known() bool {
	switch k {
	case KindColumn, KindFormula, KindParameter, KindSpecial, KindLiteral:
		return true
	default:
		return false
	}
}

// specialSources are the builtin value names a field may reference
// without braces.
var specialSources = map[string]bool{
	"page number":      true,
	"total page count": true,
	"page n of m":      true,
	"print date":       true,
	"print time":       true,
	"record number":    true,
	"group number":     true,
	"report title":     true,
}

// Field is one placed object within a section. Source holds the reference
// text as written in the definition: "{orders.amount}" for columns,
// "{@Gross Margin}" for formulas, "{?Region}" for parameters, a builtin
// name for specials, or the literal text itself.
type Field struct {
	Name              string
	Source            string
	Kind              FieldKind
	ValueType         ValueKind
	X                 float64
	Y                 float64
	Width             float64
	Height            float64
	Font              Font
	Format            Format
	SuppressCondition string
}

// EffectiveKind returns the declared source kind when it is one of the
// known kinds. Otherwise the kind is inferred from the shape of the
// source reference: {@...} is a formula, {?...} a parameter, any other
// braced reference a column, a builtin value name a special, and
// everything else literal text.
func (f Field) EffectiveKind() FieldKind {
	if f.Kind.Known() {
		return f.Kind
	}
	s := strings.TrimSpace(f.Source)
	switch {
	case strings.HasPrefix(s, "{@"):
		return KindFormula
	case strings.HasPrefix(s, "{?"):
		return KindParameter
	case strings.HasPrefix(s, "{"):
		return KindColumn
	case specialSources[strings.ToLower(s)]:
		return KindSpecial
	default:
		return KindLiteral
	}
}

// Font is the declared face of a placed field.
type Font struct {
	Name   string
	Size   int
	Bold   bool
	Italic bool
}

// Format carries display formatting and static visibility flags.
type Format struct {
	Alignment       string
	Mask            string
	SuppressIfZero  bool
	SuppressIfBlank bool
}
