// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package layout

import (
	"strings"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/expr"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/typemap"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// Alignment values for placed fields.
const (
	AlignStart   = "start"
	AlignCenter  = "center"
	AlignEnd     = "end"
	AlignJustify = "justify"
)

// fontMap translates common source faces to the target's builtin faces.
// Faces not listed carry over verbatim.
var fontMap = map[string]string{
	"arial":           "helvetica",
	"helvetica":       "helvetica",
	"times new roman": "times",
	"times":           "times",
	"courier new":     "courier",
	"courier":         "courier",
}

// buildField converts one placed source field: coordinates change units,
// references normalize per kind, the display mask maps where known, and
// visibility rules become a format trigger.
func (b *builder) buildField(f rpt.Field) Field {
	kind := f.EffectiveKind()
	out := Field{
		Name:      b.unique(b.cfg.FieldPrefix + fallbackIdent(f.Name, "FIELD")),
		Source:    b.fieldSource(f, kind),
		Kind:      kind,
		X:         b.conv(f.X),
		Y:         b.conv(f.Y),
		Width:     b.conv(f.Width),
		Height:    b.conv(f.Height),
		FontName:  b.fontName(f.Font.Name),
		FontSize:  b.fontSize(f.Font.Size),
		Bold:      f.Font.Bold,
		Italic:    f.Font.Italic,
		Alignment: alignment(f.Format.Alignment),
		Visible:   true,
	}
	out.FormatMask = b.fieldMask(f)
	out.FormatTrigger = b.fieldTrigger(f)
	// An explicit suppress condition hides the field until its trigger
	// shows it; the zero/blank flags alone leave it visible by default.
	if strings.TrimSpace(f.SuppressCondition) != "" {
		out.Visible = false
	}
	return out
}

// fieldSource resolves what the field displays. Formula and parameter
// references resolve through the translator so the name matches the
// generated program unit or bind variable; literals carry their text.
func (b *builder) fieldSource(f rpt.Field, kind rpt.FieldKind) string {
	switch kind {
	case rpt.KindFormula:
		return b.tr.TargetName(refName(f.Source))
	case rpt.KindParameter:
		return b.tr.ParameterName(refName(f.Source))
	case rpt.KindLiteral:
		return f.Source
	default:
		return expr.NormalizeSource(f.Source)
	}
}

// refName strips the reference decoration — braces and the formula or
// parameter marker — leaving the name as declared.
func refName(source string) string {
	s := strings.TrimSpace(source)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	s = strings.TrimPrefix(s, "@")
	s = strings.TrimPrefix(s, "?")
	return strings.TrimSpace(s)
}

func (b *builder) fieldMask(f rpt.Field) string {
	mask := strings.TrimSpace(f.Format.Mask)
	if mask == "" {
		return ""
	}
	mapped, ok := typemap.MapFormatMask(mask)
	if !ok {
		b.warnf("field %s: format mask %q has no known equivalent; carried over unchanged", f.Name, mask)
		return mask
	}
	return mapped
}

// fieldTrigger merges the field's explicit suppress condition with the
// suppress-if-zero and suppress-if-blank flags into one trigger, since
// the target allows a single format trigger per object.
func (b *builder) fieldTrigger(f rpt.Field) string {
	var conds []string
	if c := strings.TrimSpace(f.SuppressCondition); c != "" {
		conds = append(conds, "("+c+")")
	}
	if flag := expr.FlagCondition(flagRef(f), f.Format.SuppressIfZero, f.Format.SuppressIfBlank); flag != "" {
		conds = append(conds, flag)
	}
	if len(conds) == 0 {
		return ""
	}
	trg, err := b.tr.SuppressTrigger(b.seq, f.Name, strings.Join(conds, " or "))
	return b.record(trg, err)
}

// flagRef is the reference the flag checks test: the field's own source
// so the generated condition compares the displayed value. The formula
// or parameter marker stays in place; only the braces come off, since
// the condition builder adds its own.
func flagRef(f rpt.Field) string {
	s := strings.TrimSpace(f.Source)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return f.Name
}

func (b *builder) fontName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return b.cfg.DefaultFontName
	}
	if mapped, ok := fontMap[strings.ToLower(n)]; ok {
		return mapped
	}
	return n
}

func (b *builder) fontSize(size int) int {
	if size > 0 {
		return size
	}
	return b.cfg.DefaultFontSize
}

func alignment(a string) string {
	switch strings.ToLower(strings.TrimSpace(a)) {
	case "", "left", "default":
		return AlignStart
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignEnd
	case "justified", "justify":
		return AlignJustify
	default:
		return AlignStart
	}
}
