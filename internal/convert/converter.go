// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package convert drives one report definition through expression
// translation, layout synthesis, and type mapping, and reconciles the
// outcome so every translated element lands in exactly one stats bucket.
package convert

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/expr"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/layout"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/typemap"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/units"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// Options selects the conversion conventions: expression prefixes and
// failure policy, and the layout target.
type Options struct {
	Expr   expr.Config
	Layout layout.Config
}

// DefaultOptions returns the stock conventions of both stages.
func DefaultOptions() Options {
	return Options{
		Expr:   expr.DefaultConfig(),
		Layout: layout.DefaultConfig(),
	}
}

// Converter turns parsed source reports into target document models. The
// translator and trigger sequence reset per report, so one Converter
// handles any number of reports with reproducible output. Not safe for
// concurrent use.
type Converter struct {
	opts  Options
	tr    *expr.Translator
	seq   *expr.TriggerSeq
	synth *layout.Synthesizer
}

// New returns a Converter. Zero-valued option groups fall back to the
// stage defaults.
func New(opts Options) *Converter {
	if opts.Expr == (expr.Config{}) {
		opts.Expr = expr.DefaultConfig()
	}
	if opts.Layout == (layout.Config{}) {
		opts.Layout = layout.DefaultConfig()
	}
	if opts.Layout.Target == 0 {
		opts.Layout.Target = layout.DefaultConfig().Target
	}
	tr := expr.New(opts.Expr)
	seq := &expr.TriggerSeq{}
	return &Converter{
		opts:  opts,
		tr:    tr,
		seq:   seq,
		synth: layout.New(opts.Layout, tr, seq),
	}
}

// UnitKind classifies generated program units.
type UnitKind string

const (
	UnitFormula UnitKind = "formula"
	UnitTrigger UnitKind = "trigger"
)

// ProgramUnit is one generated code unit of the target document.
type ProgramUnit struct {
	Name string
	Kind UnitKind
	Code string
}

// Parameter is a target bind parameter derived from a source parameter.
type Parameter struct {
	Name       string
	SourceName string
	Prompt     string
	Datatype   typemap.TypeDecl
	Default    string
}

// Group is one level of the target data model, outermost first.
type Group struct {
	Name       string
	Column     string
	Descending bool
	Level      int
}

// Column is one referenced data-model column. Datatype is set only when
// a placed field declares the column's value type.
type Column struct {
	Name     string
	Datatype string
}

// Result is the complete outcome of converting one report: the document
// model the emitters consume plus the accounting for every translated
// element.
type Result struct {
	RunID       uuid.UUID
	Report      string
	Title       string
	Description string
	TargetUnit  units.Unit
	Root        *layout.Frame
	Groups      []Group
	Columns     []Column
	Parameters  []Parameter
	Formulas    []expr.TranslatedExpression
	Triggers    []expr.Trigger
	Units       []ProgramUnit
	Stats       Stats
	Warnings    []string
	Errors      []string
}

// Convert builds the target document model for rep. Individual element
// failures never abort the run; they are recorded in Errors and counted
// in Stats. The returned error is reserved for unusable input.
func (c *Converter) Convert(rep *rpt.Report) (*Result, error) {
	if rep == nil {
		return nil, errors.New("cannot convert nil report")
	}
	c.tr.Reset()
	c.seq.Reset()

	res := &Result{
		RunID:       uuid.New(),
		Report:      rep.Name,
		Title:       rep.Title,
		Description: rep.Description,
		TargetUnit:  c.opts.Layout.Target,
	}

	// Formulas translate before layout so formula-sourced fields resolve
	// to already-assigned target names.
	for _, f := range rep.Formulas {
		te, err := c.tr.Translate(f.Name, f.Text, f.ReturnType)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
		}
		res.Formulas = append(res.Formulas, te)
		res.Stats.observe(te.Success, te.Placeholder)
	}

	out := c.synth.Build(rep)
	res.Root = out.Root
	res.Triggers = out.Triggers
	res.Warnings = append(res.Warnings, out.Warnings...)
	res.Errors = append(res.Errors, out.Errors...)
	for _, trg := range out.Triggers {
		res.Stats.observe(trg.Success, trg.Placeholder)
	}

	res.Parameters = c.parameters(rep)
	res.Groups = dataGroups(rep)
	res.Columns = referencedColumns(rep, res)
	res.Units = programUnits(res)
	return res, nil
}

func (c *Converter) parameters(rep *rpt.Report) []Parameter {
	var out []Parameter
	for _, p := range rep.Parameters {
		out = append(out, Parameter{
			Name:       c.tr.ParameterName(p.Name),
			SourceName: p.Name,
			Prompt:     p.Prompt,
			Datatype:   typemap.MapType(p.ValueType, nil),
			Default:    p.DefaultValue,
		})
	}
	return out
}

func dataGroups(rep *rpt.Report) []Group {
	var out []Group
	for i, g := range rep.Groups {
		out = append(out, Group{
			Name:       layout.GroupName(g),
			Column:     expr.NormalizeSource(g.FieldName),
			Descending: g.SortDirection == rpt.SortDescending,
			Level:      i + 1,
		})
	}
	return out
}

// referencedColumns collects every bind name the generated document
// references: expression and trigger columns, grouping columns, and
// column-sourced fields. Declared parameters are excluded; they bind
// through the parameter list. Datatypes come from placed fields that
// declare a value type.
func referencedColumns(rep *rpt.Report, res *Result) []Column {
	set := make(map[string]string)
	add := func(name, datatype string) {
		if name == "" {
			return
		}
		if cur, ok := set[name]; !ok || (cur == "" && datatype != "") {
			set[name] = datatype
		}
	}

	for _, f := range res.Formulas {
		for _, col := range f.Columns {
			add(col, "")
		}
	}
	for _, t := range res.Triggers {
		for _, col := range t.Columns {
			add(col, "")
		}
	}
	for _, g := range res.Groups {
		add(g.Column, "")
	}
	for _, sec := range rep.Sections {
		for _, f := range sec.Fields {
			if f.EffectiveKind() != rpt.KindColumn {
				continue
			}
			datatype := ""
			if f.ValueType.Known() {
				datatype = typemap.ColumnDatatype(f.ValueType)
			}
			add(expr.NormalizeSource(f.Source), datatype)
		}
	}
	for _, p := range res.Parameters {
		delete(set, p.Name)
	}

	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		cols = append(cols, Column{Name: n, Datatype: set[n]})
	}
	return cols
}

// programUnits gathers the units that actually carry code, formulas
// first. Skipped and failed elements contribute nothing here; they are
// visible in Stats and Errors instead.
func programUnits(res *Result) []ProgramUnit {
	var out []ProgramUnit
	for _, f := range res.Formulas {
		if !f.Success || f.Code == "" {
			continue
		}
		out = append(out, ProgramUnit{Name: f.TargetName, Kind: UnitFormula, Code: f.Code})
	}
	for _, t := range res.Triggers {
		if !t.Success || t.Code == "" {
			continue
		}
		out = append(out, ProgramUnit{Name: t.Name, Kind: UnitTrigger, Code: t.Code})
	}
	return out
}
