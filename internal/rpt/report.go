// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rpt models extracted source report definitions: a sectioned page
// layout with grouping rules, calculated formulas, and prompt parameters.
// Definitions are read from <name>.rpt.yaml or <name>.rpt.json documents
// produced by the binary extractor.
package rpt

// Report is one extracted report definition. Geometry values are expressed
// in the unit named by Unit, which is twips unless the extractor says
// otherwise.
type Report struct {
	Name        string
	Title       string
	Description string
	PageWidth   float64
	PageHeight  float64
	Unit        string
	Sections    []Section
	Groups      []Group
	Formulas    []Formula
	Parameters  []Parameter
}

// SectionsByRole returns the sections whose effective role matches role,
// in document order.
func (r *Report) SectionsByRole(role SectionRole) []Section {
	var out []Section
	for _, s := range r.Sections {
		if s.EffectiveRole() == role {
			out = append(out, s)
		}
	}
	return out
}

// DetailSections returns all detail sections in document order, including
// sections whose role had to be inferred.
func (r *Report) DetailSections() []Section {
	return r.SectionsByRole(RoleDetail)
}

// Formula returns the formula with the given name, or nil.
func (r *Report) Formula(name string) *Formula {
	for i := range r.Formulas {
		if r.Formulas[i].Name == name {
			return &r.Formulas[i]
		}
	}
	return nil
}
