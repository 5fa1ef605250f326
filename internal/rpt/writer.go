// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Writer encodes a report definition to a file.
type Writer struct {
	write     func(path string, v any) error
	extension string
}

var (
	// JSONWriter writes report definitions as JSON.
	JSONWriter = Writer{writeJSON, ".rpt.json"}
	// YAMLWriter writes report definitions as YAML.
	YAMLWriter = Writer{writeYaml, ".rpt.yaml"}
)

// Write encodes the report definition into dir as <name>.rpt.<ext>.
func (wr Writer) Write(rep *Report, dir string) error {
	if rep == nil {
		return errors.New("cannot write nil report")
	}
	raw := toRaw(rep)
	path := filepath.Join(dir, rep.Name+wr.extension)
	return wr.write(path, raw)
}

func toRaw(rep *Report) *rawReport {
	sections := make([]rawSection, len(rep.Sections))
	for i, s := range rep.Sections {
		fields := make([]rawField, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = rawField{
				Name:              f.Name,
				Source:            f.Source,
				Kind:              f.Kind,
				ValueType:         f.ValueType,
				X:                 f.X,
				Y:                 f.Y,
				Width:             f.Width,
				Height:            f.Height,
				Font:              rawFont(f.Font),
				Format:            rawFormat(f.Format),
				SuppressCondition: f.SuppressCondition,
			}
		}
		sections[i] = rawSection{
			Name:              s.Name,
			Role:              s.Role,
			Height:            s.Height,
			Suppress:          s.Suppress,
			SuppressCondition: s.SuppressCondition,
			GroupIndex:        s.GroupIndex,
			Fields:            fields,
		}
	}

	groups := make([]rawGroup, len(rep.Groups))
	for i, g := range rep.Groups {
		groups[i] = rawGroup(g)
	}

	formulas := make([]rawFormula, len(rep.Formulas))
	for i, f := range rep.Formulas {
		formulas[i] = rawFormula(f)
	}

	parameters := make([]rawParameter, len(rep.Parameters))
	for i, p := range rep.Parameters {
		parameters[i] = rawParameter(p)
	}

	return &rawReport{
		Name:        rep.Name,
		Title:       rep.Title,
		Description: rep.Description,
		PageWidth:   rep.PageWidth,
		PageHeight:  rep.PageHeight,
		Unit:        rep.Unit,
		Sections:    sections,
		Groups:      groups,
		Formulas:    formulas,
		Parameters:  parameters,
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYaml(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(v)
}
