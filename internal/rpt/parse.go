// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a report definition fails shape
// validation against the embedded document schema.
var ErrInvalidDocument = errors.New("invalid report definition")

// Parser decodes a report definition from an io.Reader.
type Parser struct {
	unmarshal func([]byte, any) error
}

var (
	// JSON parses report definitions from JSON.
	JSON = Parser{json.Unmarshal}
	// YAML parses report definitions from YAML.
	YAML = Parser{yaml.Unmarshal}
)

// Parse decodes a report definition from r. The document shape is checked
// against the embedded schema before the typed model is built, so callers
// downstream never see a definition with missing required fields.
func (p Parser) Parse(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report definition: %w", err)
	}

	var doc any
	if err := p.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report definition: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var raw rawReport
	if err := p.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode report definition: %w", err)
	}
	return raw.toReport(), nil
}

// ParseFile reads one definition file, picking the parser from the file
// extension: .json is parsed as JSON, everything else as YAML.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open report definition: %w", err)
	}
	defer f.Close() //nolint:errcheck

	p := YAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		p = JSON
	}
	return p.Parse(f)
}

type rawReport struct {
	Name        string         `yaml:"name" json:"name"`
	Title       string         `yaml:"title,omitempty" json:"title,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	PageWidth   float64        `yaml:"pageWidth" json:"pageWidth"`
	PageHeight  float64        `yaml:"pageHeight" json:"pageHeight"`
	Unit        string         `yaml:"unit,omitempty" json:"unit,omitempty"`
	Sections    []rawSection   `yaml:"sections" json:"sections"`
	Groups      []rawGroup     `yaml:"groups,omitempty" json:"groups,omitempty"`
	Formulas    []rawFormula   `yaml:"formulas,omitempty" json:"formulas,omitempty"`
	Parameters  []rawParameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

type rawSection struct {
	Name              string      `yaml:"name" json:"name"`
	Role              SectionRole `yaml:"role,omitempty" json:"role,omitempty"`
	Height            float64     `yaml:"height" json:"height"`
	Suppress          bool        `yaml:"suppress,omitempty" json:"suppress,omitempty"`
	SuppressCondition string      `yaml:"suppressCondition,omitempty" json:"suppressCondition,omitempty"`
	GroupIndex        int         `yaml:"groupIndex,omitempty" json:"groupIndex,omitempty"`
	Fields            []rawField  `yaml:"fields,omitempty" json:"fields,omitempty"`
}

type rawGroup struct {
	Name          string        `yaml:"name" json:"name"`
	FieldName     string        `yaml:"fieldName" json:"fieldName"`
	SortDirection SortDirection `yaml:"sortDirection,omitempty" json:"sortDirection,omitempty"`
	KeepTogether  bool          `yaml:"keepTogether,omitempty" json:"keepTogether,omitempty"`
	RepeatHeader  bool          `yaml:"repeatHeader,omitempty" json:"repeatHeader,omitempty"`
}

type rawField struct {
	Name              string    `yaml:"name" json:"name"`
	Source            string    `yaml:"source,omitempty" json:"source,omitempty"`
	Kind              FieldKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	ValueType         ValueKind `yaml:"valueType,omitempty" json:"valueType,omitempty"`
	X                 float64   `yaml:"x,omitempty" json:"x,omitempty"`
	Y                 float64   `yaml:"y,omitempty" json:"y,omitempty"`
	Width             float64   `yaml:"width,omitempty" json:"width,omitempty"`
	Height            float64   `yaml:"height,omitempty" json:"height,omitempty"`
	Font              rawFont   `yaml:"font,omitempty" json:"font,omitempty"`
	Format            rawFormat `yaml:"format,omitempty" json:"format,omitempty"`
	SuppressCondition string    `yaml:"suppressCondition,omitempty" json:"suppressCondition,omitempty"`
}

type rawFont struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Size   int    `yaml:"size,omitempty" json:"size,omitempty"`
	Bold   bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty" json:"italic,omitempty"`
}

type rawFormat struct {
	Alignment       string `yaml:"alignment,omitempty" json:"alignment,omitempty"`
	Mask            string `yaml:"mask,omitempty" json:"mask,omitempty"`
	SuppressIfZero  bool   `yaml:"suppressIfZero,omitempty" json:"suppressIfZero,omitempty"`
	SuppressIfBlank bool   `yaml:"suppressIfBlank,omitempty" json:"suppressIfBlank,omitempty"`
}

type rawFormula struct {
	Name       string    `yaml:"name" json:"name"`
	Text       string    `yaml:"text" json:"text"`
	ReturnType ValueKind `yaml:"returnType,omitempty" json:"returnType,omitempty"`
}

type rawParameter struct {
	Name         string    `yaml:"name" json:"name"`
	Prompt       string    `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	ValueType    ValueKind `yaml:"valueType,omitempty" json:"valueType,omitempty"`
	DefaultValue string    `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
}

func (raw *rawReport) toReport() *Report {
	sections := make([]Section, len(raw.Sections))
	for i, rs := range raw.Sections {
		fields := make([]Field, len(rs.Fields))
		for j, rf := range rs.Fields {
			fields[j] = Field{
				Name:              rf.Name,
				Source:            rf.Source,
				Kind:              rf.Kind,
				ValueType:         rf.ValueType,
				X:                 rf.X,
				Y:                 rf.Y,
				Width:             rf.Width,
				Height:            rf.Height,
				Font:              Font(rf.Font),
				Format:            Format(rf.Format),
				SuppressCondition: rf.SuppressCondition,
			}
		}
		sections[i] = Section{
			Name:              rs.Name,
			Role:              rs.Role,
			Height:            rs.Height,
			Suppress:          rs.Suppress,
			SuppressCondition: rs.SuppressCondition,
			GroupIndex:        rs.GroupIndex,
			Fields:            fields,
		}
	}

	groups := make([]Group, len(raw.Groups))
	for i, rg := range raw.Groups {
		groups[i] = Group(rg)
	}

	formulas := make([]Formula, len(raw.Formulas))
	for i, rf := range raw.Formulas {
		formulas[i] = Formula(rf)
	}

	parameters := make([]Parameter, len(raw.Parameters))
	for i, rp := range raw.Parameters {
		parameters[i] = Parameter(rp)
	}

	return &Report{
		Name:        raw.Name,
		Title:       raw.Title,
		Description: raw.Description,
		PageWidth:   raw.PageWidth,
		PageHeight:  raw.PageHeight,
		Unit:        raw.Unit,
		Sections:    sections,
		Groups:      groups,
		Formulas:    formulas,
		Parameters:  parameters,
	}
}
