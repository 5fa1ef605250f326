// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package plsql emits the generated program units as a single PL/SQL
// source file for manual review outside the report definition.
package plsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/emit"
)

func init() {
	// Auto-register on import
	emit.Register(New())
}

// Emitter writes every translated formula and trigger into one .pls
// file, each unit introduced by a banner comment and terminated with a
// slash so the file loads in SQL*Plus as-is.
type Emitter struct{}

// New creates a new PL/SQL emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name returns the output format identifier.
func (e *Emitter) Name() string {
	return "plsql"
}

// FileExtension returns the extension for emitted files.
func (e *Emitter) FileExtension() string {
	return ".pls"
}

// Emit renders the program units of a converted report.
func (e *Emitter) Emit(res *convert.Result) ([]byte, error) {
	if res == nil {
		return nil, errors.New("cannot emit empty result")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Code generated by rpt2rdf; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "-- Report: %s\n", res.Report)
	fmt.Fprintf(&b, "-- Run: %s\n", res.RunID)
	fmt.Fprintf(&b, "-- Program units: %d\n", len(res.Units))

	if len(res.Units) == 0 {
		b.WriteString("\n-- (no program units were generated)\n")
		return []byte(b.String()), nil
	}

	for _, u := range res.Units {
		fmt.Fprintf(&b, "\n-- %s %s\n", u.Kind, u.Name)
		b.WriteString(strings.TrimRight(u.Code, "\n"))
		b.WriteString("\n/\n")
	}
	return []byte(b.String()), nil
}
