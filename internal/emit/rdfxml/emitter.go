// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rdfxml renders converted reports as the target platform's XML
// document format, ready for the definition compiler.
package rdfxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/emit"
)

func init() {
	// Auto-register on import
	emit.Register(New())
}

const generatedHeader = "<!-- Code generated by rpt2rdf; DO NOT EDIT. -->"

// Emitter renders converted reports as target definition XML.
type Emitter struct{}

// New creates a new XML document emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "rdfxml"
}

// FileExtension returns the file extension for definition documents.
func (e *Emitter) FileExtension() string {
	return ".rdf.xml"
}

// Emit renders the converted document as indented XML.
func (e *Emitter) Emit(res *convert.Result) ([]byte, error) {
	if res == nil || res.Root == nil {
		return nil, errors.New("cannot emit empty result")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(generatedHeader + "\n")

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(buildDocument(res)); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
