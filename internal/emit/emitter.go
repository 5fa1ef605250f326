// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit renders converted report documents to output formats.
package emit

import (
	"fmt"
	"sort"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
)

// Emitter defines the interface all output formats must implement.
type Emitter interface {
	// Name returns the emitter's identifier (e.g., "rdfxml", "plsql")
	Name() string

	// Emit renders a converted report document
	Emit(res *convert.Result) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".rdf.xml", ".pls")
	FileExtension() string
}

var emitters = make(map[string]Emitter)

// Register adds an emitter to the registry.
func Register(e Emitter) {
	emitters[e.Name()] = e
}

// Get retrieves an emitter by name.
func Get(name string) (Emitter, error) {
	e, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return e, nil
}

// Available returns all registered emitter names, sorted for stable
// help text.
func Available() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
