// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed report.schema.json
var reportSchemaJSON []byte

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(reportSchemaJSON, &s); err != nil {
		return nil, fmt.Errorf("failed to decode embedded report schema: %w", err)
	}
	return s.Resolve(nil)
})

// ValidateDocument checks a decoded definition document against the
// embedded report schema. It rejects missing required fields and wrong
// value shapes; semantic leniency (unknown roles, kinds, directions) is
// handled by the model, not here.
func ValidateDocument(doc any) error {
	rs, err := resolvedSchema()
	if err != nil {
		return err
	}
	return rs.Validate(doc)
}
