// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() map[string]any {
	return map[string]any{
		"name":       "orders",
		"pageWidth":  12240.0,
		"pageHeight": 15840.0,
		"sections": []any{
			map[string]any{"name": "Details", "role": "detail", "height": 240.0},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	require.NoError(t, ValidateDocument(validDoc()))
}

func TestValidateDocument_MissingRequired(t *testing.T) {
	doc := validDoc()
	delete(doc, "pageWidth")
	assert.Error(t, ValidateDocument(doc))

	doc = validDoc()
	delete(doc, "sections")
	assert.Error(t, ValidateDocument(doc))
}

func TestValidateDocument_WrongShape(t *testing.T) {
	doc := validDoc()
	doc["sections"] = []any{
		map[string]any{"name": "Details"}, // height missing
	}
	assert.Error(t, ValidateDocument(doc))

	doc = validDoc()
	doc["pageWidth"] = "wide"
	assert.Error(t, ValidateDocument(doc))
}

func TestValidateDocument_UnknownTagsAllowed(t *testing.T) {
	// Role and kind tags are deliberately not closed at the schema level;
	// the model falls back to inference for unknown values.
	doc := validDoc()
	doc["sections"] = []any{
		map[string]any{"name": "GH1", "role": "banner", "height": 0.0},
	}
	assert.NoError(t, ValidateDocument(doc))
}
