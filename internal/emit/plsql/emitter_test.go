// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plsql

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
)

func testResult() *convert.Result {
	return &convert.Result{
		RunID:  uuid.New(),
		Report: "orders",
		Units: []convert.ProgramUnit{
			{Name: "CF_MARGIN", Kind: convert.UnitFormula,
				Code: "function CF_MARGIN return NUMBER is\nbegin\n  return (:AMOUNT - :COST);\nend;"},
			{Name: "FT_AMOUNT_1", Kind: convert.UnitTrigger,
				Code: "function FT_AMOUNT_1 return BOOLEAN is\nbegin\n  return (NOT ((:AMOUNT = 0)));\nend;"},
		},
	}
}

func TestEmit_UnitsInOrder(t *testing.T) {
	data, err := New().Emit(testResult())
	require.NoError(t, err)

	text := string(data)
	formulaAt := strings.Index(text, "-- formula CF_MARGIN")
	triggerAt := strings.Index(text, "-- trigger FT_AMOUNT_1")
	require.GreaterOrEqual(t, formulaAt, 0)
	require.GreaterOrEqual(t, triggerAt, 0)
	assert.Less(t, formulaAt, triggerAt)

	// each unit ends with a slash on its own line
	assert.Equal(t, 2, strings.Count(text, "\n/\n"))
}

func TestEmit_Banner(t *testing.T) {
	res := testResult()
	data, err := New().Emit(res)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "-- Report: orders")
	assert.Contains(t, text, "-- Run: "+res.RunID.String())
	assert.Contains(t, text, "-- Program units: 2")
}

func TestEmit_NoUnits(t *testing.T) {
	data, err := New().Emit(&convert.Result{RunID: uuid.New(), Report: "empty"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "no program units were generated")
}

func TestEmit_NilResult(t *testing.T) {
	_, err := New().Emit(nil)
	assert.Error(t, err)
}
