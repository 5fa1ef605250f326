// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

func TestMapType_Defaults(t *testing.T) {
	tests := []struct {
		kind rpt.ValueKind
		want string
	}{
		{rpt.ValueString, "VARCHAR2(255)"},
		{rpt.ValueMemo, "VARCHAR2(4000)"},
		{rpt.ValueNumber, "NUMBER"},
		{rpt.ValueCurrency, "NUMBER(15,2)"},
		{rpt.ValueDate, "DATE"},
		{rpt.ValueDateTime, "DATE"},
		{rpt.ValueBoolean, "BOOLEAN"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.kind, nil).String())
		})
	}
}

func TestMapType_UnknownFallsBackToWideText(t *testing.T) {
	assert.Equal(t, "VARCHAR2(4000)", MapType("blob", nil).String())
	assert.Equal(t, "VARCHAR2(4000)", MapType("", nil).String())
}

func TestMapType_OverrideReplaces(t *testing.T) {
	// The override replaces sizing wholesale; nothing is merged in.
	decl := MapType(rpt.ValueCurrency, &Size{Precision: 9})
	assert.Equal(t, "NUMBER(9,0)", decl.String())

	decl = MapType(rpt.ValueString, &Size{Length: 64})
	assert.Equal(t, "VARCHAR2(64)", decl.String())

	// An empty override clears the defaults too.
	decl = MapType(rpt.ValueCurrency, &Size{})
	assert.Equal(t, "NUMBER", decl.String())
}

func TestColumnDatatype(t *testing.T) {
	assert.Equal(t, "number", ColumnDatatype(rpt.ValueCurrency))
	assert.Equal(t, "date", ColumnDatatype(rpt.ValueDateTime))
	assert.Equal(t, "character", ColumnDatatype(rpt.ValueBoolean))
	assert.Equal(t, "character", ColumnDatatype(rpt.ValueString))
	assert.Equal(t, "character", ColumnDatatype(""))
}
