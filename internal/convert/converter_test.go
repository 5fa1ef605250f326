// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/expr"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/layout"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/units"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

func testReport() *rpt.Report {
	return &rpt.Report{
		Name:       "orders",
		Title:      "Order Summary",
		PageWidth:  12240,
		PageHeight: 15840,
		Unit:       "twip",
		Sections: []rpt.Section{
			{Name: "Page Header", Role: rpt.RolePageHeader, Height: 360},
			{Name: "GH1", Role: rpt.RoleGroupHeader, GroupIndex: 1, Height: 240,
				Fields: []rpt.Field{
					{Name: "Region", Source: "{customers.region}", Kind: rpt.KindColumn},
				}},
			{Name: "Details", Role: rpt.RoleDetail, Height: 240,
				Fields: []rpt.Field{
					{Name: "Amount", Source: "{orders.amount}", Kind: rpt.KindColumn,
						ValueType: rpt.ValueCurrency,
						Format:    rpt.Format{SuppressIfZero: true}},
					{Name: "Margin", Source: "{@Gross Margin}", Kind: rpt.KindFormula},
				}},
			{Name: "GF1", Role: rpt.RoleGroupFooter, GroupIndex: 1, Height: 240, Suppress: true},
		},
		Groups: []rpt.Group{
			{Name: "Region", FieldName: "{customers.region}", SortDirection: rpt.SortDescending},
		},
		Formulas: []rpt.Formula{
			{Name: "Gross Margin", Text: "{orders.amount} - {orders.cost}", ReturnType: rpt.ValueCurrency},
			{Name: "Flagged", Text: "Sum({orders.amount})", ReturnType: rpt.ValueNumber},
		},
		Parameters: []rpt.Parameter{
			{Name: "Region", Prompt: "Pick a region", ValueType: rpt.ValueString, DefaultValue: "WEST"},
		},
	}
}

func TestConvert_FullDocument(t *testing.T) {
	c := New(DefaultOptions())

	res, err := c.Convert(testReport())
	require.NoError(t, err)

	assert.Equal(t, "orders", res.Report)
	assert.Equal(t, "Order Summary", res.Title)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", res.RunID.String())
	require.NotNil(t, res.Root)

	require.Len(t, res.Formulas, 2)
	assert.Equal(t, "CF_GROSS_MARGIN", res.Formulas[0].TargetName)
	assert.True(t, res.Formulas[0].Success)
	assert.False(t, res.Formulas[0].Placeholder)
	assert.Equal(t, "CF_FLAGGED", res.Formulas[1].TargetName)
	assert.True(t, res.Formulas[1].Placeholder)

	require.Len(t, res.Triggers, 2)
	assert.Equal(t, "FT_AMOUNT_1", res.Triggers[0].Name)
	assert.Equal(t, "FT_GF1_2", res.Triggers[1].Name)

	assert.Equal(t, Stats{Converted: 3, Placeholders: 1}, res.Stats)
	assert.Equal(t, len(res.Formulas)+len(res.Triggers), res.Stats.Total())
	assert.Equal(t, OutcomePartial, res.Stats.Outcome())
	assert.Empty(t, res.Errors)
}

func TestConvert_DataModel(t *testing.T) {
	c := New(DefaultOptions())

	res, err := c.Convert(testReport())
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, Group{Name: "G_REGION", Column: "REGION", Descending: true, Level: 1}, res.Groups[0])

	assert.Equal(t, []Column{
		{Name: "AMOUNT", Datatype: "number"},
		{Name: "COST"},
		{Name: "REGION"},
	}, res.Columns)

	require.Len(t, res.Parameters, 1)
	p := res.Parameters[0]
	assert.Equal(t, "P_REGION", p.Name)
	assert.Equal(t, "Region", p.SourceName)
	assert.Equal(t, "Pick a region", p.Prompt)
	assert.Equal(t, "VARCHAR2(255)", p.Datatype.String())
	assert.Equal(t, "WEST", p.Default)
}

func TestConvert_ProgramUnits(t *testing.T) {
	c := New(DefaultOptions())

	res, err := c.Convert(testReport())
	require.NoError(t, err)

	require.Len(t, res.Units, 4)
	assert.Equal(t, "CF_GROSS_MARGIN", res.Units[0].Name)
	assert.Equal(t, UnitFormula, res.Units[0].Kind)
	assert.Equal(t, "CF_FLAGGED", res.Units[1].Name)
	assert.Equal(t, "FT_AMOUNT_1", res.Units[2].Name)
	assert.Equal(t, UnitTrigger, res.Units[2].Kind)
	assert.Equal(t, "FT_GF1_2", res.Units[3].Name)
	for _, u := range res.Units {
		assert.NotEmpty(t, u.Code)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	c := New(DefaultOptions())

	first, err := c.Convert(testReport())
	require.NoError(t, err)
	second, err := c.Convert(testReport())
	require.NoError(t, err)

	assert.Equal(t, first.Formulas, second.Formulas)
	assert.Equal(t, first.Triggers, second.Triggers)
	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Stats, second.Stats)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestConvert_FailPolicyCollectsErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Expr.Policy = expr.PolicyFail
	c := New(opts)

	rep := &rpt.Report{
		Name:       "bad",
		PageWidth:  12240,
		PageHeight: 15840,
		Sections: []rpt.Section{
			{Name: "Details", Role: rpt.RoleDetail, Height: 240},
		},
		Formulas: []rpt.Formula{
			{Name: "Broken", Text: "Foo({A})", ReturnType: rpt.ValueNumber},
		},
	}

	res, err := c.Convert(rep)
	require.NoError(t, err)

	assert.Equal(t, Stats{Failed: 1}, res.Stats)
	assert.Equal(t, OutcomeFailed, res.Stats.Outcome())
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "unknown function Foo")
	assert.Empty(t, res.Units)
	assert.NotNil(t, res.Root)
}

func TestConvert_SkipPolicyCountsFailed(t *testing.T) {
	opts := DefaultOptions()
	opts.Expr.Policy = expr.PolicySkip
	c := New(opts)

	rep := testReport()
	res, err := c.Convert(rep)
	require.NoError(t, err)

	// The unsupported aggregate is skipped instead of stubbed.
	assert.Equal(t, Stats{Converted: 3, Failed: 1}, res.Stats)
	assert.Len(t, res.Units, 3)
	assert.Empty(t, res.Errors)
}

func TestNew_PartialLayoutOptionsDefaultToPoints(t *testing.T) {
	c := New(Options{Layout: layout.Config{FieldPrefix: "X_"}})

	res, err := c.Convert(testReport())
	require.NoError(t, err)
	assert.Equal(t, units.Point, res.TargetUnit)
}

func TestConvert_NilReport(t *testing.T) {
	c := New(DefaultOptions())

	_, err := c.Convert(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil report")
}
