// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rdfxml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

func convertedReport(t *testing.T) *convert.Result {
	t.Helper()

	rep := &rpt.Report{
		Name:       "orders",
		Title:      "Orders by Region",
		PageWidth:  12240,
		PageHeight: 15840,
		Unit:       "twip",
		Sections: []rpt.Section{
			{Name: "GH1", Role: rpt.RoleGroupHeader, GroupIndex: 1, Height: 240,
				Fields: []rpt.Field{
					{Name: "Region", Source: "{customers.region}", Kind: rpt.KindColumn},
				}},
			{Name: "Details", Role: rpt.RoleDetail, Height: 240,
				Fields: []rpt.Field{
					{Name: "Amount", Source: "{orders.amount}", Kind: rpt.KindColumn,
						ValueType: rpt.ValueCurrency,
						Format:    rpt.Format{Mask: "$#,##0.00", SuppressIfZero: true}},
				}},
		},
		Groups: []rpt.Group{
			{Name: "Region", FieldName: "{customers.region}"},
		},
		Formulas: []rpt.Formula{
			{Name: "Gross Margin", Text: "{orders.amount} - {orders.cost}", ReturnType: rpt.ValueCurrency},
		},
	}

	res, err := convert.New(convert.DefaultOptions()).Convert(rep)
	require.NoError(t, err)
	return res
}

// parsedFrame mirrors the emitted frame elements for round-trip checks.
type parsedFrame struct {
	Name      string        `xml:"name,attr"`
	Kind      string        `xml:"kind,attr"`
	Source    string        `xml:"source,attr"`
	Frames    []parsedFrame `xml:"frame"`
	Repeating []parsedFrame `xml:"repeatingFrame"`
}

type parsedDocument struct {
	XMLName xml.Name `xml:"report"`
	Name    string   `xml:"name,attr"`
	Unit    string   `xml:"unit,attr"`
	Layout  struct {
		Frame parsedFrame `xml:"frame"`
	} `xml:"layout"`
	Functions []struct {
		Name string `xml:"name,attr"`
		Kind string `xml:"kind,attr"`
		Code string `xml:",cdata"`
	} `xml:"programUnits>function"`
}

func TestEmit_ParseableDocument(t *testing.T) {
	data, err := New().Emit(convertedReport(t))
	require.NoError(t, err)

	var doc parsedDocument
	require.NoError(t, xml.Unmarshal(data, &doc))

	assert.Equal(t, "orders", doc.Name)
	assert.Equal(t, "point", doc.Unit)
	assert.Equal(t, "margin", doc.Layout.Frame.Kind)
}

func TestEmit_FrameNestingFollowsGroupOrder(t *testing.T) {
	data, err := New().Emit(convertedReport(t))
	require.NoError(t, err)

	var doc parsedDocument
	require.NoError(t, xml.Unmarshal(data, &doc))

	// margin -> body -> repeating(Region) -> repeating(DETAIL)
	var body *parsedFrame
	for i := range doc.Layout.Frame.Frames {
		if doc.Layout.Frame.Frames[i].Kind == "body" {
			body = &doc.Layout.Frame.Frames[i]
		}
	}
	require.NotNil(t, body)

	require.Len(t, body.Repeating, 1)
	region := body.Repeating[0]
	assert.Equal(t, "G_REGION", region.Source)

	require.Len(t, region.Repeating, 1)
	assert.Equal(t, "DETAIL", region.Repeating[0].Source)
	assert.Empty(t, region.Repeating[0].Repeating)
}

func TestEmit_ProgramUnits(t *testing.T) {
	data, err := New().Emit(convertedReport(t))
	require.NoError(t, err)

	var doc parsedDocument
	require.NoError(t, xml.Unmarshal(data, &doc))

	require.Len(t, doc.Functions, 2)
	assert.Equal(t, "CF_GROSS_MARGIN", doc.Functions[0].Name)
	assert.Equal(t, "formula", doc.Functions[0].Kind)
	assert.Contains(t, doc.Functions[0].Code, "function CF_GROSS_MARGIN return NUMBER")
	assert.Equal(t, "FT_AMOUNT_1", doc.Functions[1].Name)
	assert.Equal(t, "trigger", doc.Functions[1].Kind)
}

func TestEmit_Header(t *testing.T) {
	data, err := New().Emit(convertedReport(t))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, xml.Header))
	assert.Contains(t, text, "DO NOT EDIT")
}

func TestEmit_EmptyResult(t *testing.T) {
	_, err := New().Emit(nil)
	assert.Error(t, err)

	_, err = New().Emit(&convert.Result{})
	assert.Error(t, err)
}
