// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

func newTestTranslator() *Translator {
	return New(DefaultConfig())
}

func TestTranslate_FieldReferenceNormalization(t *testing.T) {
	tr := newTestTranslator()

	qualified, err := tr.Translate("a", "{orders.amount}", rpt.ValueNumber)
	require.NoError(t, err)
	bare, err := tr.Translate("b", "{AMOUNT}", rpt.ValueNumber)
	require.NoError(t, err)

	assert.Contains(t, qualified.Code, ":AMOUNT")
	assert.Contains(t, bare.Code, ":AMOUNT")
	assert.Equal(t, []string{"AMOUNT"}, qualified.Columns)
	assert.Equal(t, []string{"AMOUNT"}, bare.Columns)
}

func TestTranslate_SimpleArithmetic(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("Gross Margin", "{orders.amount} - {orders.cost}", rpt.ValueCurrency)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Placeholder)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "CF_GROSS_MARGIN", res.TargetName)
	assert.Equal(t, "NUMBER", res.ReturnType)
	assert.Equal(t, []string{"AMOUNT", "COST"}, res.Columns)
	assert.Contains(t, res.Code, "function CF_GROSS_MARGIN return NUMBER is")
	assert.Contains(t, res.Code, "return (:AMOUNT - :COST);")
	assert.Contains(t, res.Code, "when others then")
	assert.Contains(t, res.Code, "return (NULL);")
}

func TestTranslate_OperatorCaseInsensitivity(t *testing.T) {
	tr := newTestTranslator()

	variants := []string{"{A} AND {B}", "{A} and {B}", "{A} And {B}"}
	var bodies []string
	for i, v := range variants {
		res, err := tr.Translate(string(rune('a'+i)), v, rpt.ValueBoolean)
		require.NoError(t, err)
		body := strings.TrimPrefix(res.Code, "function "+res.TargetName)
		bodies = append(bodies, body)
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.Contains(t, bodies[0], ":A AND :B")
}

func TestTranslate_ConcatGuard(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("c", `{A} && {B} & "x"`, rpt.ValueString)
	require.NoError(t, err)

	assert.Contains(t, res.Code, ":A && :B || 'x'")
}

func TestTranslate_WordOperators(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("m", "{A} mod 2 = 0 or not ({B} > 1)", rpt.ValueBoolean)
	require.NoError(t, err)

	assert.Contains(t, res.Code, ":A MOD 2 = 0 OR NOT (:B > 1)")
}

func TestTranslate_NestedConditionalCollapse(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("status", "IIF({A}>1,'X',IIF({B}>2,'Y','Z'))", rpt.ValueString)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2, strings.Count(res.Code, "WHEN"), "code: %s", res.Code)
	assert.Equal(t, 2, strings.Count(res.Code, "CASE"))
	assert.Contains(t, res.Code, "CASE WHEN :A>1 THEN 'X' ELSE CASE WHEN :B>2 THEN 'Y' ELSE 'Z' END END")
}

func TestTranslate_EmptyExpression(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("blank", "", rpt.ValueString)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Placeholder)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Code, "return (NULL);")
}

func TestTranslate_FormulaAndParameterReferences(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("combo", `{@Gross Margin} * 2 + @Tax - {?Rate} * ?Discount`, rpt.ValueNumber)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.Code, "CF_GROSS_MARGIN() * 2")
	assert.Contains(t, res.Code, "CF_TAX()")
	assert.Contains(t, res.Code, ":P_RATE")
	assert.Contains(t, res.Code, ":P_DISCOUNT")
	assert.Equal(t, []string{"P_DISCOUNT", "P_RATE"}, res.Columns)
}

func TestTranslate_CommentAndQuoteCleanup(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("label", "{A} & \" units\" // trailing note\n", rpt.ValueString)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Contains(t, res.Code, ":A || ' units'")
	assert.NotContains(t, res.Code, "//")
	assert.NotContains(t, res.Code, "trailing note")
}

func TestTranslate_LiteralsAreProtected(t *testing.T) {
	tr := newTestTranslator()

	// Braces, operators, and comment markers inside string literals must
	// survive every pass untouched.
	res, err := tr.Translate("lit", `"{A} and B // &" & {C}`, rpt.ValueString)
	require.NoError(t, err)

	assert.Contains(t, res.Code, "'{A} and B // &' || :C")
	assert.Equal(t, []string{"C"}, res.Columns)
}

func TestTranslate_BooleanSafeDefault(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("flag", "{A} > 0", rpt.ValueBoolean)
	require.NoError(t, err)

	assert.Equal(t, "BOOLEAN", res.ReturnType)
	assert.Contains(t, res.Code, "return (FALSE);")
}

func TestTargetName_CollisionAvoidance(t *testing.T) {
	tr := newTestTranslator()

	first := tr.TargetName("Gross Margin")
	second := tr.TargetName("gross.margin")
	again := tr.TargetName("Gross Margin")

	assert.Equal(t, "CF_GROSS_MARGIN", first)
	assert.Equal(t, "CF_GROSS_MARGIN_2", second)
	assert.Equal(t, first, again)

	tr.Reset()
	assert.Equal(t, "CF_GROSS_MARGIN", tr.TargetName("gross.margin"))
}

func TestTranslate_PolicyPlaceholder(t *testing.T) {
	tr := newTestTranslator()

	res, err := tr.Translate("bad", "Foo({A})", rpt.ValueNumber)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, res.Placeholder)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "unknown function Foo")
	assert.Contains(t, res.Code, "TODO: manual translation required")
	assert.Contains(t, res.Code, "source: Foo({A})")
	assert.Contains(t, res.Code, "return (NULL);")
}

func TestTranslate_PolicySkip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicySkip
	tr := New(cfg)

	res, err := tr.Translate("bad", "Foo({A})", rpt.ValueNumber)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.False(t, res.Placeholder)
	assert.Empty(t, res.Code)
	assert.NotEmpty(t, res.Warnings)
}

func TestTranslate_PolicyFail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyFail
	tr := New(cfg)

	res, err := tr.Translate("bad", "Foo({A})", rpt.ValueNumber)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, res.Success)
}

func TestBindName(t *testing.T) {
	assert.Equal(t, "AMOUNT", BindName("orders.amount"))
	assert.Equal(t, "AMOUNT", BindName("AMOUNT"))
	assert.Equal(t, "SHIP_DATE", BindName("orders.Ship Date"))
	assert.Equal(t, "GROSS_MARGIN", BindName("@Gross Margin"))
	assert.Equal(t, "REGION", BindName("?Region"))
}

func TestParameterName(t *testing.T) {
	tr := newTestTranslator()

	assert.Equal(t, "P_REGION", tr.ParameterName("Region"))
	assert.Equal(t, "P_START_DATE", tr.ParameterName("Start Date"))
	assert.Equal(t, "P_PARAM", tr.ParameterName("  "))
}

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, "AMOUNT", NormalizeSource("{orders.amount}"))
	assert.Equal(t, "GROSS_MARGIN", NormalizeSource("{@Gross Margin}"))
	assert.Equal(t, "REGION", NormalizeSource("{?Region}"))
	assert.Equal(t, "PAGE_NUMBER", NormalizeSource("Page Number"))
}
