// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuppressTrigger_NamingAndShape(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.SuppressTrigger(seq, "Amount", "{A} > 0")
	require.NoError(t, err)

	assert.Equal(t, "FT_AMOUNT_1", trg.Name)
	assert.Equal(t, KindSuppress, trg.Kind)
	assert.True(t, trg.Success)
	assert.False(t, trg.Placeholder)
	assert.Equal(t, []string{"A"}, trg.Columns)
	assert.Contains(t, trg.Code, "function FT_AMOUNT_1 return BOOLEAN is")
	assert.Contains(t, trg.Code, "if (:A > 0) then")
	assert.Contains(t, trg.Code, "return (FALSE);")
	assert.Contains(t, trg.Code, "return (TRUE);")
}

func TestSuppressTrigger_SequenceDeterminism(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	first, err := tr.SuppressTrigger(seq, "Amount", "{A} > 0")
	require.NoError(t, err)
	second, err := tr.SuppressTrigger(seq, "Amount", "{A} > 0")
	require.NoError(t, err)

	assert.Equal(t, "FT_AMOUNT_1", first.Name)
	assert.Equal(t, "FT_AMOUNT_2", second.Name)

	seq.Reset()
	again, err := tr.SuppressTrigger(seq, "Amount", "{A} > 0")
	require.NoError(t, err)
	assert.Equal(t, first.Name, again.Name)
	assert.Equal(t, first.Code, again.Code)
}

func TestSuppressTrigger_EmptyCondition(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.SuppressTrigger(seq, "Page Footer", "  ")
	require.NoError(t, err)

	assert.True(t, trg.Success)
	assert.Equal(t, "FT_PAGE_FOOTER_1", trg.Name)
	require.Len(t, trg.Warnings, 1)
	assert.Contains(t, trg.Warnings[0], "condition is empty")
	assert.Contains(t, trg.Code, "if (FALSE) then")
}

func TestFormatTrigger_Kind(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.FormatTrigger(seq, "Amount", "{A} < 0")
	require.NoError(t, err)

	assert.Equal(t, KindConditionalFormat, trg.Kind)
	assert.Contains(t, trg.Code, "if (:A < 0) then")
}

func TestFlagTrigger_ZeroAndBlank(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.FlagTrigger(seq, "Amount", true, true)
	require.NoError(t, err)

	assert.True(t, trg.Success)
	assert.Equal(t, "FT_AMOUNT_1", trg.Name)
	assert.Contains(t, trg.Code, "(:AMOUNT = 0) OR ((:AMOUNT IS NULL) OR :AMOUNT = '')")
}

func TestFlagTrigger_ZeroOnly(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.FlagTrigger(seq, "Amount", true, false)
	require.NoError(t, err)

	assert.Contains(t, trg.Code, "if ((:AMOUNT = 0)) then")
	assert.NotContains(t, trg.Code, "IS NULL")
}

func TestSuppressTrigger_PlaceholderPolicy(t *testing.T) {
	tr := newTestTranslator()
	seq := &TriggerSeq{}

	trg, err := tr.SuppressTrigger(seq, "Amount", "Weird({A})")
	require.NoError(t, err)

	assert.True(t, trg.Success)
	assert.True(t, trg.Placeholder)
	assert.Contains(t, trg.Code, "TODO: manual translation required")
	assert.Contains(t, trg.Code, "source: Weird({A})")
	assert.Contains(t, trg.Code, "return (TRUE);")
}

func TestSuppressTrigger_SkipPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicySkip
	tr := New(cfg)
	seq := &TriggerSeq{}

	trg, err := tr.SuppressTrigger(seq, "Amount", "Weird({A})")
	require.NoError(t, err)

	assert.False(t, trg.Success)
	assert.Empty(t, trg.Code)
	assert.NotEmpty(t, trg.Warnings)
}

func TestSuppressTrigger_FailPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyFail
	tr := New(cfg)
	seq := &TriggerSeq{}

	_, err := tr.SuppressTrigger(seq, "Amount", "Weird({A})")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}
