// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"fmt"
	"strings"
)

// TriggerKind classifies generated visibility and formatting rules.
type TriggerKind string

const (
	KindSuppress          TriggerKind = "suppress"
	KindConditionalFormat TriggerKind = "conditional_format"
)

// Trigger is a generated boolean program unit implementing one suppress
// or conditional-format rule. Success and Placeholder mirror
// TranslatedExpression so callers can account for every attempt.
type Trigger struct {
	Name        string
	Kind        TriggerKind
	Condition   string
	Code        string
	Success     bool
	Placeholder bool
	Warnings    []string
	Columns     []string
}

// TriggerSeq numbers triggers within one report run. Names stay unique
// and reproducible only when callers use one TriggerSeq per report and
// reset it before reuse. It is not safe for concurrent use; concurrent
// report runs need one TriggerSeq each.
type TriggerSeq struct {
	n int
}

// Reset rewinds the sequence for the next report.
func (s *TriggerSeq) Reset() { s.n = 0 }

func (s *TriggerSeq) next() int {
	s.n++
	return s.n
}

// SuppressTrigger builds the trigger hiding an object while condition
// holds. The generated function returns FALSE to suppress printing.
func (t *Translator) SuppressTrigger(seq *TriggerSeq, objectName, condition string) (Trigger, error) {
	return t.buildTrigger(seq, KindSuppress, objectName, condition)
}

// FormatTrigger builds the trigger for a conditional-format rule. The
// generated code has the same shape as a suppress trigger; the kind tells
// the document emitter which attribute the trigger binds to.
func (t *Translator) FormatTrigger(seq *TriggerSeq, objectName, condition string) (Trigger, error) {
	return t.buildTrigger(seq, KindConditionalFormat, objectName, condition)
}

// FlagCondition synthesizes the source-language condition for the
// suppress-if-zero and suppress-if-blank format flags, checked against
// the field's own bound name and OR-combined. It returns "" when neither
// flag is set, so callers can merge it with an explicit condition.
func FlagCondition(fieldName string, ifZero, ifBlank bool) string {
	ref := "{" + fieldName + "}"
	var checks []string
	if ifZero {
		checks = append(checks, fmt.Sprintf("(%s = 0)", ref))
	}
	if ifBlank {
		checks = append(checks, fmt.Sprintf(`(IsNull(%s) or %s = "")`, ref, ref))
	}
	return strings.Join(checks, " or ")
}

// FlagTrigger builds the suppress trigger for the suppress-if-zero and
// suppress-if-blank format flags. The synthesized condition runs through
// the normal pipeline.
func (t *Translator) FlagTrigger(seq *TriggerSeq, fieldName string, ifZero, ifBlank bool) (Trigger, error) {
	return t.buildTrigger(seq, KindSuppress, fieldName, FlagCondition(fieldName, ifZero, ifBlank))
}

func (t *Translator) buildTrigger(seq *TriggerSeq, kind TriggerKind, objectName, condition string) (Trigger, error) {
	id := sanitizeIdent(objectName)
	if id == "" {
		id = "OBJ"
	}
	trg := Trigger{
		Name:      fmt.Sprintf("%s%s_%d", t.cfg.TriggerPrefix, id, seq.next()),
		Kind:      kind,
		Condition: condition,
	}

	if strings.TrimSpace(condition) == "" {
		trg.Success = true
		trg.Warnings = []string{"condition is empty; object always prints"}
		trg.Code = wrapTrigger(trg.Name, "FALSE")
		return trg, nil
	}

	st := newState(condition)
	t.runPasses(st)
	trg.Warnings = st.warnings
	trg.Columns = st.columnList()

	switch v, err := t.verdict(st, "trigger "+trg.Name); {
	case err != nil:
		return trg, err
	case v == verdictSkip:
		return trg, nil
	case v == verdictStub:
		trg.Success = true
		trg.Placeholder = true
		trg.Code = placeholderFunction(trg.Name, "BOOLEAN", "TRUE", condition, st.warnings)
		return trg, nil
	}

	trg.Success = true
	trg.Code = wrapTrigger(trg.Name, st.code)
	return trg, nil
}

// wrapTrigger renders the boolean program unit: the object prints only
// while the rewritten condition is false, and any runtime error resolves
// to printing so a broken rule can never hide data.
func wrapTrigger(name, condition string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s return BOOLEAN is\n", name)
	b.WriteString("begin\n")
	fmt.Fprintf(&b, "  if (%s) then\n", condition)
	b.WriteString("    return (FALSE);\n")
	b.WriteString("  end if;\n")
	b.WriteString("  return (TRUE);\n")
	b.WriteString("exception\n")
	b.WriteString("  when others then\n")
	b.WriteString("    return (TRUE);\n")
	b.WriteString("end;")
	return b.String()
}
