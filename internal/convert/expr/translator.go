// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package expr rewrites source formula-language expressions into target
// program-unit code. The translator is a fixed-order sequence of
// whole-string rewrite passes; pass order is a hard contract because a
// later, more general pass must never re-match text an earlier pass
// produced or protected.
package expr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/typemap"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// ErrUnsupported is returned under PolicyFail when an expression would
// otherwise need a placeholder.
var ErrUnsupported = errors.New("expression requires manual translation")

// Policy selects what a translation needing manual follow-up produces.
type Policy string

const (
	// PolicyPlaceholder emits a stub function documenting the original
	// text and the failure reasons. The default.
	PolicyPlaceholder Policy = "placeholder"
	// PolicySkip reports the expression as failed without emitting code.
	PolicySkip Policy = "skip"
	// PolicyFail returns a hard error for the one affected expression.
	PolicyFail Policy = "fail"
)

// Known reports whether p is one of the declared policies.
func (p Policy) Known() bool {
	switch p {
	case PolicyPlaceholder, PolicySkip, PolicyFail:
		return true
	default:
		return false
	}
}

// Config carries the identifier prefixes and the failure policy for one
// Translator.
type Config struct {
	FormulaPrefix   string
	ParameterPrefix string
	TriggerPrefix   string
	Policy          Policy
}

// DefaultConfig returns the stock configuration: CF_/P_/FT_ prefixes and
// the placeholder policy.
func DefaultConfig() Config {
	return Config{
		FormulaPrefix:   "CF_",
		ParameterPrefix: "P_",
		TriggerPrefix:   "FT_",
		Policy:          PolicyPlaceholder,
	}
}

// TranslatedExpression is the outcome of translating one expression.
// Placeholder means the translation needs manual follow-up and a stub was
// emitted instead of aborting; it is the canonical partial-success state
// and never a fatal error by itself.
type TranslatedExpression struct {
	SourceName  string
	TargetName  string
	Code        string
	ReturnType  string
	Success     bool
	Placeholder bool
	Warnings    []string
	Columns     []string
}

// Translator rewrites expressions for one report run. It tracks assigned
// target names for collision avoidance, so callers must use one Translator
// per report (or call Reset between reports) to keep output reproducible.
// It is not safe for concurrent use.
type Translator struct {
	cfg      Config
	assigned map[string]string
	taken    map[string]bool
}

// New returns a Translator for one report run.
func New(cfg Config) *Translator {
	if cfg.Policy == "" {
		cfg.Policy = PolicyPlaceholder
	}
	t := &Translator{cfg: cfg}
	t.Reset()
	return t
}

// Reset clears the per-run target-name registry.
func (t *Translator) Reset() {
	t.assigned = make(map[string]string)
	t.taken = make(map[string]bool)
}

// TargetName derives the program-unit name for a source formula name:
// configured prefix plus the sanitized name. The same source name always
// yields the same target; distinct names that sanitize identically get
// numeric suffixes in encounter order.
func (t *Translator) TargetName(name string) string {
	if tn, ok := t.assigned[name]; ok {
		return tn
	}
	id := sanitizeIdent(name)
	if id == "" {
		id = "EXPR"
	}
	base := t.cfg.FormulaPrefix + id
	tn := base
	for n := 2; t.taken[tn]; n++ {
		tn = fmt.Sprintf("%s_%d", base, n)
	}
	t.assigned[name] = tn
	t.taken[tn] = true
	return tn
}

// ParameterName derives the bind name for a source parameter: configured
// prefix plus the sanitized name. Unlike TargetName it is a pure
// derivation with no collision registry, matching how parameter
// references rewrite inside expressions.
func (t *Translator) ParameterName(name string) string {
	id := sanitizeIdent(strings.TrimSpace(name))
	if id == "" {
		id = "PARAM"
	}
	return t.cfg.ParameterPrefix + id
}

// Translate rewrites one named expression with the declared return type.
// It never fails for malformed input: the returned error is non-nil only
// under PolicyFail, and every other failure mode is reported through the
// Success and Placeholder flags, so one bad formula cannot abort
// whole-document generation.
func (t *Translator) Translate(name, text string, ret rpt.ValueKind) (TranslatedExpression, error) {
	retType := typemap.MapType(ret, nil).Name
	out := TranslatedExpression{
		SourceName: name,
		TargetName: t.TargetName(name),
		ReturnType: retType,
	}

	if strings.TrimSpace(text) == "" {
		out.Success = true
		out.Warnings = []string{"expression is empty; generated a NULL body"}
		out.Code = wrapFunction(out.TargetName, retType, "NULL", safeDefault(retType))
		return out, nil
	}

	st := newState(text)
	t.runPasses(st)

	out.Warnings = st.warnings
	out.Columns = st.columnList()

	switch v, err := t.verdict(st, name); {
	case err != nil:
		return out, err
	case v == verdictSkip:
		return out, nil
	case v == verdictStub:
		out.Success = true
		out.Placeholder = true
		out.Code = placeholderFunction(out.TargetName, retType, safeDefault(retType), text, st.warnings)
		return out, nil
	}

	out.Success = true
	out.Code = wrapFunction(out.TargetName, retType, st.code, safeDefault(retType))
	return out, nil
}

// runPasses applies the rewrite pipeline in its contractual order: the
// reference passes run before the function pass so brace content is never
// mistaken for a call, and the conditional pass runs after the function
// pass so rewritten arguments survive inside CASE branches.
func (t *Translator) runPasses(st *state) {
	t.passFieldRefs(st)
	t.passFormulaRefs(st)
	t.passParameterRefs(st)
	passOperators(st)
	t.passFunctions(st)
	passConditionals(st)
	passCleanup(st)
}

type verdictKind int

const (
	verdictOK verdictKind = iota
	verdictStub
	verdictSkip
)

// verdict applies the failure policy to an expression's final state.
func (t *Translator) verdict(st *state, what string) (verdictKind, error) {
	if t.cfg.Policy == PolicyFail && (st.needsReview || st.arityMismatch) {
		return verdictSkip, fmt.Errorf("%w: %s: %s", ErrUnsupported, what, strings.Join(st.warnings, "; "))
	}
	if !st.needsReview {
		return verdictOK, nil
	}
	if t.cfg.Policy == PolicySkip {
		return verdictSkip, nil
	}
	return verdictStub, nil
}

// state carries one expression through the pipeline. Every pass is a
// function over this explicit intermediate value, so each can be tested
// on its own.
type state struct {
	code          string
	warnings      []string
	columns       map[string]struct{}
	needsReview   bool
	arityMismatch bool
}

func newState(code string) *state {
	return &state{code: code, columns: make(map[string]struct{})}
}

func (st *state) warnf(format string, args ...any) {
	st.warnings = append(st.warnings, fmt.Sprintf(format, args...))
}

func (st *state) refColumn(name string) {
	st.columns[name] = struct{}{}
}

func (st *state) columnList() []string {
	if len(st.columns) == 0 {
		return nil
	}
	out := make([]string, 0, len(st.columns))
	for c := range st.columns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// wrapFunction renders the standard program-unit wrapper: a function with
// the mapped return type, a body returning the rewritten expression, and
// a catch-all handler returning a safe default so a runtime error in one
// formula cannot abort the whole report.
func wrapFunction(name, returnType, body, fallback string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s return %s is\n", name, returnType)
	b.WriteString("begin\n")
	fmt.Fprintf(&b, "  return (%s);\n", body)
	b.WriteString("exception\n")
	b.WriteString("  when others then\n")
	fmt.Fprintf(&b, "    return (%s);\n", fallback)
	b.WriteString("end;")
	return b.String()
}

// placeholderFunction renders the manual-follow-up stub: the original
// text and failure reasons preserved as comments over a safe constant
// return.
func placeholderFunction(name, returnType, fallback, original string, reasons []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s return %s is\n", name, returnType)
	b.WriteString("begin\n")
	b.WriteString("  -- TODO: manual translation required\n")
	for _, r := range reasons {
		fmt.Fprintf(&b, "  -- reason: %s\n", r)
	}
	for _, line := range strings.Split(original, "\n") {
		fmt.Fprintf(&b, "  -- source: %s\n", line)
	}
	fmt.Fprintf(&b, "  return (%s);\n", fallback)
	b.WriteString("end;")
	return b.String()
}

// safeDefault is the value the catch-all handler returns for a given
// return type.
func safeDefault(returnType string) string {
	if returnType == "BOOLEAN" {
		return "FALSE"
	}
	return "NULL"
}

// sanitizeIdent uppercases a source name into a target identifier:
// alphanumeric runs joined by underscores, clipped to the platform's
// 30-character identifier limit.
func sanitizeIdent(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	id := strings.ToUpper(strings.Join(parts, "_"))
	if id == "" {
		return ""
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "N" + id
	}
	if r := []rune(id); len(r) > 30 {
		id = string(r[:30])
	}
	return id
}

// Ident sanitizes an arbitrary source name into a target identifier,
// returning "" when nothing survives sanitization.
func Ident(name string) string {
	return sanitizeIdent(name)
}

// BindName normalizes a reference to its bound identifier: optional @/?
// marker stripped, the last dot-segment taken, uppercased with spaces
// collapsed to underscores.
func BindName(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "@")
	ref = strings.TrimPrefix(ref, "?")
	if i := strings.LastIndex(ref, "."); i >= 0 {
		ref = ref[i+1:]
	}
	return sanitizeIdent(ref)
}

// NormalizeSource resolves a field's source reference text — {table.col},
// {@Formula}, {?Param}, or a bare name — to its normalized identifier.
func NormalizeSource(source string) string {
	s := strings.TrimSpace(source)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return BindName(s)
}
