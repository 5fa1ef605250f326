// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"regexp"
	"strconv"
	"strings"
)

// templateKind says how a recognized function call is rewritten.
type templateKind int

const (
	// kindRename keeps the argument list and swaps the function name.
	kindRename templateKind = iota
	// kindTemplate substitutes arguments into $n slots of a fixed target
	// expression.
	kindTemplate
	// kindDatePart, kindDateAdd, and kindDateDiff dispatch on the
	// interval-keyword argument.
	kindDatePart
	kindDateAdd
	kindDateDiff
	// kindRunningTotal approximates with a windowed aggregate.
	kindRunningTotal
	// kindConditional re-emits the call for the conditional pass after
	// rewriting its arguments.
	kindConditional
	// kindUnsupported has no safe mapping; the call is left untouched
	// and flagged for manual follow-up.
	kindUnsupported
)

// funcSpec describes one recognized source function: its arity range and
// how its call sites rewrite. The table is closed; calls resolving to no
// spec are flagged for manual follow-up.
type funcSpec struct {
	minArgs int
	maxArgs int
	kind    templateKind
	target  string
}

// functionTable is keyed by the lowercased source function name.
var functionTable = map[string]funcSpec{
	// strings
	"ucase":           {1, 1, kindRename, "UPPER"},
	"uppercase":       {1, 1, kindRename, "UPPER"},
	"lcase":           {1, 1, kindRename, "LOWER"},
	"lowercase":       {1, 1, kindRename, "LOWER"},
	"propercase":      {1, 1, kindRename, "INITCAP"},
	"trim":            {1, 1, kindRename, "TRIM"},
	"trimleft":        {1, 1, kindRename, "LTRIM"},
	"trimright":       {1, 1, kindRename, "RTRIM"},
	"ltrim":           {1, 1, kindRename, "LTRIM"},
	"rtrim":           {1, 1, kindRename, "RTRIM"},
	"left":            {2, 2, kindTemplate, "SUBSTR($1, 1, $2)"},
	"right":           {2, 2, kindTemplate, "SUBSTR($1, -($2))"},
	"mid":             {2, 3, kindRename, "SUBSTR"},
	"length":          {1, 1, kindRename, "LENGTH"},
	"len":             {1, 1, kindRename, "LENGTH"},
	"instr":           {2, 3, kindRename, "INSTR"},
	"strcmp":          {2, 2, kindTemplate, "(CASE WHEN $1 < $2 THEN -1 WHEN $1 > $2 THEN 1 ELSE 0 END)"},
	"replace":         {3, 3, kindRename, "REPLACE"},
	"replicatestring": {2, 2, kindTemplate, "RPAD($1, LENGTH($1) * ($2), $1)"},
	"space":           {1, 1, kindTemplate, "RPAD(' ', $1)"},
	"chr":             {1, 1, kindRename, "CHR"},
	"chrw":            {1, 1, kindRename, "CHR"},
	"asc":             {1, 1, kindRename, "ASCII"},
	"strreverse":      {1, 1, kindRename, "REVERSE"},

	// conversions
	"totext":    {1, 3, kindRename, "TO_CHAR"},
	"cstr":      {1, 2, kindRename, "TO_CHAR"},
	"tonumber":  {1, 1, kindRename, "TO_NUMBER"},
	"cdbl":      {1, 1, kindRename, "TO_NUMBER"},
	"val":       {1, 1, kindRename, "TO_NUMBER"},
	"cdate":     {1, 2, kindRename, "TO_DATE"},
	"datevalue": {1, 2, kindRename, "TO_DATE"},
	"date":      {3, 3, kindTemplate, "TO_DATE($1 || '-' || $2 || '-' || $3, 'YYYY-MM-DD')"},
	"dateserial": {3, 3, kindTemplate,
		"TO_DATE($1 || '-' || $2 || '-' || $3, 'YYYY-MM-DD')"},

	// numbers
	"abs":       {1, 1, kindRename, "ABS"},
	"round":     {1, 2, kindRename, "ROUND"},
	"roundup":   {1, 1, kindRename, "CEIL"},
	"truncate":  {1, 2, kindRename, "TRUNC"},
	"int":       {1, 1, kindRename, "FLOOR"},
	"floor":     {1, 1, kindRename, "FLOOR"},
	"ceiling":   {1, 1, kindRename, "CEIL"},
	"sqr":       {1, 1, kindRename, "SQRT"},
	"sgn":       {1, 1, kindRename, "SIGN"},
	"exp":       {1, 1, kindRename, "EXP"},
	"log":       {1, 1, kindRename, "LN"},
	"sin":       {1, 1, kindRename, "SIN"},
	"cos":       {1, 1, kindRename, "COS"},
	"tan":       {1, 1, kindRename, "TAN"},
	"atn":       {1, 1, kindRename, "ATAN"},
	"remainder": {2, 2, kindRename, "MOD"},
	"maximum":   {2, 9, kindRename, "GREATEST"},
	"minimum":   {2, 9, kindRename, "LEAST"},

	// null checks
	"isnull": {1, 1, kindTemplate, "($1 IS NULL)"},

	// dates and times
	"currentdate":     {0, 0, kindTemplate, "TRUNC(SYSDATE)"},
	"today":           {0, 0, kindTemplate, "TRUNC(SYSDATE)"},
	"currentdatetime": {0, 0, kindTemplate, "SYSDATE"},
	"currenttime":     {0, 0, kindTemplate, "SYSDATE"},
	"now":             {0, 0, kindTemplate, "SYSDATE"},
	"year":            {1, 1, kindTemplate, "EXTRACT(YEAR FROM $1)"},
	"month":           {1, 1, kindTemplate, "EXTRACT(MONTH FROM $1)"},
	"day":             {1, 1, kindTemplate, "EXTRACT(DAY FROM $1)"},
	"hour":            {1, 1, kindTemplate, "TO_NUMBER(TO_CHAR($1, 'HH24'))"},
	"minute":          {1, 1, kindTemplate, "TO_NUMBER(TO_CHAR($1, 'MI'))"},
	"second":          {1, 1, kindTemplate, "TO_NUMBER(TO_CHAR($1, 'SS'))"},
	"dayofweek":       {1, 1, kindTemplate, "TO_NUMBER(TO_CHAR($1, 'D'))"},
	"weekdayname":     {1, 1, kindTemplate, "TO_CHAR($1, 'DAY')"},
	"monthname":       {1, 1, kindTemplate, "TO_CHAR(TO_DATE($1, 'MM'), 'MONTH')"},
	"datepart":        {2, 3, kindDatePart, ""},
	"dateadd":         {3, 3, kindDateAdd, ""},
	"datediff":        {3, 4, kindDateDiff, ""},

	// aggregates need summary columns on the target platform and cannot
	// be rewritten inline
	"sum":           {1, 2, kindUnsupported, ""},
	"average":       {1, 2, kindUnsupported, ""},
	"count":         {1, 2, kindUnsupported, ""},
	"distinctcount": {1, 2, kindUnsupported, ""},
	"runningtotal":  {1, 3, kindRunningTotal, ""},

	// conditionals
	"iif":    {3, 3, kindConditional, ""},
	"switch": {2, 9, kindUnsupported, ""},
	"choose": {2, 9, kindUnsupported, ""},

	"towords": {1, 2, kindUnsupported, ""},
}

// passthroughWords are target keywords that may precede a parenthesis
// without being calls.
var passthroughWords = map[string]bool{
	"and": true, "or": true, "not": true, "mod": true,
	"case": true, "when": true, "then": true, "else": true, "end": true,
	"is": true, "null": true, "true": true, "false": true,
	"in": true, "between": true, "like": true,
}

var templateSlot = regexp.MustCompile(`\$[1-9]`)

// passFunctions rewrites every recognized name(args) call. Argument lists
// are split on top-level commas with a parenthesis depth counter, and each
// argument is rewritten recursively before substitution, so produced
// target text is never rescanned.
func (t *Translator) passFunctions(st *state) {
	st.code = t.rewriteCalls(st.code, st)
}

func (t *Translator) rewriteCalls(code string, st *state) string {
	var b strings.Builder
	for i := 0; i < len(code); {
		c := code[i]
		if c == '\'' || c == '"' {
			j := closeQuote(code, i)
			b.WriteString(code[i:j])
			i = j
			continue
		}
		if !isIdentStart(c) {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(code) && isIdentPart(code[j]) {
			j++
		}
		word := code[i:j]

		k := j
		for k < len(code) && (code[k] == ' ' || code[k] == '\t') {
			k++
		}
		if k >= len(code) || code[k] != '(' {
			b.WriteString(word)
			i = j
			continue
		}

		lower := strings.ToLower(word)
		if passthroughWords[lower] ||
			(t.cfg.FormulaPrefix != "" && strings.HasPrefix(word, t.cfg.FormulaPrefix)) {
			b.WriteString(word)
			i = j
			continue
		}

		end := matchParen(code, k)
		if end < 0 {
			st.warnf("unbalanced parentheses after %s", word)
			st.needsReview = true
			b.WriteString(code[i:])
			return b.String()
		}

		spec, known := functionTable[lower]
		if !known {
			st.warnf("unknown function %s; call left unchanged for manual translation", word)
			st.needsReview = true
			b.WriteString(code[i : end+1])
			i = end + 1
			continue
		}
		if spec.kind == kindUnsupported {
			st.warnf("function %s has no direct equivalent; call left unchanged for manual translation", word)
			st.needsReview = true
			b.WriteString(code[i : end+1])
			i = end + 1
			continue
		}

		args := splitArgs(code[k+1 : end])
		if len(args) < spec.minArgs || len(args) > spec.maxArgs {
			st.warnf("%s expects %s, got %d; best-effort translation",
				word, arityRange(spec), len(args))
			st.arityMismatch = true
		}
		for n := range args {
			args[n] = t.rewriteCalls(args[n], st)
		}

		b.WriteString(t.applySpec(word, spec, args, st))
		i = end + 1
	}
	return b.String()
}

func (t *Translator) applySpec(word string, spec funcSpec, args []string, st *state) string {
	switch spec.kind {
	case kindRename:
		return spec.target + "(" + strings.Join(args, ", ") + ")"
	case kindTemplate:
		return applyTemplate(spec.target, args)
	case kindDatePart:
		return expandDatePart(word, args, st)
	case kindDateAdd:
		return expandDateAdd(word, args, st)
	case kindDateDiff:
		return expandDateDiff(word, args, st)
	case kindRunningTotal:
		return expandRunningTotal(args, st)
	case kindConditional:
		return "IIF(" + strings.Join(args, ", ") + ")"
	default:
		return word + "(" + strings.Join(args, ", ") + ")"
	}
}

// applyTemplate substitutes rewritten arguments into $n slots. A missing
// argument substitutes as NULL so a mismatched call still yields
// compilable output.
func applyTemplate(template string, args []string) string {
	return templateSlot.ReplaceAllStringFunc(template, func(m string) string {
		n, _ := strconv.Atoi(m[1:])
		if n-1 < len(args) && args[n-1] != "" {
			return args[n-1]
		}
		return "NULL"
	})
}

func arityRange(spec funcSpec) string {
	if spec.minArgs == spec.maxArgs {
		return strconv.Itoa(spec.minArgs) + " arguments"
	}
	return strconv.Itoa(spec.minArgs) + ".." + strconv.Itoa(spec.maxArgs) + " arguments"
}

// splitArgs splits a call's argument text on top-level commas, respecting
// nested parentheses and string literals.
func splitArgs(inner string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\'', '"':
			i = closeQuote(inner, i) - 1
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	last := strings.TrimSpace(inner[start:])
	if last != "" || len(args) > 0 {
		args = append(args, last)
	}
	return args
}

// matchParen returns the index of the parenthesis closing the one at
// open, or -1 when unbalanced.
func matchParen(code string, open int) int {
	depth := 0
	for i := open; i < len(code); i++ {
		switch code[i] {
		case '\'', '"':
			i = closeQuote(code, i) - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
