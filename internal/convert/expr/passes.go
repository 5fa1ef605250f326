// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"regexp"
	"strings"
)

var (
	fieldRefPattern      = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_. ]*)\}`)
	bracedFormulaPattern = regexp.MustCompile(`\{@([^{}]+)\}`)
	bareFormulaPattern   = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)`)
	bracedParamPattern   = regexp.MustCompile(`\{\?([^{}]+)\}`)
	bareParamPattern     = regexp.MustCompile(`\?([A-Za-z_][A-Za-z0-9_]*)`)
	wordOperatorPattern  = regexp.MustCompile(`(?i)\b(and|or|not|mod)\b`)
	wsPattern            = regexp.MustCompile(`\s+`)
)

// passFieldRefs rewrites {column} and {table.column} references to bind
// variables on the last dot-segment. Formula (@) and parameter (?)
// references never match here: the pattern requires an identifier start.
func (t *Translator) passFieldRefs(st *state) {
	st.code = mapUnquoted(st.code, func(s string) string {
		return fieldRefPattern.ReplaceAllStringFunc(s, func(m string) string {
			name := BindName(m[1 : len(m)-1])
			if name == "" {
				return m
			}
			st.refColumn(name)
			return ":" + name
		})
	})
}

// passFormulaRefs rewrites @Name and {@Name} references to zero-argument
// calls of the formula's derived target name.
func (t *Translator) passFormulaRefs(st *state) {
	st.code = mapUnquoted(st.code, func(s string) string {
		s = bracedFormulaPattern.ReplaceAllStringFunc(s, func(m string) string {
			return t.formulaCall(m[2 : len(m)-1])
		})
		return bareFormulaPattern.ReplaceAllStringFunc(s, func(m string) string {
			return t.formulaCall(m[1:])
		})
	})
}

func (t *Translator) formulaCall(name string) string {
	return t.TargetName(strings.TrimSpace(name)) + "()"
}

// passParameterRefs rewrites ?Name and {?Name} references to prefixed
// bind variables.
func (t *Translator) passParameterRefs(st *state) {
	st.code = mapUnquoted(st.code, func(s string) string {
		s = bracedParamPattern.ReplaceAllStringFunc(s, func(m string) string {
			return t.paramBind(st, m[2:len(m)-1])
		})
		return bareParamPattern.ReplaceAllStringFunc(s, func(m string) string {
			return t.paramBind(st, m[1:])
		})
	})
}

func (t *Translator) paramBind(st *state, name string) string {
	bind := t.ParameterName(name)
	st.refColumn(bind)
	return ":" + bind
}

// passOperators maps the word operators to target keywords and the
// string-concatenation symbol to ||. A doubled symbol is a symbolic
// logical AND and passes through untouched.
func passOperators(st *state) {
	st.code = mapUnquoted(st.code, func(s string) string {
		s = wordOperatorPattern.ReplaceAllStringFunc(s, strings.ToUpper)
		return replaceConcat(s)
	})
}

func replaceConcat(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '&' {
			b.WriteString("&&")
			i++
			continue
		}
		b.WriteString("||")
	}
	return b.String()
}

// passCleanup strips source line comments, converts double-quoted string
// literals to the target quoting style, and collapses whitespace outside
// literals.
func passCleanup(st *state) {
	code := stripLineComments(st.code)
	code = requoteStrings(code)
	code = mapUnquoted(code, func(s string) string {
		return wsPattern.ReplaceAllString(s, " ")
	})
	st.code = strings.TrimSpace(code)
}

func stripLineComments(code string) string {
	var b strings.Builder
	for i := 0; i < len(code); {
		c := code[i]
		if c == '\'' || c == '"' {
			j := closeQuote(code, i)
			b.WriteString(code[i:j])
			i = j
			continue
		}
		if c == '/' && i+1 < len(code) && code[i+1] == '/' {
			for i < len(code) && code[i] != '\n' {
				i++
			}
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func requoteStrings(code string) string {
	var b strings.Builder
	for i := 0; i < len(code); {
		c := code[i]
		if c == '\'' {
			j := closeQuote(code, i)
			b.WriteString(code[i:j])
			i = j
			continue
		}
		if c == '"' {
			j := closeQuote(code, i)
			inner := code[i+1 : j]
			inner = strings.TrimSuffix(inner, `"`)
			inner = strings.ReplaceAll(inner, `""`, `"`)
			inner = strings.ReplaceAll(inner, `'`, `''`)
			b.WriteString("'" + inner + "'")
			i = j
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// mapUnquoted applies f to the stretches of code outside string literals,
// so braces, operators, and comment markers inside literals are never
// rewritten. Both source quoting styles are respected.
func mapUnquoted(code string, f func(string) string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(code); {
		c := code[i]
		if c == '\'' || c == '"' {
			b.WriteString(f(code[start:i]))
			j := closeQuote(code, i)
			b.WriteString(code[i:j])
			i = j
			start = i
			continue
		}
		i++
	}
	b.WriteString(f(code[start:]))
	return b.String()
}

// closeQuote returns the index just past the literal opened at i. Doubled
// quote characters escape themselves inside a literal. An unterminated
// literal runs to the end of the code.
func closeQuote(code string, i int) int {
	q := code[i]
	for j := i + 1; j < len(code); j++ {
		if code[j] == q {
			if j+1 < len(code) && code[j+1] == q {
				j++
				continue
			}
			return j + 1
		}
	}
	return len(code)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
