// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"fmt"
	"strings"
)

// iifCap bounds the conditional flattening loop. Twenty nesting levels is
// far beyond anything seen in real report definitions.
const iifCap = 20

// passConditionals rewrites IIF(cond, then, else) calls into CASE
// expressions. The rewrite re-applies until no call remains, so nested
// conditionals in either branch collapse too; the iteration cap
// guarantees termination without an AST.
func passConditionals(st *state) {
	for n := 0; n < iifCap; n++ {
		rewritten, changed := rewriteFirstIIF(st.code, st)
		if !changed {
			return
		}
		st.code = rewritten
	}
	if findIIF(st.code) >= 0 {
		st.warnf("conditional nesting exceeds %d levels; flattening stopped", iifCap)
	}
}

func rewriteFirstIIF(code string, st *state) (string, bool) {
	at := findIIF(code)
	if at < 0 {
		return code, false
	}
	open := strings.IndexByte(code[at:], '(') + at
	end := matchParen(code, open)
	if end < 0 {
		st.warnf("unbalanced parentheses in conditional expression")
		st.needsReview = true
		return code, false
	}

	args := splitArgs(code[open+1 : end])
	if len(args) != 3 {
		st.warnf("IIF expects 3 arguments, got %d; best-effort translation", len(args))
		st.arityMismatch = true
	}
	repl := fmt.Sprintf("CASE WHEN %s THEN %s ELSE %s END",
		argOr(args, 0, "NULL"), argOr(args, 1, "NULL"), argOr(args, 2, "NULL"))
	return code[:at] + repl + code[end+1:], true
}

// findIIF locates the next IIF call outside string literals, matching the
// name case-insensitively on word boundaries.
func findIIF(code string) int {
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c == '\'' || c == '"' {
			i = closeQuote(code, i) - 1
			continue
		}
		if c != 'i' && c != 'I' {
			continue
		}
		if i > 0 && isIdentPart(code[i-1]) {
			continue
		}
		if i+3 > len(code) || !strings.EqualFold(code[i:i+3], "iif") {
			continue
		}
		j := i + 3
		if j < len(code) && isIdentPart(code[j]) {
			continue
		}
		for j < len(code) && (code[j] == ' ' || code[j] == '\t') {
			j++
		}
		if j < len(code) && code[j] == '(' {
			return i
		}
	}
	return -1
}
