// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package expr

import (
	"fmt"
	"strings"
)

// literalKeyword extracts a lowercased interval keyword from a quoted
// literal argument. Dynamic (non-literal) intervals cannot be dispatched
// at translation time.
func literalKeyword(arg string) (string, bool) {
	s := strings.TrimSpace(arg)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return strings.ToLower(s[1 : len(s)-1]), true
	}
	return "", false
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return args[i]
	}
	return fallback
}

// keepCall re-emits a call this pass could not expand.
func keepCall(word string, args []string) string {
	return word + "(" + strings.Join(args, ", ") + ")"
}

// expandDatePart dispatches on the interval keyword to one of several
// target expressions. Week numbering and day-of-year only approximate the
// source semantics, so those intervals always warn.
func expandDatePart(word string, args []string, st *state) string {
	kw, ok := literalKeyword(argOr(args, 0, ""))
	if !ok {
		st.warnf("%s interval is not a literal; call left unchanged for manual translation", word)
		st.needsReview = true
		return keepCall(word, args)
	}
	date := argOr(args, 1, "NULL")
	if len(args) > 2 {
		st.warnf("%s first-day-of-week argument is ignored", word)
	}

	switch kw {
	case "yyyy":
		return fmt.Sprintf("EXTRACT(YEAR FROM %s)", date)
	case "q":
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'Q'))", date)
	case "m":
		return fmt.Sprintf("EXTRACT(MONTH FROM %s)", date)
	case "y":
		st.warnf("%s(\"y\") day-of-year numbering approximates the source semantics; verify boundary days", word)
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'DDD'))", date)
	case "d":
		return fmt.Sprintf("EXTRACT(DAY FROM %s)", date)
	case "w":
		st.warnf("%s(\"w\") weekday numbering depends on the session territory; verify the first day of week", word)
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'D'))", date)
	case "ww":
		st.warnf("%s(\"ww\") week numbering approximates the source semantics; verify year boundaries", word)
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'WW'))", date)
	case "h":
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'HH24'))", date)
	case "n":
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'MI'))", date)
	case "s":
		return fmt.Sprintf("TO_NUMBER(TO_CHAR(%s, 'SS'))", date)
	default:
		st.warnf("%s interval %q is not supported; call left unchanged for manual translation", word, kw)
		st.needsReview = true
		return keepCall(word, args)
	}
}

// expandDateAdd rewrites interval arithmetic. Month-based intervals use
// ADD_MONTHS; day and sub-day intervals use date arithmetic in days.
func expandDateAdd(word string, args []string, st *state) string {
	kw, ok := literalKeyword(argOr(args, 0, ""))
	if !ok {
		st.warnf("%s interval is not a literal; call left unchanged for manual translation", word)
		st.needsReview = true
		return keepCall(word, args)
	}
	n := argOr(args, 1, "0")
	date := argOr(args, 2, "NULL")

	switch kw {
	case "yyyy":
		return fmt.Sprintf("ADD_MONTHS(%s, 12 * (%s))", date, n)
	case "q":
		return fmt.Sprintf("ADD_MONTHS(%s, 3 * (%s))", date, n)
	case "m":
		return fmt.Sprintf("ADD_MONTHS(%s, %s)", date, n)
	case "d", "y", "w":
		return fmt.Sprintf("(%s + (%s))", date, n)
	case "ww":
		return fmt.Sprintf("(%s + 7 * (%s))", date, n)
	case "h":
		return fmt.Sprintf("(%s + (%s) / 24)", date, n)
	case "n":
		return fmt.Sprintf("(%s + (%s) / 1440)", date, n)
	case "s":
		return fmt.Sprintf("(%s + (%s) / 86400)", date, n)
	default:
		st.warnf("%s interval %q is not supported; call left unchanged for manual translation", word, kw)
		st.needsReview = true
		return keepCall(word, args)
	}
}

// expandDateDiff rewrites interval differences between two dates.
func expandDateDiff(word string, args []string, st *state) string {
	kw, ok := literalKeyword(argOr(args, 0, ""))
	if !ok {
		st.warnf("%s interval is not a literal; call left unchanged for manual translation", word)
		st.needsReview = true
		return keepCall(word, args)
	}
	from := argOr(args, 1, "NULL")
	to := argOr(args, 2, "NULL")
	if len(args) > 3 {
		st.warnf("%s first-day-of-week argument is ignored", word)
	}

	switch kw {
	case "yyyy":
		return fmt.Sprintf("(EXTRACT(YEAR FROM %s) - EXTRACT(YEAR FROM %s))", to, from)
	case "q":
		return fmt.Sprintf(
			"((EXTRACT(YEAR FROM %[1]s) - EXTRACT(YEAR FROM %[2]s)) * 4 + TO_NUMBER(TO_CHAR(%[1]s, 'Q')) - TO_NUMBER(TO_CHAR(%[2]s, 'Q')))",
			to, from)
	case "m":
		return fmt.Sprintf("TRUNC(MONTHS_BETWEEN(%s, %s))", to, from)
	case "d", "y":
		return fmt.Sprintf("(TRUNC(%s) - TRUNC(%s))", to, from)
	case "w", "ww":
		st.warnf("%s(%q) week difference approximates the source semantics; verify week boundaries", word, kw)
		return fmt.Sprintf("TRUNC((TRUNC(%s) - TRUNC(%s)) / 7)", to, from)
	case "h":
		return fmt.Sprintf("TRUNC((%s - %s) * 24)", to, from)
	case "n":
		return fmt.Sprintf("TRUNC((%s - %s) * 1440)", to, from)
	case "s":
		return fmt.Sprintf("TRUNC((%s - %s) * 86400)", to, from)
	default:
		st.warnf("%s interval %q is not supported; call left unchanged for manual translation", word, kw)
		st.needsReview = true
		return keepCall(word, args)
	}
}

// expandRunningTotal approximates a running total with a windowed
// aggregate. Exact semantics cannot be guaranteed, so it always warns.
func expandRunningTotal(args []string, st *state) string {
	st.warnf("running total approximated with a windowed aggregate; verify row ordering and reset semantics")
	value := argOr(args, 0, "NULL")
	return fmt.Sprintf("SUM(%s) OVER (ORDER BY ROWNUM)", value)
}
