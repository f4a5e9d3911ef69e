// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reANSI       = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Sanitize makes free text safe to echo to a terminal: escape sequences and
// control characters are removed and runs of whitespace collapse to one space.
func Sanitize(s string) string {
	out := reANSI.ReplaceAllString(s, "")
	out = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, out)
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Truncate shortens s to at most max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
