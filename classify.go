// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Heading shape patterns, compiled once at startup. They never change at
// runtime.
var (
	// Multi-level decimals ("1.", "9.1 Scope"), bare integers with content,
	// 1-2 letter enumerators ("A. Background", "b) Goals") and roman
	// numerals ("IV. Scope").
	numberedHeadingPattern = regexp.MustCompile(`^\s*(?:(?:(?:\d+\.)+\d*|\d+)[.)]?\s+.+|[A-Za-z]{1,2}[.)]\s+.+|[IVXLCDM]+[.)]?\s+.+)`)

	sectionHeadingPattern  = regexp.MustCompile(`^\s*(Chapter|Section|Part)\s+[A-Z0-9]+`)
	appendixHeadingPattern = regexp.MustCompile(`^\s*Appendix\s+[A-Z0-9]+`)

	// leading enumerator stripped during cleaning
	leadingNumberingPattern = regexp.MustCompile(`^(?:(?:\d+\.)*\d+[.)]?|[A-Za-z]{1,2}[.)]|[IVXLCDM]+[.)])\s+`)

	trailingPageNumberPattern = regexp.MustCompile(`\s+\d{1,3}$`)
	dottedLeadersPattern      = regexp.MustCompile(`\s*\.{3,}\s*\d*$`)
)

// Keywords that pin a title-case heading to a level.
var (
	h1Keywords = []string{
		"introduction", "overview", "summary", "conclusion", "background",
		"methodology", "results", "discussion", "abstract", "executive summary",
	}
	h2Keywords = []string{
		"objectives", "requirements", "scope", "limitations", "assumptions",
		"definitions", "terminology", "approach", "process", "procedure",
	}
)

// analyzeLine classifies a single line within its page context. Rules apply
// in strict priority order; the first match wins. Returns false when the
// line is not a heading.
func analyzeLine(line string, index int, lines []string, page int) (Heading, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 3 || len(line) > 150 {
		return Heading{}, false
	}
	if isExcludedText(line) {
		return Heading{}, false
	}

	// 1. numbered headings, e.g. "1.2 Introduction"
	if numberedHeadingPattern.MatchString(line) {
		return Heading{Level: numberedLevel(line), Text: cleanHeadingText(line), Page: page}, true
	}

	// 2. explicit section markers, e.g. "Chapter 1: Implementation"
	if sectionHeadingPattern.MatchString(line) {
		return Heading{Level: H1, Text: cleanHeadingText(line), Page: page}, true
	}

	// 3. appendix markers, e.g. "Appendix A: Test Procedures"
	if appendixHeadingPattern.MatchString(line) {
		return Heading{Level: H1, Text: cleanHeadingText(line), Page: page}, true
	}

	// 4. isolated all-caps lines
	if line == strings.ToUpper(line) && len(line) > 5 {
		wc := len(strings.Fields(line))
		if wc >= 2 && wc <= 8 && isLineIsolated(index, lines) {
			return Heading{Level: H1, Text: cleanHeadingText(line), Page: page}, true
		}
	}

	// 5. colon-terminated section indicators
	if strings.HasSuffix(line, ":") && !strings.HasSuffix(line, "::") {
		wc := len(strings.Fields(line))
		if wc >= 2 && wc <= 10 && len(line) >= 8 && len(line) <= 80 &&
			(isLineIsolated(index, lines) || hasFollowingContent(index, lines)) {
			return Heading{Level: H2, Text: cleanHeadingText(line), Page: page}, true
		}
	}

	// 6. title case, very selective
	words := strings.Fields(line)
	if len(words) >= 2 && len(words) <= 8 {
		caps := capitalizedCount(words)
		if caps >= len(words)-1 && caps >= 2 &&
			len(line) >= 10 && len(line) <= 80 &&
			isLineIsolated(index, lines) && hasMeaningfulWords(words) {
			return Heading{Level: keywordLevel(line), Text: cleanHeadingText(line), Page: page}, true
		}
	}

	return Heading{}, false
}

// numberedLevel maps numbering depth to a rank: "9" and "9." are H1, "9.1"
// is H2, "9.1.1" is H3, anything deeper is H4. Alpha and roman enumerators
// carry no dots and rank H1.
func numberedLevel(line string) HeadingLevel {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return H1
	}
	token := fields[0]
	switch strings.Count(token, ".") {
	case 0:
		return H1
	case 1:
		if strings.HasSuffix(token, ".") {
			return H1
		}
		return H2
	case 2:
		return H3
	default:
		return H4
	}
}

// keywordLevel decides the rank of a title-case heading by content: major
// section words rank H1, subsection words H2, everything else defaults H2.
func keywordLevel(line string) HeadingLevel {
	lower := strings.ToLower(line)
	for _, kw := range h1Keywords {
		if strings.Contains(lower, kw) {
			return H1
		}
	}
	for _, kw := range h2Keywords {
		if strings.Contains(lower, kw) {
			return H2
		}
	}
	return H2
}

// cleanHeadingText normalizes heading text: trims, strips one trailing
// colon, a leading enumerator, a trailing page-number suffix ("Introduction
// 5") and dotted leaders ("Introduction .......... 5"), then collapses
// internal whitespace.
func cleanHeadingText(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, ":") {
		text = strings.TrimSpace(strings.TrimSuffix(text, ":"))
	}
	if stripped := leadingNumberingPattern.ReplaceAllString(text, ""); stripped != "" {
		text = stripped
	}
	text = trailingPageNumberPattern.ReplaceAllString(text, "")
	text = dottedLeadersPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

func capitalizedCount(words []string) int {
	n := 0
	for _, w := range words {
		if r, _ := utf8.DecodeRuneInString(w); unicode.IsUpper(r) {
			n++
		}
	}
	return n
}
