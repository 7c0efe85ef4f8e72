// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Substrings that mark a line as boilerplate rather than a heading: URLs,
// contact lines, copyright footers and front/back-matter section labels.
var excludedMarkers = []string{
	"www.", "http", "@", "©", "copyright",
	"table of contents", "index", "references", "bibliography",
	"acknowledgments", "acknowledgements", "preface", "foreword",
}

// Phrases that only occur inside running prose.
var prosePhrases = []string{
	"the following", "as mentioned", "according to", "it should be noted",
	"please refer", "see section", "as shown in", "this chapter",
	"in this document", "the purpose of", "it is important",
}

// A line ending on one of these is a sentence fragment continued on the
// next line.
var danglingEndings = []string{
	",", "and", "or", "the", "of", "in", "to", "for", "with",
}

// isExcludedText reports whether a line is structurally incapable of being a
// heading. It runs before every structural classification attempt and after
// font-metric candidate selection.
func isExcludedText(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range excludedMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	// mostly numbers, dates or special characters
	total := utf8.RuneCountInString(line)
	if total > 0 {
		nonAlpha := 0
		for _, r := range line {
			if !unicode.IsLetter(r) {
				nonAlpha++
			}
		}
		if float64(nonAlpha)/float64(total) > 0.7 {
			return true
		}
	}

	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return true
	}

	// short fragments that look like page numbers or footers
	if len(trimmed) < 20 {
		digits := countDigits(line)
		if strings.HasPrefix(lower, "page ") ||
			strings.Contains(lower, "chapter ") ||
			digits > len(line)/3 {
			return true
		}
	}

	// monetary amounts and measurements
	if strings.ContainsAny(line, "$€£") && countDigits(line) > 2 {
		return true
	}

	for _, p := range prosePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}

	for _, s := range danglingEndings {
		if strings.HasSuffix(line, s) {
			return true
		}
	}

	// continuation text starts lowercase, unless parenthesized
	if r, _ := utf8.DecodeRuneInString(line); unicode.IsLower(r) &&
		!strings.HasPrefix(line, "(") && !strings.HasPrefix(line, "[") {
		return true
	}

	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// isLineIsolated reports whether the lines immediately before and after
// index i are blank or absent. With pre-filtered non-empty lines this holds
// only at page boundaries, which keeps the all-caps rule selective.
func isLineIsolated(i int, lines []string) bool {
	blankBefore := i == 0 || strings.TrimSpace(lines[i-1]) == ""
	blankAfter := i >= len(lines)-1 || strings.TrimSpace(lines[i+1]) == ""
	return blankBefore && blankAfter
}

// hasFollowingContent reports whether the next line reads like body text:
// non-empty, longer than 20 characters and starting lowercase. That supports
// a colon-heading reading of the current line.
func hasFollowingContent(i int, lines []string) bool {
	if i+1 >= len(lines) {
		return false
	}
	next := strings.TrimSpace(lines[i+1])
	if next == "" || len(next) <= 20 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLower(r)
}

var headingStopWords = map[string]bool{
	"The": true, "And": true, "For": true, "With": true, "From": true,
	"That": true, "This": true, "Into": true, "Upon": true,
}

// hasMeaningfulWords requires at least half the words to be substantial
// (longer than three characters and not a stop word).
func hasMeaningfulWords(words []string) bool {
	meaningful := 0
	for _, w := range words {
		if len(w) > 3 && !headingStopWords[w] {
			meaningful++
		}
	}
	return meaningful >= len(words)/2
}
