// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Generic words that raise a line's title score.
var titleKeywords = []string{
	"foundation", "guide", "manual", "handbook", "report", "study",
	"analysis", "overview", "introduction", "specification", "standard",
	"requirements", "proposal", "plan", "strategy", "framework",
	"methodology", "principles", "best practices", "guidelines",
}

// Phrases that mark a line as content rather than a title.
var titleContentIndicators = []string{
	"the following", "this document", "as described", "according to",
	"it is", "there are", "you will", "we recommend", "please note",
}

// selectTitle picks the document title from the first page's trimmed
// non-empty lines. It scores the first 20 candidates on position, length,
// capitalization and keywords, and never fails: the file stem (or "Untitled
// Document") is the final fallback.
func selectTitle(lines []string, fileStem string) string {
	type scoredLine struct {
		text  string
		score int
	}
	var candidates []scoredLine

	for i, line := range lines {
		if i >= 20 {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) < 5 || len(line) > 200 {
			continue
		}
		if isTitleFooterLine(line) {
			continue
		}

		score := (20 - i) / 2 // earlier is better

		if len(line) >= 20 && len(line) <= 100 {
			score += 15
		}

		words := strings.Fields(line)
		if capitalizedCount(words) > len(words)/2 && len(words) >= 2 {
			score += 20
		}
		if line == strings.ToUpper(line) && len(line) <= 80 {
			score += 10
		}

		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				score += 10
			}
		}
		for _, ind := range titleContentIndicators {
			if strings.Contains(lower, ind) {
				score -= 20
				break
			}
		}
		if strings.HasSuffix(line, ".") && len(words) > 8 {
			score -= 10
		}

		if score > 0 {
			candidates = append(candidates, scoredLine{line, score})
		}
	}

	// stable: ties keep the earlier line
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > 0 {
		return candidates[0].text
	}

	// fallback: first substantial capitalized line
	for i, line := range lines {
		if i >= 15 {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) > 10 && len(line) < 150 && !isTitleFooterLine(line) {
			if r, _ := utf8.DecodeRuneInString(line); unicode.IsUpper(r) {
				return line
			}
		}
	}

	return fallbackTitle(fileStem)
}

// fallbackTitle is the terminal title fallback chain.
func fallbackTitle(fileStem string) string {
	if fileStem != "" {
		return fileStem
	}
	return "Untitled Document"
}

// isTitleFooterLine rejects footers, links, contact lines and TOC labels
// outright, before scoring.
func isTitleFooterLine(line string) bool {
	if strings.HasPrefix(line, "Page ") {
		return true
	}
	if strings.Contains(line, "http") || strings.Contains(line, "www.") ||
		strings.Contains(line, "@") || strings.Contains(line, "©") {
		return true
	}
	return strings.Contains(strings.ToLower(line), "table of contents")
}
