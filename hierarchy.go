// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"sort"
	"strings"
)

// normalizeHeadingText lowercases and strips ASCII digits, dots and colons
// so that numbering variants of the same heading compare equal
// ("2.1 Scope:" and "Scope" normalize identically).
func normalizeHeadingText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= '0' && r <= '9') || r == '.' || r == ':' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// assembleHierarchy removes near-duplicate headings and orders the
// survivors by page. Two headings are near-duplicates when their normalized
// texts are equal, non-empty and longer than five characters; the first
// occurrence wins. The page sort is stable so same-page headings keep their
// classification order. Levels stand as assigned by the classifiers.
func assembleHierarchy(headings []Heading) []Heading {
	seen := make(map[string]bool)
	unique := make([]Heading, 0, len(headings))
	for _, h := range headings {
		norm := normalizeHeadingText(h.Text)
		if len(norm) > 5 {
			if seen[norm] {
				continue
			}
			seen[norm] = true
		}
		unique = append(unique, h)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Page < unique[j].Page
	})
	return unique
}
