// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeadingCandidate is an intermediate font-metric result. Confidence is
// carried only here; it is dropped when a candidate becomes a Heading.
type HeadingCandidate struct {
	Text       string
	Level      HeadingLevel
	Page       int
	Confidence float64
}

// Phrases that mark a large-type run as prose (pull quotes, callouts,
// contract boilerplate) rather than a heading.
var headingProsePhrases = []string{
	"it is expected", "must be completed", "will be issued",
	"in accordance with", "is subject to", "shall be",
}

// fallbackHeadingSize applies when a document uses fewer than two distinct
// run sizes and no relative threshold can be derived.
const fallbackHeadingSize = 14.0

// headingSizeThreshold returns the second-largest distinct run size. Runs
// at or below it are body text regardless of absolute size; anything larger
// is visually prominent within this document.
func headingSizeThreshold(runs []TextRun) float64 {
	var largest, second float64
	for _, run := range runs {
		switch {
		case run.Size > largest:
			largest, second = run.Size, largest
		case run.Size < largest && run.Size > second:
			second = run.Size
		}
	}
	if second == 0 {
		return fallbackHeadingSize
	}
	return second
}

// scoreRun ranks a run by visual prominence. Runs at or below the document's
// size threshold score 0.1 with no level and never survive the confidence
// gate.
func scoreRun(run TextRun, sizeThreshold float64) (HeadingLevel, float64) {
	var level HeadingLevel
	var conf float64
	switch {
	case run.Size <= sizeThreshold:
		level, conf = "", 0.1
	case run.Size > 15:
		level, conf = H1, 0.9
	case run.Size > 12:
		level, conf = H2, 0.8
	case run.Size > 10:
		level, conf = H3, 0.6
	default:
		level, conf = "", 0.1
	}
	if run.Bold {
		conf += 0.15
	}
	if run.Italic {
		conf += 0.05
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return level, conf
}

// isPlausibleHeading applies shape checks independent of font metrics so
// that a big bold paragraph opener does not become a heading.
func isPlausibleHeading(text string) bool {
	if len(text) < 4 || len(text) > 100 {
		return false
	}
	words := strings.Fields(text)
	if strings.HasSuffix(text, ".") && len(words) > 8 {
		return false
	}
	if len(words) > 12 {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range headingProsePhrases {
		if strings.Contains(lower, p) {
			return false
		}
	}
	r, _ := utf8.DecodeRuneInString(text)
	if unicode.IsLower(r) {
		return false
	}
	if unicode.IsDigit(r) && len(words) > 6 {
		return false
	}
	return true
}

// classifyRuns scores every run against the document-wide size threshold,
// keeps plausible candidates above the confidence threshold, truncates to
// the maxHeadings most confident, and returns them as Headings in page
// order. Runs are grouped by (page, trimmed text) first so the same visible
// line is not scored twice.
func classifyRuns(runs []TextRun, threshold float64, maxHeadings int) []Heading {
	sizeThreshold := headingSizeThreshold(runs)
	type lineKey struct {
		page int
		text string
	}
	seen := make(map[lineKey]bool)

	var candidates []HeadingCandidate
	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if len(text) <= 3 || len(text) > 150 {
			continue
		}
		k := lineKey{run.Page, text}
		if seen[k] {
			continue
		}
		seen[k] = true

		level, conf := scoreRun(run, sizeThreshold)
		if level == "" || conf <= threshold {
			continue
		}
		if !isPlausibleHeading(text) {
			continue
		}
		candidates = append(candidates, HeadingCandidate{
			Text:       text,
			Level:      level,
			Page:       run.Page,
			Confidence: conf,
		})
	}

	// keep the most confident candidates, then restore page order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if len(candidates) > maxHeadings {
		candidates = candidates[:maxHeadings]
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Page < candidates[j].Page
	})

	var headings []Heading
	for _, c := range candidates {
		if isExcludedText(c.Text) {
			continue
		}
		headings = append(headings, Heading{Level: c.Level, Text: cleanHeadingText(c.Text), Page: c.Page})
	}
	return headings
}
