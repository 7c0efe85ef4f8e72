// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyze wraps analyzeLine with an isolated single-line context.
func analyze(t *testing.T, line string) (Heading, bool) {
	t.Helper()
	return analyzeLine(line, 0, []string{line}, 1)
}

func TestAnalyzeLine_Numbered(t *testing.T) {
	tests := []struct {
		line  string
		level HeadingLevel
		text  string
	}{
		{"1. Introduction", H1, "Introduction"},
		{"2 Related Work", H1, "Related Work"},
		{"9.1 Scope of Testing", H2, "Scope of Testing"},
		{"9.1.1 Unit Test Plan", H3, "Unit Test Plan"},
		{"9.1.1.2 Edge Cases", H4, "Edge Cases"},
		{"A. Background Material", H1, "Background Material"},
		{"B) Design Goals", H1, "Design Goals"},
		{"IV. Experimental Setup", H1, "Experimental Setup"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h, ok := analyze(t, tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.level, h.Level)
			assert.Equal(t, tt.text, h.Text)
			assert.Equal(t, 1, h.Page)
		})
	}
}

func TestAnalyzeLine_SectionAndAppendix(t *testing.T) {
	h, ok := analyze(t, "Chapter 1: Implementation Details")
	require.True(t, ok)
	assert.Equal(t, H1, h.Level)

	h, ok = analyze(t, "Appendix B: Test Procedures")
	require.True(t, ok)
	assert.Equal(t, H1, h.Level)
	assert.Equal(t, "Appendix B: Test Procedures", h.Text)
}

func TestAnalyzeLine_AllCapsIsolated(t *testing.T) {
	h, ok := analyze(t, "SYSTEM REQUIREMENTS")
	require.True(t, ok)
	assert.Equal(t, H1, h.Level)
	assert.Equal(t, "SYSTEM REQUIREMENTS", h.Text)

	// not isolated: body text directly below
	lines := []string{"SYSTEM REQUIREMENTS", "some body", "more body"}
	_, ok = analyzeLine(lines[0], 0, lines, 1)
	assert.False(t, ok)

	// single word is not enough
	_, ok = analyze(t, "REQUIREMENTS")
	assert.False(t, ok)
}

func TestAnalyzeLine_ColonTerminated(t *testing.T) {
	lines := []string{
		"Evaluation Criteria:",
		"each proposal is scored against the criteria listed below",
	}
	h, ok := analyzeLine(lines[0], 0, lines, 4)
	require.True(t, ok)
	assert.Equal(t, H2, h.Level)
	assert.Equal(t, "Evaluation Criteria", h.Text)
	assert.Equal(t, 4, h.Page)

	// double colon is not a section indicator
	_, ok = analyze(t, "std::vector usage notes:")
	assert.False(t, ok)
}

func TestAnalyzeLine_TitleCase(t *testing.T) {
	h, ok := analyze(t, "Methodology and Results")
	require.True(t, ok)
	assert.Equal(t, H1, h.Level) // "methodology" and "results" are H1 keywords

	h, ok = analyze(t, "Project Scope Definitions")
	require.True(t, ok)
	assert.Equal(t, H2, h.Level) // "scope" is an H2 keyword

	h, ok = analyze(t, "Deployment Field Notes")
	require.True(t, ok)
	assert.Equal(t, H2, h.Level) // no keyword defaults to H2
}

func TestAnalyzeLine_Rejections(t *testing.T) {
	lines := []string{
		"x",
		"this line starts lowercase and reads like prose",
		"A demonstration of extremely long heading text that runs on and on and on and keeps going well past the one hundred and fifty character upper bound for any plausible heading",
	}
	for _, l := range lines {
		_, ok := analyze(t, l)
		assert.False(t, ok, l)
	}
}

func TestNumberedLevel(t *testing.T) {
	tests := []struct {
		line  string
		level HeadingLevel
	}{
		{"3 Overview", H1},
		{"3. Overview", H1},
		{"3.2 Details", H2},
		{"3.2.1 More Details", H3},
		{"3.2.1.4 Fine Print", H4},
		{"A. Appendix Matter", H1},
		{"XII. Closing Remarks", H1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, numberedLevel(tt.line), tt.line)
	}
}

func TestCleanHeadingText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  1.2   Data   Model  ", "Data Model"},
		{"Overview:", "Overview"},
		{"Introduction .......... 5", "Introduction"},
		{"Results 42", "Results"},
		{"A) Goals", "Goals"},
		{"3.", "3."}, // enumerator with no content survives
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanHeadingText(tt.in), tt.in)
	}
}
