// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeadingText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.1 Scope:", "scope"},
		{"Scope", "scope"},
		{"3.4.5 Data Handling", "data handling"},
		{"Introduction", "introduction"},
		{"9.9.9", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeadingText(tt.in), tt.in)
	}
}

func TestAssembleHierarchy_DeduplicatesAndSorts(t *testing.T) {
	in := []Heading{
		{Level: H2, Text: "Data Handling", Page: 4},
		{Level: H1, Text: "Introduction", Page: 1},
		{Level: H3, Text: "2.1 Data Handling", Page: 7}, // near-duplicate, first wins
		{Level: H1, Text: "Conclusion", Page: 9},
	}

	out := assembleHierarchy(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Introduction", out[0].Text)
	assert.Equal(t, 1, out[0].Page)
	assert.Equal(t, "Data Handling", out[1].Text)
	assert.Equal(t, H2, out[1].Level)
	assert.Equal(t, "Conclusion", out[2].Text)
}

func TestAssembleHierarchy_ShortTextsNeverDeduplicate(t *testing.T) {
	in := []Heading{
		{Level: H2, Text: "Scope", Page: 2},
		{Level: H2, Text: "Scope", Page: 5},
	}

	// "scope" normalizes to 5 characters, below the dedup cutoff
	out := assembleHierarchy(in)
	require.Len(t, out, 2)
}

func TestAssembleHierarchy_StableWithinPage(t *testing.T) {
	in := []Heading{
		{Level: H1, Text: "Results Overview", Page: 2},
		{Level: H2, Text: "Detailed Findings", Page: 2},
		{Level: H1, Text: "Front Matter", Page: 1},
	}

	out := assembleHierarchy(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Front Matter", out[0].Text)
	assert.Equal(t, "Results Overview", out[1].Text)
	assert.Equal(t, "Detailed Findings", out[2].Text)
}

func TestAssembleHierarchy_Empty(t *testing.T) {
	assert.Empty(t, assembleHierarchy(nil))
}
