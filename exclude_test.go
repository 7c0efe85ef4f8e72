// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcludedText(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		excluded bool
	}{
		{"url", "Visit www.example.com for details", true},
		{"email", "Contact support@example.com", true},
		{"copyright footer", "© 2024 Example Corp", true},
		{"toc label", "Table of Contents", true},
		{"references label", "References", true},
		{"mostly digits", "2024-01-15 12:30:45", true},
		{"too short", "Hi", true},
		{"page footer", "Page 12 of 30", true},
		{"short numeric fragment", "Fig 3.1a 2024", true},
		{"currency", "Total cost: $1,250", true},
		{"prose phrase", "As mentioned above, The Results Were Good", true},
		{"dangling comma", "Analysis of the data,", true},
		{"dangling conjunction", "Measuring Outcomes and", true},
		{"lowercase start", "continuation of a previous sentence", true},

		{"plain heading", "Methodology Overview", false},
		{"parenthesized start", "(Optional) Installation Steps", false},
		{"normal sentence-cased line", "Security Considerations For Deployment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.excluded, isExcludedText(tt.line))
		})
	}
}

func TestIsLineIsolated(t *testing.T) {
	lines := []string{"HEADING ONE", "body text", "middle", "last"}

	assert.True(t, isLineIsolated(0, []string{"only"}))
	assert.True(t, isLineIsolated(3, lines))  // nothing after
	assert.False(t, isLineIsolated(1, lines)) // surrounded
	assert.False(t, isLineIsolated(0, lines)) // non-blank follower
}

func TestHasFollowingContent(t *testing.T) {
	lines := []string{
		"Scope of Work:",
		"this section describes the work to be performed in detail",
	}
	assert.True(t, hasFollowingContent(0, lines))

	assert.False(t, hasFollowingContent(1, lines)) // no next line
	assert.False(t, hasFollowingContent(0, []string{"Scope:", "short"}))
	assert.False(t, hasFollowingContent(0, []string{"Scope:", "Capitalized continuation text over twenty chars"}))
}

func TestHasMeaningfulWords(t *testing.T) {
	assert.True(t, hasMeaningfulWords([]string{"System", "Architecture", "Overview"}))
	assert.False(t, hasMeaningfulWords([]string{"The", "And", "For"}))
	assert.True(t, hasMeaningfulWords([]string{"The", "Final", "Report"}))
}
