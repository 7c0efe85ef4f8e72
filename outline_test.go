// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline_WriteJSON(t *testing.T) {
	o := &Outline{
		Title: "Annual Report",
		Outline: []Heading{
			{Level: H1, Text: "Introduction", Page: 1},
			{Level: H2, Text: "Scope & Limits", Page: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, o.WriteJSON(&buf))

	var decoded Outline
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *o, decoded)

	// HTML escaping is off, ampersands pass through
	assert.Contains(t, buf.String(), "Scope & Limits")
	// indented output
	assert.Contains(t, buf.String(), "\n  \"title\"")
}

func TestOutline_WriteJSON_EmptyOutline(t *testing.T) {
	o := &Outline{Title: "Empty Doc", Outline: []Heading{}}

	var buf bytes.Buffer
	require.NoError(t, o.WriteJSON(&buf))

	// an empty outline serializes as [], never null
	assert.Contains(t, buf.String(), `"outline": []`)
}
