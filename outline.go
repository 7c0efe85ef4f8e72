// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package outline extracts a structured document outline — a title plus an
// ordered, leveled list of headings — from PDF files.
//
// Two pipelines share the same hierarchy assembly. The structural pipeline
// classifies trimmed text lines by shape (numbering, capitalization,
// punctuation). When it finds nothing, the font-metric pipeline scores text
// runs by visual prominence (font size, bold, italic) instead. Both are
// heuristic; every classification function is total and never errors on
// degenerate input.
//
// PDF container parsing and content-stream decompression are delegated to
// pdfcpu; this package only interprets the decoded operator stream.
package outline

import (
	"encoding/json"
	"io"
)

// HeadingLevel ranks a heading, H1 (highest) through H4.
type HeadingLevel string

const (
	H1 HeadingLevel = "H1"
	H2 HeadingLevel = "H2"
	H3 HeadingLevel = "H3"
	H4 HeadingLevel = "H4"
)

// Heading is one entry in a document outline.
type Heading struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the extraction result: a document title and its headings in
// non-decreasing page order.
type Outline struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// WriteJSON writes o as indented JSON. This is the only persisted artifact
// of an extraction.
func (o *Outline) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}
