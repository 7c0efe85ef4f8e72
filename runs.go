// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"strings"
)

// A TextRun is one shown string together with the font state active when it
// was shown. Runs are transient: they exist only during one extraction pass
// and are consumed entirely by the font-metric classifier.
type TextRun struct {
	Text     string
	Size     float64
	Page     int
	FontName string
	Bold     bool
	Italic   bool
}

// defaultFontSize applies until the first Tf operator on a page.
const defaultFontSize = 12.0

// buildRuns walks one page's operations and emits a TextRun per text-showing
// operator. Font state resets at the start of every page. fontNames maps Tf
// resource names to BaseFont names; unmapped resources keep their resource
// name, which still carries style markers in many generators.
func buildRuns(ops []Operation, page int, fontNames map[string]string) []TextRun {
	size := defaultFontSize
	fontName := ""
	var runs []TextRun

	emit := func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		bold, italic := fontStyle(fontName)
		runs = append(runs, TextRun{
			Text:     text,
			Size:     size,
			Page:     page,
			FontName: fontName,
			Bold:     bold,
			Italic:   italic,
		})
	}

	for _, op := range ops {
		switch op.Op {
		case "Tf":
			if len(op.Args) != 2 || op.Args[0].Kind() != Name {
				continue
			}
			res := op.Args[0].Name()
			if base, ok := fontNames[res]; ok && base != "" {
				fontName = base
			} else {
				fontName = res
			}
			// a non-numeric size operand leaves the size unchanged
			if k := op.Args[1].Kind(); k == Integer || k == Real {
				size = op.Args[1].Float64()
			}
		case "Tj", "'":
			if len(op.Args) == 0 {
				continue
			}
			emit(decodeShownText(op.Args[len(op.Args)-1]))
		case "\"":
			if len(op.Args) != 3 {
				continue
			}
			emit(decodeShownText(op.Args[2]))
		case "TJ":
			if len(op.Args) != 1 || op.Args[0].Kind() != Array {
				continue
			}
			arr := op.Args[0]
			var b strings.Builder
			for i := 0; i < arr.Len(); i++ {
				// numeric elements are inter-glyph spacing
				if el := arr.Index(i); el.Kind() == String {
					b.WriteString(decodeShownText(el))
				}
			}
			emit(b.String())
		}
	}
	return runs
}

// decodeShownText lossily decodes a string operand to UTF-8. Operands of any
// other type yield no text.
func decodeShownText(v Value) string {
	if v.Kind() != String {
		return ""
	}
	return strings.ToValidUTF8(v.RawString(), "�")
}

// textFromOperations flattens a page's operations into newline-separated
// text. Positioning operators become line breaks, which is the best line
// structure recoverable without layout analysis.
func textFromOperations(ops []Operation) string {
	var b strings.Builder
	last := byte('\n')
	write := func(s string) {
		if s == "" {
			return
		}
		b.WriteString(s)
		last = s[len(s)-1]
	}
	newline := func() {
		if last != '\n' {
			b.WriteByte('\n')
			last = '\n'
		}
	}

	for _, op := range ops {
		switch op.Op {
		case "BT", "ET", "T*", "Td", "TD", "Tm":
			newline()
		case "Tj":
			if len(op.Args) == 1 {
				write(decodeShownText(op.Args[0]))
			}
		case "'":
			if len(op.Args) == 1 {
				newline()
				write(decodeShownText(op.Args[0]))
			}
		case "\"":
			if len(op.Args) == 3 {
				newline()
				write(decodeShownText(op.Args[2]))
			}
		case "TJ":
			if len(op.Args) != 1 {
				continue
			}
			arr := op.Args[0]
			for i := 0; i < arr.Len(); i++ {
				if el := arr.Index(i); el.Kind() == String {
					write(decodeShownText(el))
				}
			}
		}
	}
	return b.String()
}

var boldMarkers = []string{"bold", "black", "heavy", "extrabold", "semibold"}

var italicMarkers = []string{"italic", "oblique"}

// fontStyle infers bold/italic from a font name such as
// "Helvetica-BoldOblique" or "NotoSans-SemiBold".
func fontStyle(name string) (bold, italic bool) {
	lower := strings.ToLower(name)
	for _, m := range boldMarkers {
		if strings.Contains(lower, m) {
			bold = true
			break
		}
	}
	for _, m := range italicMarkers {
		if strings.Contains(lower, m) {
			italic = true
			break
		}
	}
	return bold, italic
}
