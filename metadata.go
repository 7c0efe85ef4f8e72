// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Meta holds the document information dictionary fields alongside the
// page count. Absent entries are empty strings.
type Meta struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Subject      string `json:"subject"`
	Keywords     string `json:"keywords"`
	Creator      string `json:"creator"`
	Producer     string `json:"producer"`
	CreationDate string `json:"creation_date"`
	ModDate      string `json:"mod_date"`
	PageCount    int    `json:"page_count"`
}

// Metadata returns the document information dictionary. A document with no
// Info dict yields a Meta with only the page count set.
func (d *Document) Metadata() *Meta {
	m := &Meta{PageCount: d.NumPages()}

	xref := d.ctx.XRefTable
	if xref.Info == nil {
		return m
	}
	info, err := xref.DereferenceDict(*xref.Info)
	if err != nil || info == nil {
		return m
	}

	m.Title = infoString(info, "Title")
	m.Author = infoString(info, "Author")
	m.Subject = infoString(info, "Subject")
	m.Keywords = infoString(info, "Keywords")
	m.Creator = infoString(info, "Creator")
	m.Producer = infoString(info, "Producer")
	m.CreationDate = infoString(info, "CreationDate")
	m.ModDate = infoString(info, "ModDate")
	return m
}

// infoString decodes one Info dict entry, handling both literal and hex
// string encodings.
func infoString(d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}
	switch v := obj.(type) {
	case types.StringLiteral:
		s, err := types.StringLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	case types.HexLiteral:
		s, err := types.HexLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	default:
		return ""
	}
}

// Metadata extracts a document's metadata and writes it to w as indented
// JSON.
func (p *processor) Metadata(ctx context.Context, path string, w io.Writer) error {
	if err := p.acquireSlot(ctx); err != nil {
		return err
	}
	defer p.sem.Release(1)

	doc, err := OpenDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc.Metadata())
}
