// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/sassoftware/pdf-outline/logger"
)

// Document is an open PDF file. It exposes the narrow surface the
// classification engine consumes: page count, decoded content-stream
// operations per page, derived page text, and the file stem used as the
// title fallback. Container parsing is delegated to pdfcpu.
type Document struct {
	ctx  *model.Context
	file *os.File
	path string
}

// OpenDocument loads and validates a PDF. A failure here is fatal for the
// document as a whole; per-page decode failures are surfaced later, page by
// page, through PageOperations.
func OpenDocument(path string) (*Document, error) {
	logger.Debug(fmt.Sprintf("Opening document: path=%s", path), true)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read pdf %s: %w", path, err)
	}

	logger.Debug(fmt.Sprintf("Document opened: path=%s pages=%d", path, ctx.PageCount), true)
	return &Document{ctx: ctx, file: f, path: path}, nil
}

// Close releases the underlying file. The Document must stay open while
// pages are being read; pdfcpu loads stream data lazily.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the page count. Pages are addressed 1-indexed.
func (d *Document) NumPages() int {
	return d.ctx.PageCount
}

// FileStem returns the document's file name without directory or extension.
func (d *Document) FileStem() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageOperations returns the decoded content-stream operations for the given
// 1-indexed page. The caller decides whether a failure is fatal (strict) or
// means the page contributes nothing (best-effort).
func (d *Document) PageOperations(pageNr int) ([]Operation, error) {
	r, err := pdfcpu.ExtractPageContent(d.ctx, pageNr)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", pageNr, err)
	}
	if r == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", pageNr, err)
	}
	logger.Debug(fmt.Sprintf("Decoded page content: page=%d bytes=%d", pageNr, len(data)), true)
	return parseContent(data), nil
}

// PageText returns the page's text with positioning operators rendered as
// line breaks.
func (d *Document) PageText(pageNr int) (string, error) {
	ops, err := d.PageOperations(pageNr)
	if err != nil {
		return "", err
	}
	return textFromOperations(ops), nil
}

// Text returns the whole document's text with pages separated by form feeds.
// Pages that fail to decode contribute nothing.
func (d *Document) Text() string {
	return pagesText(d)
}

func pagesText(src pageSource) string {
	parts := make([]string, 0, src.NumPages())
	for pageNr := 1; pageNr <= src.NumPages(); pageNr++ {
		text, err := src.PageText(pageNr)
		if err != nil {
			logger.Debug(fmt.Sprintf("Skipping undecodable page: page=%d err=%v", pageNr, err), true)
			text = ""
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\f")
}

// pageFontNames maps font resource names (as referenced by Tf operators) to
// BaseFont names for the given page, using pdfcpu's optimization tables.
// Unresolvable resources are simply absent; the run builder then falls back
// to the resource name itself.
func (d *Document) pageFontNames(pageNr int) map[string]string {
	names := make(map[string]string)
	opt := d.ctx.Optimize
	if opt == nil || pageNr < 1 || pageNr > len(opt.PageFonts) {
		return names
	}
	for objNr, used := range opt.PageFonts[pageNr-1] {
		if !used {
			continue
		}
		fo, ok := opt.FontObjects[objNr]
		if !ok || fo == nil {
			continue
		}
		for _, res := range fo.ResourceNames {
			names[res] = fo.FontName
		}
	}
	return names
}
