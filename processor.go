// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/semaphore"

	"github.com/sassoftware/pdf-outline/logger"
)

// Processor defines the contract for extracting an outline from a PDF file.
type Processor interface {
	ExtractOutline(ctx context.Context, path string) (*Outline, error)
}

// pageSource supplies the page count and per-page content the extraction
// workers consume. *Document is the production implementation.
type pageSource interface {
	NumPages() int
	PageOperations(pageNr int) ([]Operation, error)
	PageText(pageNr int) (string, error)
	pageFontNames(pageNr int) map[string]string
}

// PageData is the per-page material both classifier strategies consume:
// trimmed non-empty text lines and styled text runs. A page that failed to
// decode carries neither.
type PageData struct {
	Page  int
	Lines []string
	Runs  []TextRun
}

// ClassifierStrategy produces heading candidates from extracted pages.
// The structural strategy reads line shape; the font-metric strategy reads
// visual prominence. Both feed the same hierarchy assembly.
type ClassifierStrategy interface {
	Classify(pages []PageData, cfg *Config) []Heading
}

// StructuralStrategy classifies each line by syntax and shape: numbering,
// section markers, capitalization, punctuation.
type StructuralStrategy struct{}

func (StructuralStrategy) Classify(pages []PageData, cfg *Config) []Heading {
	type headingKey struct {
		text string
		page int
	}
	seen := make(map[headingKey]bool)
	var headings []Heading
	for _, pd := range pages {
		for i, line := range pd.Lines {
			h, ok := analyzeLine(line, i, pd.Lines, pd.Page)
			if !ok {
				continue
			}
			k := headingKey{h.Text, h.Page}
			if seen[k] {
				continue
			}
			seen[k] = true
			headings = append(headings, h)
		}
	}
	return headings
}

// FontMetricStrategy classifies text runs by font size and style. Used as
// the fallback when the structural pass finds nothing, typically on
// documents whose line structure did not survive text extraction.
type FontMetricStrategy struct{}

func (FontMetricStrategy) Classify(pages []PageData, cfg *Config) []Heading {
	var runs []TextRun
	for _, pd := range pages {
		runs = append(runs, pd.Runs...)
	}
	return classifyRuns(runs, cfg.ConfidenceThreshold, cfg.MaxHeadings)
}

// processor manages outline extraction with concurrency control and runs
// the classifier strategies in order until one produces headings.
type processor struct {
	cfg        *Config
	sem        *semaphore.Weighted
	strategies []ClassifierStrategy
}

// NewProcessor validates the config and creates a new processor.
func NewProcessor(cfg *Config) *processor {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	} else if cfg.DebugOn {
		logger.SetLogger(func(level logger.LogLevel, msg string, keyvals ...interface{}) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
		})
	}

	logger.Debug(fmt.Sprintf("Processor initialized: parsing_mode=%v max_concurrent_docs=%d max_workers_per_doc=%d confidence_threshold=%.2f",
		cfg.ParsingMode, cfg.MaxConcurrentDocs, cfg.MaxWorkersPerDoc, cfg.ConfidenceThreshold), true)

	return &processor{
		cfg:        cfg,
		sem:        semaphore.NewWeighted(int64(cfg.MaxConcurrentDocs)),
		strategies: []ClassifierStrategy{StructuralStrategy{}, FontMetricStrategy{}},
	}
}

// ExtractOutline extracts the title and heading outline of one document.
// Document-load failures are fatal; page decode failures follow the
// configured parsing mode.
func (p *processor) ExtractOutline(ctx context.Context, path string) (*Outline, error) {
	logger.Debug(fmt.Sprintf("Starting outline extraction: path=%s", path), true)

	if err := p.acquireSlot(ctx); err != nil {
		return nil, err
	}
	defer p.sem.Release(1)

	doc, err := OpenDocument(path)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open document: path=%s err=%v", path, err))
		return nil, err
	}
	defer doc.Close()

	total := doc.NumPages()
	if total == 0 {
		logger.Debug(fmt.Sprintf("No pages found: path=%s", path), true)
		return &Outline{Title: fallbackTitle(doc.FileStem()), Outline: []Heading{}}, nil
	}

	pages, err := p.extractPages(ctx, doc)
	if err != nil {
		return nil, err
	}

	var title string
	if len(pages) > 0 {
		title = selectTitle(pages[0].Lines, doc.FileStem())
	} else {
		title = fallbackTitle(doc.FileStem())
	}

	var headings []Heading
	for _, strat := range p.strategies {
		headings = assembleHierarchy(strat.Classify(pages, p.cfg))
		if len(headings) > 0 {
			break
		}
		logger.Debug(fmt.Sprintf("Strategy produced no headings, trying next: strategy=%T", strat), true)
	}
	if !p.cfg.IncludeTitleHeading {
		headings = dropTitleHeading(headings, title)
	}
	if headings == nil {
		headings = []Heading{}
	}

	logger.Debug(fmt.Sprintf("Outline extraction completed: path=%s headings=%d", path, len(headings)), true)
	return &Outline{Title: title, Outline: headings}, nil
}

// ExtractText returns a document's plain text, pages separated by form
// feeds. The result can be fed to OutlineFromText when extraction and
// classification run as separate stages.
func (p *processor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := p.acquireSlot(ctx); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	doc, err := OpenDocument(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return doc.Text(), nil
}

// WriteOutlineFile extracts the outline and writes it as JSON, the full
// content of outPath.
func (p *processor) WriteOutlineFile(ctx context.Context, path, outPath string) error {
	o, err := p.ExtractOutline(ctx, path)
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := o.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write outline: %w", err)
	}
	return f.Close()
}

// OutlineFromText runs the plain-text pipeline over already-extracted
// document text. Pages split on form feeds when present, otherwise on
// triple newlines; page numbers from the fallback split are approximate.
// cfg may be nil, in which case defaults apply.
func OutlineFromText(text, fileStem string, cfg *Config) *Outline {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}

	pageTexts := splitPages(text)
	pages := make([]PageData, 0, len(pageTexts))
	for i, pt := range pageTexts {
		pages = append(pages, PageData{Page: i + 1, Lines: nonEmptyLines(pt)})
	}

	var title string
	if len(pages) > 0 {
		title = selectTitle(pages[0].Lines, fileStem)
	} else {
		title = fallbackTitle(fileStem)
	}

	headings := assembleHierarchy(StructuralStrategy{}.Classify(pages, cfg))
	if !cfg.IncludeTitleHeading {
		headings = dropTitleHeading(headings, title)
	}
	if headings == nil {
		headings = []Heading{}
	}
	return &Outline{Title: title, Outline: headings}
}

// splitPages breaks whole-document text into page texts: by form feed when
// any is present, otherwise by triple newline as a best-effort guess.
func splitPages(text string) []string {
	if strings.Contains(text, "\f") {
		return strings.Split(text, "\f")
	}
	return strings.Split(text, "\n\n\n")
}

// nonEmptyLines returns the trimmed, non-empty lines of a page text.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// dropTitleHeading removes headings whose text matches the chosen document
// title, so the title is not repeated inside the outline.
func dropTitleHeading(headings []Heading, title string) []Heading {
	cleanTitle := cleanHeadingText(title)
	if cleanTitle == "" {
		return headings
	}
	kept := headings[:0]
	for _, h := range headings {
		if strings.EqualFold(h.Text, cleanTitle) {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

type pageResult struct {
	index int
	data  PageData
	err   error
}

// extractPages decodes every page with a bounded worker pool and returns
// the results in page order. In strict mode any page failure fails the
// document; in best-effort mode a failed page contributes zero lines and
// runs.
func (p *processor) extractPages(ctx context.Context, src pageSource) ([]PageData, error) {
	total := src.NumPages()
	numWorkers := p.adjustWorkerCount(p.cfg.MaxWorkersPerDoc)
	logger.Debug(fmt.Sprintf("Starting page workers: count=%d pages=%d", numWorkers, total), true)

	jobs, results := make(chan int, total), make(chan pageResult, total)

	var wg sync.WaitGroup
	for w := 1; w <= numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				data, err := p.extractPageWithRetries(ctx, src, i)
				results <- pageResult{i, data, err}
				if err != nil {
					logger.Debug(fmt.Sprintf("Worker: page extraction error: worker_id=%d page=%d err=%v", id, i, err), true)
				}
			}
		}(w)
	}

	for i := 1; i <= total; i++ {
		select {
		case <-ctx.Done():
			close(jobs)
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	byPage := make(map[int]PageData, total)
	for res := range results {
		if res.err != nil {
			if p.cfg.ParsingMode == Strict {
				return nil, fmt.Errorf("strict mode failed on page %d: %w", res.index, res.err)
			}
			// best-effort: the page contributes nothing
			res.data = PageData{Page: res.index}
		}
		byPage[res.index] = res.data
	}

	pages := make([]PageData, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, byPage[i])
	}
	return pages, nil
}

func (p *processor) extractPageWithRetries(ctx context.Context, src pageSource, pageNr int) (PageData, error) {
	pageCtx, cancel := context.WithTimeout(ctx, p.cfg.WorkerTimeout)
	defer cancel()

	var data PageData
	err := retry.Do(
		func() error {
			ops, err := src.PageOperations(pageNr)
			if err != nil {
				return err
			}
			data = PageData{
				Page:  pageNr,
				Lines: nonEmptyLines(textFromOperations(ops)),
				Runs:  buildRuns(ops, pageNr, src.pageFontNames(pageNr)),
			}
			return nil
		},
		retry.Context(pageCtx),
		retry.Attempts(uint(p.cfg.MaxRetries)+1),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	return data, err
}

func (p *processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	logger.Debug("Slot acquired successfully", true)
	return nil
}

func (p *processor) adjustWorkerCount(maxWorkers int) int {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > runtime.NumCPU() {
		maxWorkers = runtime.NumCPU()
	}
	return maxWorkers
}
