// Package pipeline runs the end-to-end dataset build: walk the scraped PDFs,
// extract income-statement metrics per filing, repair the series, and write
// the dataset files.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cse_insight/pkg/core/clean"
	"cse_insight/pkg/core/extract"
	"cse_insight/pkg/core/pdftext"
	"cse_insight/pkg/core/report"
	"cse_insight/pkg/core/store"
)

// Orchestrator manages the extraction pipeline:
// PDF text -> income statement extraction -> dedup -> cleaning -> CSV/DB.
type Orchestrator struct {
	config *Config
	repo   *store.RecordsRepo
}

// NewOrchestrator creates an orchestrator for the given configuration.
func NewOrchestrator(config *Config) *Orchestrator {
	return &Orchestrator{
		config: config,
		repo:   store.NewRecordsRepo(),
	}
}

// Run executes the full pipeline and returns the cleaned series. Individual
// PDF failures are logged and produce zero-valued rows; only an unusable
// report root or unwritable output aborts the run.
func (o *Orchestrator) Run(ctx context.Context) (report.Series, error) {
	start := time.Now()
	companies, err := o.config.CompanyList()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(o.config.PDFRoot); err != nil {
		return nil, fmt.Errorf("report root %s not usable: %w", o.config.PDFRoot, err)
	}

	var extracted report.Series
	for _, company := range companies {
		recs, err := o.runCompany(ctx, company)
		if err != nil {
			return nil, err
		}
		extracted = append(extracted, recs...)
	}

	fmt.Printf("Extracted %d records. Writing %s...\n", len(extracted), o.config.OutputFile)
	if err := store.WriteExtracted(o.config.OutputFile, extracted); err != nil {
		return nil, err
	}

	deduped := report.Deduplicate(extracted)
	deduped.Sort()
	cleaned := clean.Clean(deduped)
	fmt.Printf("Cleaned %d records (from %d extracted). Writing %s...\n",
		len(cleaned), len(extracted), o.config.CleanedFile)
	if err := store.WriteCleaned(o.config.CleanedFile, cleaned); err != nil {
		return nil, err
	}

	if o.config.SaveToDB {
		if err := o.saveToDB(ctx, cleaned); err != nil {
			fmt.Printf("Warning: database save failed: %v\n", err)
		}
	}

	fmt.Printf("Pipeline complete in %s.\n", time.Since(start).Round(time.Millisecond))
	return cleaned, nil
}

func (o *Orchestrator) runCompany(ctx context.Context, company report.Company) (report.Series, error) {
	dir := filepath.Join(o.config.PDFRoot, string(company))
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Printf("Warning: skipping %s: %v\n", company, err)
		return nil, nil
	}

	pdfs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		pdfs = append(pdfs, entry.Name())
	}
	sort.Strings(pdfs)

	fmt.Printf("Processing %s: %d PDFs in %s...\n", company, len(pdfs), dir)
	extractor := extract.NewExtractor(company)
	recs := make(report.Series, 0, len(pdfs))
	for _, name := range pdfs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		recs = append(recs, o.processPDF(extractor, company, filepath.Join(dir, name)))
	}
	return recs, nil
}

// processPDF never fails: extraction problems yield a zero-valued record so
// the bad quarter is visible in the output and repairable by the cleaner.
func (o *Orchestrator) processPDF(extractor *extract.Extractor, company report.Company, path string) report.FinancialRecord {
	name := filepath.Base(path)
	reportDate, ok := extract.ParseFilenameDate(name)
	if !ok {
		fmt.Printf("Warning: %s: no date in filename\n", name)
	}

	doc, err := pdftext.Load(path)
	if err != nil {
		fmt.Printf("Warning: %s: unreadable PDF: %v\n", name, err)
		rec := report.NewRecord(company)
		rec.SourceFile = name
		rec.ReportDate = reportDate
		return rec
	}

	rec := extractor.ExtractRecord(doc)
	rec.ReportDate = reportDate
	if tableDate, ok := extract.FindTableDate(doc, reportDate); ok {
		rec.TableDate = tableDate
	} else {
		fmt.Printf("Warning: %s: no table date found\n", name)
	}
	return rec
}

func (o *Orchestrator) saveToDB(ctx context.Context, recs report.Series) error {
	if err := store.InitDB(ctx); err != nil {
		return err
	}
	if err := o.repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := o.repo.Save(ctx, recs); err != nil {
		return err
	}
	fmt.Printf("Saved %d records to database.\n", len(recs))
	return nil
}
