package extract

import (
	"fmt"
	"path/filepath"

	"cse_insight/pkg/core/pdftext"
	"cse_insight/pkg/core/report"
)

// dipdDefaultYLabel is assumed when a DIPD statement carries no visible unit
// annotation; every report in the dataset states figures in Rs.'000.
const dipdDefaultYLabel = "Rs.'000"

// Extractor produces one FinancialRecord from one report document.
type Extractor struct {
	company report.Company
	matcher *Matcher
	source  RowExtractor
}

// NewExtractor wires the matcher and row strategy for a company.
func NewExtractor(company report.Company) *Extractor {
	return &Extractor{
		company: company,
		matcher: NewMatcher(company),
		source:  StrategyFor(company),
	}
}

// ExtractRecord pulls the canonical metrics out of a document. Every failure
// mode short of a programming error degrades to a zero-valued record: a
// missing heading, an empty grid, or unparseable rows must not abort the
// surrounding batch.
func (e *Extractor) ExtractRecord(doc *pdftext.Document) report.FinancialRecord {
	rec := report.NewRecord(e.company)
	rec.SourceFile = filepath.Base(doc.Path)

	loc, ok := LocateIncomeStatement(doc)
	if !ok {
		fmt.Printf("Warning: no income statement found in %s\n", rec.SourceFile)
		return rec
	}

	lines := doc.Pages[loc.PageIndex].LineStrings()
	rec.YLabel = FindYLabel(window(lines, loc.LineIndex-5, loc.LineIndex+5))

	rows, valueIdx, err := e.source.CandidateRows(doc, loc)
	if err != nil {
		fmt.Printf("Warning: %s extraction failed for %s: %v\n", e.source.Name(), rec.SourceFile, err)
		return rec
	}

	e.scanRows(rec, rows, valueIdx)
	Reconcile(&rec)

	if rec.YLabel == "" && e.company == report.CompanyDIPD {
		rec.YLabel = dipdDefaultYLabel
	}
	return rec
}

// scanRows matches each candidate row against the synonym table and records
// the first non-zero value seen per metric. A row label is retried joined
// with the following row's label to catch wrapped multi-line labels.
func (e *Extractor) scanRows(rec report.FinancialRecord, rows []CandidateRow, valueIdx int) {
	for i, row := range rows {
		metric, ok := e.matcher.Match(row.Label)
		if !ok && i+1 < len(rows) {
			metric, ok = e.matcher.Match(row.Label + " " + rows[i+1].Label)
		}
		if !ok || rec.Metrics[metric] != 0 {
			continue
		}
		if v := rowValue(row, valueIdx); v != 0 {
			rec.Metrics[metric] = v
		}
	}
}

// rowValue reads the selected cell of a row, falling back to the last cell
// when the row is too short for the selected index (ragged fallback grids).
func rowValue(row CandidateRow, valueIdx int) float64 {
	if len(row.Cells) == 0 {
		return 0.0
	}
	if valueIdx >= len(row.Cells) {
		valueIdx = len(row.Cells) - 1
	}
	return ParseValue(row.Cells[valueIdx])
}

func window(lines []string, lo, hi int) []string {
	if lo < 0 {
		lo = 0
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo >= hi {
		return nil
	}
	return lines[lo:hi]
}
