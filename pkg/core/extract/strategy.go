package extract

import (
	"fmt"

	"cse_insight/pkg/core/pdftext"
	"cse_insight/pkg/core/report"
)

// CandidateRow is one labelled row of raw values awaiting metric matching.
type CandidateRow struct {
	Label string
	Cells []string
}

// RowExtractor recovers candidate rows from a located statement. The two
// implementations cover the two report structures in the dataset: REXP
// publishes a machine-readable grid, DIPD's statements have no extractable
// grid lines and are read as plain text below the heading.
type RowExtractor interface {
	Name() string
	// CandidateRows returns the rows to scan and the index into each row's
	// Cells holding the current quarter's value.
	CandidateRows(doc *pdftext.Document, loc Location) ([]CandidateRow, int, error)
}

// StrategyFor selects the row extractor for a company.
func StrategyFor(company report.Company) RowExtractor {
	if company == report.CompanyDIPD {
		return NewLineScanStrategy()
	}
	return NewGridStrategy()
}

// =============================================================================
// GRID STRATEGY
// =============================================================================

// GridStrategy runs the grid backends over the located page and applies
// header-based column selection to the winning grid.
type GridStrategy struct {
	backends []GridBackend
}

func NewGridStrategy() *GridStrategy {
	return &GridStrategy{backends: DefaultBackends()}
}

func (s *GridStrategy) Name() string { return "grid" }

func (s *GridStrategy) CandidateRows(doc *pdftext.Document, loc Location) ([]CandidateRow, int, error) {
	if loc.PageIndex >= len(doc.Pages) {
		return nil, 0, fmt.Errorf("page %d out of range", loc.PageIndex)
	}
	grid, _, err := FirstGrid(doc.Pages[loc.PageIndex], s.backends...)
	if err != nil {
		return nil, 0, err
	}

	headerRow, valueCol := SelectValueColumn(grid)
	valueIdx := valueCol - 1 // candidate cells exclude the label column
	if valueIdx < 0 {
		valueIdx = 0
	}

	var rows []CandidateRow
	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]
		if len(row) == 0 {
			continue
		}
		cr := CandidateRow{Label: row[0]}
		if len(row) > 1 {
			cr.Cells = row[1:]
		}
		rows = append(rows, cr)
	}
	return rows, valueIdx, nil
}

// =============================================================================
// LINE SCAN STRATEGY
// =============================================================================

// LineScanStrategy treats the text lines after the heading as a pseudo-table.
// Each line's label is the full line text and its cells are the
// thousands-grouped figures found on it. The value index picks the group
// unaudited column, which is the third figure on DIPD statements.
type LineScanStrategy struct {
	Span     int // lines to read below the heading
	ValueIdx int
}

func NewLineScanStrategy() *LineScanStrategy {
	return &LineScanStrategy{Span: 20, ValueIdx: 2}
}

func (s *LineScanStrategy) Name() string { return "line-scan" }

func (s *LineScanStrategy) CandidateRows(doc *pdftext.Document, loc Location) ([]CandidateRow, int, error) {
	if loc.PageIndex >= len(doc.Pages) {
		return nil, 0, fmt.Errorf("page %d out of range", loc.PageIndex)
	}
	lines := doc.Pages[loc.PageIndex].LineStrings()
	start := loc.LineIndex + 1
	if start > len(lines) {
		start = len(lines)
	}
	end := start + s.Span
	if end > len(lines) {
		end = len(lines)
	}

	var rows []CandidateRow
	for _, line := range lines[start:end] {
		rows = append(rows, CandidateRow{Label: line, Cells: NumericTokens(line)})
	}
	return rows, s.ValueIdx, nil
}
