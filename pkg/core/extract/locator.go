// Package extract turns the text of one quarterly-report PDF into a
// FinancialRecord: it locates the income statement, pulls candidate rows out
// of the page with company-specific strategies, maps row labels onto the
// canonical metrics, and reconciles the derived totals.
package extract

import (
	"strings"

	"cse_insight/pkg/core/pdftext"
)

// incomeStatementHeadings are the section titles that introduce an income
// statement across both issuers' report vocabularies.
var incomeStatementHeadings = []string{
	"income statement", "consolidated income statement", "earnings statement",
	"revenue statement", "operating statement", "statement of operations",
	"statement of financial performance", "statement of profit and loss",
	"profit and loss statement", "p&l statement", "income statements",
	"consolidated income statements", "statement of profit or loss",
}

// excludedHeadings name sections that contain income-statement-like phrases
// but report something else. Exclusion wins over a heading match on the same
// line.
var excludedHeadings = []string{
	"other comprehensive income",
	"statement of financial position",
	"statements of changes in equity",
}

// Location points at the heading line that introduces the income statement.
type Location struct {
	PageIndex int // 0-based index into Document.Pages
	LineIndex int // 0-based index into the page's lines
}

// LocateIncomeStatement scans the document for the first income-statement
// heading. Returns false when no page carries one; callers emit a zero-value
// record in that case rather than failing the batch.
func LocateIncomeStatement(doc *pdftext.Document) (Location, bool) {
	for pageIdx, page := range doc.Pages {
		for lineIdx, line := range page.LineStrings() {
			lower := strings.ToLower(strings.TrimSpace(line))
			if lower == "" {
				continue
			}
			if matchesAny(lower, excludedHeadings) {
				continue
			}
			if matchesAny(lower, incomeStatementHeadings) {
				return Location{PageIndex: pageIdx, LineIndex: lineIdx}, true
			}
		}
	}
	return Location{}, false
}

func matchesAny(line string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}
