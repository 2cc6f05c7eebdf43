package extract

import (
	"testing"

	"cse_insight/pkg/core/pdftext"
	"cse_insight/pkg/core/report"
)

func TestExtractRecordDIPDLineScan(t *testing.T) {
	doc := docFromLines([][]string{
		{
			"DIPPED PRODUCTS PLC",
			"CONSOLIDATED INCOME STATEMENT",
			"Rs.'000",
			"Revenue 1,000 900 1,000",
			"Cost of Sales (600) (500) (600)",
			"Gross Profit 400 400 400",
			"Distribution Costs (120) (100) (120)",
			"Administrative expenses (60) (50) (60)",
			"Other Expenses (20) (15) (20)",
			"Other Income 50 40 50",
			"Profit for the period 300 280 300",
		},
	})

	rec := NewExtractor(report.CompanyDIPD).ExtractRecord(doc)

	want := map[string]float64{
		report.MetricRevenue:            1000,
		report.MetricCOGS:               600,
		report.MetricGrossProfit:        400,
		report.MetricDistributionCosts:  120,
		report.MetricAdministrativeExp:  60,
		report.MetricOtherExpenses:      20,
		report.MetricOtherIncome:        50,
		report.MetricOperatingExpenses:  200,
		report.MetricOperatingIncome:    250, // 400 + 50 - 200
		report.MetricNetIncome:          300,
	}
	for metric, wantVal := range want {
		if got := rec.Metrics[metric]; got != wantVal {
			t.Errorf("%s = %v, want %v", metric, got, wantVal)
		}
	}
	if rec.YLabel != "Rs.'000" {
		t.Errorf("YLabel = %q, want Rs.'000", rec.YLabel)
	}
	if rec.SourceFile != "test.pdf" {
		t.Errorf("SourceFile = %q, want test.pdf", rec.SourceFile)
	}
}

func TestExtractRecordREXPGrid(t *testing.T) {
	page := alignedPage([]float64{10, 200, 300}, [][]string{
		{"CONSOLIDATED INCOME STATEMENT", "", ""},
		{"", "3 months ended 31.03.2023", "3 months ended 31.03.2022"},
		{"Revenue", "1,000", "900"},
		{"Cost of Sales", "(600)", "(500)"},
		{"Gross Profit", "400", "400"},
		{"Distribution Costs", "(120)", "(100)"},
		{"Administrative expenses", "(60)", "(50)"},
		{"Other Operating Expense", "(20)", "(15)"},
		{"Other Income", "50", "40"},
		{"Profit / (loss) for the period", "300", "280"},
	})
	doc := &pdftext.Document{Path: "rexp.pdf", Pages: []pdftext.Page{page}}

	rec := NewExtractor(report.CompanyREXP).ExtractRecord(doc)

	want := map[string]float64{
		report.MetricRevenue:                1000,
		report.MetricCOGS:                   600,
		report.MetricGrossProfit:            400,
		report.MetricDistributionCosts:      120,
		report.MetricAdministrativeExp:      60,
		report.MetricOtherOperatingExpense:  20,
		report.MetricOtherIncome:            50,
		report.MetricOperatingExpenses:      200,
		report.MetricOperatingIncome:        250,
		report.MetricNetIncome:              300,
	}
	for metric, wantVal := range want {
		if got := rec.Metrics[metric]; got != wantVal {
			t.Errorf("%s = %v, want %v", metric, got, wantVal)
		}
	}
}

func TestExtractRecordNoIncomeStatement(t *testing.T) {
	doc := docFromLines([][]string{
		{
			"STATEMENT OF FINANCIAL POSITION",
			"Total Assets 5,000 4,000",
			"Statements of changes in equity",
		},
	})

	rec := NewExtractor(report.CompanyDIPD).ExtractRecord(doc)

	for _, metric := range report.MetricColumns {
		if got := rec.Metrics[metric]; got != 0 {
			t.Errorf("%s = %v, want 0 for document without an income statement", metric, got)
		}
	}
}

func TestExtractRecordExcludedHeadingDoesNotAnchor(t *testing.T) {
	// "other comprehensive income" contains "income statement"-adjacent
	// wording but must not locate the statement. The real heading follows.
	doc := docFromLines([][]string{
		{
			"Statement of other comprehensive income statement data",
			"INCOME STATEMENT",
			"Revenue 1,000 900 1,000",
		},
	})

	rec := NewExtractor(report.CompanyDIPD).ExtractRecord(doc)
	if got := rec.Metrics[report.MetricRevenue]; got != 1000 {
		t.Errorf("Revenue = %v, want 1000 from the heading after the excluded line", got)
	}
}
