package extract

import (
	"testing"

	"cse_insight/pkg/core/report"
)

func TestMatcherCanonicalLabels(t *testing.T) {
	m := NewMatcher(report.CompanyDIPD)

	tests := []struct {
		label string
		want  string
	}{
		{"Revenue", report.MetricRevenue},
		{"Turnover", report.MetricRevenue},
		{"Cost of Sales", report.MetricCOGS},
		{"Gross Profit", report.MetricGrossProfit},
		{"Distribution Costs", report.MetricDistributionCosts},
		{"Administrative expenses", report.MetricAdministrativeExp},
		{"Other Income", report.MetricOtherIncome},
		{"Profit for the period", report.MetricNetIncome},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := m.Match(tt.label)
			if !ok {
				t.Fatalf("Match(%q) found no metric, want %q", tt.label, tt.want)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestMatcherNoisyLabels(t *testing.T) {
	m := NewMatcher(report.CompanyDIPD)

	// Labels as they come off real pages: figures, footnote marks, wrapping.
	tests := []struct {
		label string
		want  string
	}{
		{"Revenue 10,387,699 8,131,563", report.MetricRevenue},
		{"Cost of Sales (8,565,363) (6,661,592)", report.MetricCOGS},
		{"Administrative expenses *", report.MetricAdministrativeExp},
		{"Results  from  operating  activities", report.MetricOperatingIncome},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := m.Match(tt.label)
			if !ok {
				t.Fatalf("Match(%q) found no metric, want %q", tt.label, tt.want)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestMatcherRejectsUnrelatedLabels(t *testing.T) {
	m := NewMatcher(report.CompanyDIPD)

	for _, label := range []string{"", "   ", "12,345", "zzzz qqqq"} {
		if got, ok := m.Match(label); ok {
			t.Errorf("Match(%q) = %q, want no match", label, got)
		}
	}
}

func TestMatcherCompanyBuckets(t *testing.T) {
	dipd := NewMatcher(report.CompanyDIPD)
	rexp := NewMatcher(report.CompanyREXP)

	if got, ok := dipd.Match("Other Expenses"); !ok || got != report.MetricOtherExpenses {
		t.Errorf("DIPD Match(Other Expenses) = %q, %v; want %q", got, ok, report.MetricOtherExpenses)
	}
	if got, ok := rexp.Match("Other Operating Expense"); !ok || got != report.MetricOtherOperatingExpense {
		t.Errorf("REXP Match(Other Operating Expense) = %q, %v; want %q", got, ok, report.MetricOtherOperatingExpense)
	}
}
