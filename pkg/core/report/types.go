// Package report defines the data model for extracted quarterly financials:
// companies, canonical metrics, per-report records and per-company series.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Company identifies a covered CSE issuer.
type Company string

const (
	CompanyDIPD Company = "DIPD" // Dipped Products PLC
	CompanyREXP Company = "REXP" // Richard Pieris Exports PLC
)

// Companies lists the covered issuers in a stable order.
var Companies = []Company{CompanyDIPD, CompanyREXP}

// ParseCompany maps a directory or request string onto a known company code.
func ParseCompany(s string) (Company, error) {
	for _, c := range Companies {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown company: %s", s)
}

// Canonical metric names. Every extracted record is normalized onto these.
const (
	MetricRevenue               = "Revenue"
	MetricCOGS                  = "COGS"
	MetricGrossProfit           = "Gross Profit"
	MetricDistributionCosts     = "Distribution Costs"
	MetricAdministrativeExp     = "Administrative Expenses"
	MetricOtherExpenses         = "Other Expenses"
	MetricOtherOperatingExpense = "Other Operating Expense"
	MetricOtherIncome           = "Other Income"
	MetricOperatingExpenses     = "Operating Expenses"
	MetricOperatingIncome       = "Operating Income"
	MetricNetIncome             = "Net Income"
)

// OutputColumns is the column order of the extracted CSV.
var OutputColumns = []string{
	"Company", "ReportDate", "TableDate", "YLabel",
	MetricRevenue, MetricCOGS, MetricGrossProfit,
	MetricDistributionCosts, MetricAdministrativeExp,
	MetricOtherExpenses, MetricOtherIncome, MetricOtherOperatingExpense,
	MetricOperatingExpenses, MetricOperatingIncome, MetricNetIncome,
}

// MetricColumns is OutputColumns without the leading identity columns.
var MetricColumns = OutputColumns[4:]

// PrimaryMetrics are the six metrics kept in the cleaned dataset.
var PrimaryMetrics = []string{
	MetricRevenue, MetricCOGS, MetricGrossProfit,
	MetricOperatingExpenses, MetricOperatingIncome, MetricNetIncome,
}

// FinancialRecord is one processed PDF's worth of figures.
// TableDate, when set, is always a quarter-end; ReportDate may lag or lead it.
// Metric values default to 0.0 when a row could not be resolved.
type FinancialRecord struct {
	Company    Company
	ReportDate time.Time // filing/upload date, zero when unresolved
	TableDate  time.Time // period-end date, zero when unresolved
	YLabel     string    // unit annotation near the table, e.g. "Rs.'000"
	SourceFile string    // basename of the PDF this record came from
	Metrics    map[string]float64
}

// NewRecord returns a record with every canonical metric initialised to zero.
func NewRecord(company Company) FinancialRecord {
	m := make(map[string]float64, len(MetricColumns))
	for _, name := range MetricColumns {
		m[name] = 0.0
	}
	return FinancialRecord{Company: company, Metrics: m}
}

// Value returns the stored value for a metric, 0.0 when absent.
func (r FinancialRecord) Value(metric string) float64 {
	return r.Metrics[metric]
}

// OutputValue returns the value as written to the output table.
// Operating Income is stored signed so genuine operating losses survive;
// the published table reports its magnitude, matching the source dataset.
func (r FinancialRecord) OutputValue(metric string) float64 {
	v := r.Metrics[metric]
	if metric == MetricOperatingIncome {
		return math.Abs(v)
	}
	return v
}

// Series is an ordered set of records for one or more companies.
type Series []FinancialRecord

// Sort orders the series by company, then ascending table date.
// Records without a table date sort before dated ones for their company.
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Company != s[j].Company {
			return s[i].Company < s[j].Company
		}
		return s[i].TableDate.Before(s[j].TableDate)
	})
}

// Deduplicate collapses repeated (company, table date) records, keeping the
// last occurrence. Records without a table date are kept as-is: they carry
// no key to collide on.
func Deduplicate(records Series) Series {
	type key struct {
		company Company
		date    time.Time
	}
	seen := make(map[key]int)
	var out Series
	for _, rec := range records {
		if rec.TableDate.IsZero() {
			out = append(out, rec)
			continue
		}
		k := key{rec.Company, rec.TableDate}
		if idx, ok := seen[k]; ok {
			out[idx] = rec
			continue
		}
		seen[k] = len(out)
		out = append(out, rec)
	}
	return out
}

// ForCompany filters the series down to a single company, preserving order.
func (s Series) ForCompany(c Company) Series {
	var out Series
	for _, rec := range s {
		if rec.Company == c {
			out = append(out, rec)
		}
	}
	return out
}
