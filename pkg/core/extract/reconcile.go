package extract

import (
	"math"

	"cse_insight/pkg/core/report"
)

// Reconcile computes the derived totals and normalizes sign conventions on a
// freshly extracted record:
//
//   - Cost-category metrics are stored as absolute magnitudes regardless of
//     how the source signed them.
//   - Operating Expenses is derived as the sum of the company's cost buckets
//     (distribution + administrative + the company's other-expense bucket).
//     A directly matched Operating Expenses row survives only when the
//     component sum is unavailable.
//   - Operating Income = Gross Profit + Other Income - Operating Expenses,
//     derived only when no Operating Income row was matched directly. The
//     value is stored signed; the published table reports the magnitude via
//     report.FinancialRecord.OutputValue.
func Reconcile(rec *report.FinancialRecord) {
	for _, metric := range report.CostMetrics {
		if v, ok := rec.Metrics[metric]; ok {
			rec.Metrics[metric] = math.Abs(v)
		}
	}

	var opEx float64
	for _, metric := range report.OperatingCostComponents(rec.Company) {
		opEx += rec.Metrics[metric]
	}
	if opEx != 0 || rec.Metrics[report.MetricOperatingExpenses] == 0 {
		rec.Metrics[report.MetricOperatingExpenses] = opEx
	}

	if rec.Metrics[report.MetricOperatingIncome] == 0 {
		rec.Metrics[report.MetricOperatingIncome] = rec.Metrics[report.MetricGrossProfit] +
			rec.Metrics[report.MetricOtherIncome] -
			rec.Metrics[report.MetricOperatingExpenses]
	}
}
