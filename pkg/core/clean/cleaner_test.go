package clean

import (
	"reflect"
	"testing"
	"time"

	"cse_insight/pkg/core/report"
)

func TestRepairSeries(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want []float64
	}{
		{
			"interior gap interpolated",
			[]float64{100, 100, 0, 100},
			[]float64{100, 100, 100, 100},
		},
		{
			"interior slope interpolated",
			[]float64{100, 0, 0, 400},
			[]float64{100, 200, 300, 400},
		},
		{
			"leading edge takes first valid",
			[]float64{0, 100, 100},
			[]float64{100, 100, 100},
		},
		{
			"trailing edge takes last valid",
			[]float64{100, 100, 0},
			[]float64{100, 100, 100},
		},
		{
			"negative treated as missing",
			[]float64{100, -50, 100},
			[]float64{100, 100, 100},
		},
		{
			"implausibly small value treated as missing",
			[]float64{100000, 100000, 3, 100000},
			[]float64{100000, 100000, 100000, 100000},
		},
		{
			"all bad left unchanged",
			[]float64{0, 0, 0},
			[]float64{0, 0, 0},
		},
		{
			"clean series untouched",
			[]float64{100, 200, 300},
			[]float64{100, 200, 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairSeries(tt.vals); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RepairSeries(%v) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestCleanRepairsPerCompanyAndMetric(t *testing.T) {
	mkRec := func(company report.Company, month time.Month, revenue float64) report.FinancialRecord {
		rec := report.NewRecord(company)
		rec.TableDate = time.Date(2023, month, 31, 0, 0, 0, 0, time.UTC)
		rec.Metrics[report.MetricRevenue] = revenue
		return rec
	}

	series := report.Series{
		mkRec(report.CompanyDIPD, time.March, 100),
		mkRec(report.CompanyDIPD, time.December, 100),
		// Out of order on purpose; Clean must sort before interpolating.
		mkRec(report.CompanyDIPD, time.July, 0),
		mkRec(report.CompanyREXP, time.March, 700),
	}

	cleaned := Clean(series)

	dipd := cleaned.ForCompany(report.CompanyDIPD)
	if len(dipd) != 3 {
		t.Fatalf("DIPD records = %d, want 3", len(dipd))
	}
	if got := dipd[1].Value(report.MetricRevenue); got != 100 {
		t.Errorf("DIPD mid-quarter revenue = %v, want interpolated 100", got)
	}

	rexp := cleaned.ForCompany(report.CompanyREXP)
	if len(rexp) != 1 || rexp[0].Value(report.MetricRevenue) != 700 {
		t.Errorf("REXP series = %v, want untouched single record", rexp)
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	rec := report.NewRecord(report.CompanyDIPD)
	rec.TableDate = time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)
	rec.Metrics[report.MetricOperatingIncome] = -150

	cleaned := Clean(report.Series{rec})

	if got := rec.Metrics[report.MetricOperatingIncome]; got != -150 {
		t.Errorf("input record mutated: Operating Income = %v, want -150", got)
	}
	if len(cleaned) != 1 {
		t.Fatalf("cleaned records = %d, want 1", len(cleaned))
	}
	if got := cleaned[0].Value(report.MetricOperatingIncome); got != 150 {
		t.Errorf("cleaned Operating Income = %v, want magnitude 150", got)
	}
}
