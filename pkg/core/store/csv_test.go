package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cse_insight/pkg/core/report"
)

func sampleRecord(t *testing.T) report.FinancialRecord {
	t.Helper()
	rec := report.NewRecord(report.CompanyDIPD)
	rec.TableDate = time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)
	rec.ReportDate = time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
	rec.YLabel = "Rs.'000"
	rec.Metrics[report.MetricRevenue] = 10387699
	rec.Metrics[report.MetricCOGS] = 8565363
	rec.Metrics[report.MetricOperatingIncome] = -150
	return rec
}

func TestWriteCleanedReadCleanedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	rec := sampleRecord(t)

	if err := WriteCleaned(path, report.Series{rec}); err != nil {
		t.Fatalf("WriteCleaned() error = %v", err)
	}

	got, err := ReadCleaned(path)
	if err != nil {
		t.Fatalf("ReadCleaned() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadCleaned() returned %d records, want 1", len(got))
	}
	if got[0].Company != report.CompanyDIPD {
		t.Errorf("Company = %v, want DIPD", got[0].Company)
	}
	if !got[0].ReportDate.Equal(rec.ReportDate) {
		t.Errorf("ReportDate = %v, want %v", got[0].ReportDate, rec.ReportDate)
	}
	if !got[0].TableDate.Equal(rec.TableDate) {
		t.Errorf("TableDate = %v, want %v", got[0].TableDate, rec.TableDate)
	}
	if v := got[0].Value(report.MetricRevenue); v != 10387699 {
		t.Errorf("Revenue = %v, want 10387699", v)
	}
}

func TestWriteCleanedHeaderKeepsReportDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")

	if err := WriteCleaned(path, report.Series{sampleRecord(t)}); err != nil {
		t.Fatalf("WriteCleaned() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.SplitN(string(data), "\n", 3)
	wantHeader := "Company,ReportDate,TableDate,Revenue,COGS,Gross Profit,Operating Expenses,Operating Income,Net Income"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if !strings.HasPrefix(lines[1], "DIPD,2023-05-15,2023-03-31,") {
		t.Errorf("row = %q, want report date before table date", lines[1])
	}
}

func TestWriteExtractedAppliesOutputTransform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted.csv")
	rec := sampleRecord(t)

	if err := WriteExtracted(path, report.Series{rec}); err != nil {
		t.Fatalf("WriteExtracted() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "2023-03-31") {
		t.Errorf("output missing ISO table date:\n%s", content)
	}
	// Operating Income is stored signed but published as a magnitude.
	if strings.Contains(content, "-150") {
		t.Errorf("output contains signed Operating Income:\n%s", content)
	}
	if !strings.Contains(content, "150") {
		t.Errorf("output missing Operating Income magnitude:\n%s", content)
	}
}

func TestWriteExtractedBlankDatesForUndatedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted.csv")
	rec := report.NewRecord(report.CompanyREXP)

	if err := WriteExtracted(path, report.Series{rec}); err != nil {
		t.Fatalf("WriteExtracted() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[1], "REXP,,,") {
		t.Errorf("row = %q, want blank date and label columns", lines[1])
	}
}

func TestReadCleanedRejectsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := strings.Join(CleanedColumns, ",") + "\nDIPD,2023-05-15,not-a-date,1,2,3,4,5,6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadCleaned(path); err == nil {
		t.Error("ReadCleaned() = nil error, want parse failure for bad date")
	}
}
