package report

import (
	"testing"
	"time"
)

func qdate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCompany(t *testing.T) {
	if c, err := ParseCompany("DIPD"); err != nil || c != CompanyDIPD {
		t.Errorf("ParseCompany(DIPD) = %v, %v", c, err)
	}
	if c, err := ParseCompany("rexp"); err != nil || c != CompanyREXP {
		t.Errorf("ParseCompany(rexp) = %v, %v; want case-insensitive match", c, err)
	}
	if _, err := ParseCompany("LOLC"); err == nil {
		t.Error("ParseCompany(LOLC) = nil error, want unknown company")
	}
}

func TestOutputValueReportsOperatingIncomeMagnitude(t *testing.T) {
	rec := NewRecord(CompanyDIPD)
	rec.Metrics[MetricOperatingIncome] = -150
	rec.Metrics[MetricNetIncome] = -90

	if got := rec.OutputValue(MetricOperatingIncome); got != 150 {
		t.Errorf("OutputValue(Operating Income) = %v, want 150", got)
	}
	// Only Operating Income gets the magnitude treatment.
	if got := rec.OutputValue(MetricNetIncome); got != -90 {
		t.Errorf("OutputValue(Net Income) = %v, want -90", got)
	}
	if got := rec.Value(MetricOperatingIncome); got != -150 {
		t.Errorf("Value(Operating Income) = %v, want stored -150", got)
	}
}

func TestDeduplicateKeepsLastOccurrence(t *testing.T) {
	first := NewRecord(CompanyDIPD)
	first.TableDate = qdate(2023, time.March, 31)
	first.Metrics[MetricRevenue] = 100

	second := NewRecord(CompanyDIPD)
	second.TableDate = qdate(2023, time.March, 31)
	second.Metrics[MetricRevenue] = 200

	other := NewRecord(CompanyREXP)
	other.TableDate = qdate(2023, time.March, 31)

	out := Deduplicate(Series{first, second, other})
	if len(out) != 2 {
		t.Fatalf("Deduplicate returned %d records, want 2", len(out))
	}
	if got := out[0].Metrics[MetricRevenue]; got != 200 {
		t.Errorf("kept revenue = %v, want the later record's 200", got)
	}
}

func TestDeduplicateKeepsUndatedRecords(t *testing.T) {
	a := NewRecord(CompanyDIPD)
	b := NewRecord(CompanyDIPD)

	if out := Deduplicate(Series{a, b}); len(out) != 2 {
		t.Errorf("Deduplicate dropped undated records: got %d, want 2", len(out))
	}
}

func TestSeriesSort(t *testing.T) {
	r1 := NewRecord(CompanyREXP)
	r1.TableDate = qdate(2022, time.June, 30)
	r2 := NewRecord(CompanyDIPD)
	r2.TableDate = qdate(2023, time.March, 31)
	r3 := NewRecord(CompanyDIPD)
	r3.TableDate = qdate(2022, time.March, 31)

	s := Series{r1, r2, r3}
	s.Sort()

	if s[0].Company != CompanyDIPD || !s[0].TableDate.Equal(r3.TableDate) {
		t.Errorf("Sort()[0] = %v %v, want DIPD 2022-03-31", s[0].Company, s[0].TableDate)
	}
	if s[2].Company != CompanyREXP {
		t.Errorf("Sort()[2] = %v, want REXP last", s[2].Company)
	}
}
