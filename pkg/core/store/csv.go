package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"cse_insight/pkg/core/report"
)

const dateLayout = "2006-01-02"

// CleanedColumns is the header of the cleaned dataset file: identity columns
// followed by the primary metrics only.
var CleanedColumns = append([]string{"Company", "ReportDate", "TableDate"}, report.PrimaryMetrics...)

// WriteExtracted writes the raw extraction output, one row per processed PDF,
// with the full metric set. Zero dates are left blank.
func WriteExtracted(path string, recs report.Series) error {
	return writeCSV(path, report.OutputColumns, func(w *csv.Writer) error {
		for _, rec := range recs {
			row := []string{
				string(rec.Company),
				formatDate(rec.ReportDate),
				formatDate(rec.TableDate),
				rec.YLabel,
			}
			for _, metric := range report.MetricColumns {
				row = append(row, formatValue(rec.OutputValue(metric)))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteCleaned writes the repaired dataset, one row per (company, quarter),
// restricted to the primary metrics.
func WriteCleaned(path string, recs report.Series) error {
	return writeCSV(path, CleanedColumns, func(w *csv.Writer) error {
		for _, rec := range recs {
			row := []string{string(rec.Company), formatDate(rec.ReportDate), formatDate(rec.TableDate)}
			for _, metric := range report.PrimaryMetrics {
				row = append(row, formatValue(rec.Value(metric)))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadCleaned loads a cleaned dataset file back into records, for serving.
func ReadCleaned(path string) (report.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	recs := make(report.Series, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(CleanedColumns) {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d",
				path, i+2, len(row), len(CleanedColumns))
		}
		company, err := report.ParseCompany(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		rec := report.NewRecord(company)
		if row[1] != "" {
			rec.ReportDate, err = time.Parse(dateLayout, row[1])
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad date %q: %w", path, i+2, row[1], err)
			}
		}
		if row[2] != "" {
			rec.TableDate, err = time.Parse(dateLayout, row[2])
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad date %q: %w", path, i+2, row[2], err)
			}
		}
		for j, metric := range report.PrimaryMetrics {
			if row[3+j] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[3+j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad value %q: %w", path, i+2, row[3+j], err)
			}
			rec.Metrics[metric] = v
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func writeCSV(path string, header []string, body func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := body(w); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
