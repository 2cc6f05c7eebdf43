package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cse_insight/pkg/core/report"
)

// RecordsRepo mirrors the quarterly dataset into Postgres so downstream
// consumers can query it without touching the CSV outputs.
type RecordsRepo struct{}

// NewRecordsRepo creates a new repository instance.
func NewRecordsRepo() *RecordsRepo {
	return &RecordsRepo{}
}

// EnsureSchema creates the quarterly_financials table if it does not exist.
func (r *RecordsRepo) EnsureSchema(ctx context.Context) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		CREATE TABLE IF NOT EXISTS quarterly_financials (
			company TEXT NOT NULL,
			table_date DATE NOT NULL,
			report_date DATE,
			y_label TEXT,
			metrics JSONB,
			updated_at TIMESTAMPTZ,
			PRIMARY KEY (company, table_date)
		);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Save upserts every dated record on (company, table_date). Undated records
// cannot be keyed and are skipped.
func (r *RecordsRepo) Save(ctx context.Context, recs report.Series) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO quarterly_financials (company, table_date, report_date, y_label, metrics, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company, table_date)
		DO UPDATE SET
			report_date = EXCLUDED.report_date,
			y_label = EXCLUDED.y_label,
			metrics = EXCLUDED.metrics,
			updated_at = EXCLUDED.updated_at;
	`

	for _, rec := range recs {
		if rec.TableDate.IsZero() {
			continue
		}
		jsonData, err := json.Marshal(rec.Metrics)
		if err != nil {
			return fmt.Errorf("failed to marshal metrics for %s: %w", rec.Company, err)
		}
		_, err = pool.Exec(ctx, query,
			string(rec.Company), rec.TableDate, nullableDate(rec.ReportDate),
			rec.YLabel, jsonData, time.Now())
		if err != nil {
			return fmt.Errorf("failed to save record %s %s: %w",
				rec.Company, rec.TableDate.Format("2006-01-02"), err)
		}
	}
	return nil
}

func nullableDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
