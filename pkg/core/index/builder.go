package index

import (
	"context"
	"fmt"

	"cse_insight/pkg/core/report"
)

// EntryText renders the sentence that gets embedded for one fact.
func EntryText(company, metric, quarter string, value float64) string {
	return fmt.Sprintf("%s %s for the quarter ended %s was %.2f (Rs.'000).",
		company, metric, quarter, value)
}

// Build embeds one entry per (company, metric, quarter) from the cleaned
// records and adds them to the index. Undated records are skipped. Embedding
// failures abort the build; a partially built index is not useful for
// retrieval.
func Build(ctx context.Context, idx *MemoryIndex, recs report.Series, embedder Embedder) error {
	for _, rec := range recs {
		if rec.TableDate.IsZero() {
			continue
		}
		quarter := rec.TableDate.Format("2006-01-02")
		for _, metric := range report.PrimaryMetrics {
			text := EntryText(string(rec.Company), metric, quarter, rec.Value(metric))
			vec, err := embedder.Embed(ctx, text)
			if err != nil {
				return fmt.Errorf("failed to embed %s %s %s: %w", rec.Company, metric, quarter, err)
			}
			idx.Add(Entry{
				Company: string(rec.Company),
				Metric:  metric,
				Quarter: quarter,
				Text:    text,
				Vector:  vec,
			})
		}
	}
	return nil
}
