package extract

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"cse_insight/pkg/core/report"
)

// FuzzyThreshold is the minimum 0-100 similarity score for a fuzzy label
// match to count. Below it the matcher falls back to literal substring
// containment before giving up.
const FuzzyThreshold = 60

var nonAlphaRe = regexp.MustCompile(`[^A-Za-z ]`)

// Matcher maps noisy row labels onto a company's canonical metrics.
type Matcher struct {
	company  report.Company
	synonyms []report.MetricSynonyms
}

// NewMatcher builds a matcher for one company's synonym table.
func NewMatcher(company report.Company) *Matcher {
	return &Matcher{company: company, synonyms: report.Synonyms(company)}
}

// Match resolves a row label to a canonical metric name. The label is
// stripped of non-alphabetic characters and lowercased, scored against every
// synonym, and accepted when the single best score reaches the threshold.
// Ties keep the first metric in synonym-table order.
func (m *Matcher) Match(label string) (string, bool) {
	clean := normalizeLabel(label)
	if clean == "" {
		return "", false
	}

	bestMetric, bestScore := "", 0
	for _, ms := range m.synonyms {
		pair, err := fuzzy.ExtractOne(clean, ms.Variants)
		if err != nil || pair == nil {
			continue
		}
		if pair.Score > bestScore {
			bestMetric, bestScore = ms.Metric, pair.Score
		}
	}
	if bestScore >= FuzzyThreshold {
		return bestMetric, true
	}

	// Literal containment rescue for labels the scorer mangles, e.g. long
	// wrapped labels that swallow a short synonym whole.
	for _, ms := range m.synonyms {
		for _, variant := range ms.Variants {
			if strings.Contains(clean, variant) {
				return ms.Metric, true
			}
		}
	}
	return "", false
}

func normalizeLabel(label string) string {
	clean := nonAlphaRe.ReplaceAllString(label, "")
	clean = strings.Join(strings.Fields(clean), " ")
	return strings.ToLower(clean)
}
